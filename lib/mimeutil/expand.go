package mimeutil

import (
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
)

var reURLScheme = regexp.MustCompile(`^[0-9A-Za-z+-]+:`)

// ExpandString expands ${ENV_VAR} references.
func ExpandString(in string) (string, error) {
	var errors []error

	expanded := os.Expand(in, func(name string) string {
		value, found := os.LookupEnv(name)
		if !found {
			err := EnvVarLookupError{Var: name, Err: ErrNotExist}
			errors = append(errors, err)
		}
		return value
	})

	return expanded, collapse(errors)
}

// ExpandPath expands ${ENV_VAR} references, ~ and ~user references, and makes
// the path absolute (by assuming it is relative to the current directory).
func ExpandPath(in string) (string, error) {
	return ExpandPathWithCWD(in, ".")
}

// ExpandPathWithCWD expands ${ENV_VAR} references, ~ and ~user references, and
// makes the path absolute (by assuming it is relative to the given cwd).
//
// Strings that look like URLs ("scheme:...") are returned after ${ENV_VAR}
// expansion only.
func ExpandPathWithCWD(in string, cwd string) (string, error) {
	var errors []error

	expanded, err := ExpandString(in)
	if err != nil {
		errors = appendErrors(errors, err)
	}

	if expanded != "" && expanded[0] == '~' {
		var userName string
		var rest string
		if i := strings.IndexByte(expanded, '/'); i >= 0 {
			userName, rest = expanded[1:i], expanded[i+1:]
		} else {
			userName = expanded[1:]
		}

		var homeDir string
		if value, found := os.LookupEnv("HOME"); found && userName == "" {
			homeDir = value
		} else {
			u, err := LookupUserByName(userName)
			if err == nil {
				homeDir = u.HomeDir
			} else {
				homeDir = filepath.Join("/home", userName)
				errors = append(errors, err)
			}
		}
		expanded = filepath.Join(homeDir, rest)
	}

	if expanded != "" && !reURLScheme.MatchString(expanded) {
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Join(cwd, expanded)
		}
		if !filepath.IsAbs(expanded) {
			abs, err := PathAbs(expanded)
			if err != nil {
				errors = append(errors, err)
				abs = expanded
			}
			expanded = abs
		}
		expanded = filepath.Clean(expanded)
	}

	return expanded, collapse(errors)
}

// ExpandPassword expands ${ENV_VAR} references and @file references.
func ExpandPassword(in string) (string, error) {
	var errors []error

	expanded, err := ExpandString(in)
	if err != nil {
		errors = appendErrors(errors, err)
	}

	if expanded != "" && expanded[0] == '@' {
		raw, err := ioutil.ReadFile(expanded[1:])
		if err != nil {
			return "", err
		}
		expanded = strings.Trim(string(raw), " \t\r\n")
	}

	return expanded, collapse(errors)
}

// PathAbs is a wrapper around "path/filepath".Abs.
func PathAbs(str string) (string, error) {
	abs, err := filepath.Abs(str)
	if err != nil {
		return "", PathAbsError{Path: str, Err: err}
	}
	return abs, nil
}

// LookupUserByName is a wrapper around "os/user".Lookup.  The empty string
// names the current user.
func LookupUserByName(userName string) (*user.User, error) {
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if _, ok := err.(user.UnknownUserError); ok {
		err = ErrNotExist
	}
	if err != nil {
		return nil, LookupUserByNameError{Name: userName, Err: err}
	}
	return u, nil
}

func appendErrors(list []error, err error) []error {
	if multi, ok := err.(*multierror.Error); ok {
		return append(list, multi.Errors...)
	}
	return append(list, err)
}

func collapse(errors []error) error {
	switch uint(len(errors)) {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		return &multierror.Error{Errors: errors}
	}
}
