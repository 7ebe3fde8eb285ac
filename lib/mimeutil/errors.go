package mimeutil

import (
	"fmt"
	"io/fs"
)

// ErrNotExist signals that something does not exist.
var ErrNotExist = notExistError(0)

// ErrFailedToMatch et al signal that input parsing has failed.
var (
	ErrFailedToMatch       = inputError("failed to match expected pattern")
	ErrExpectEmpty         = inputError("expected empty string")
	ErrExpectNonEmpty      = inputError("expected non-empty string")
	ErrExpectLeadingSlash  = inputError("expected path to start with '/'")
	ErrExpectNoEndSlash    = inputError("did not expect path to end with '/'")
	ErrExpectNoDoubleSlash = inputError("did not expect path to contain '//'")
	ErrExpectNonEmptyList  = inputError("expected non-empty list")
)

// type notExistError {{{

// notExistError represents failure to locate something.
type notExistError int

// Error fulfills the error interface.
func (err notExistError) Error() string {
	return "does not exist"
}

// Is returns true for fs.ErrNotExist.
func (err notExistError) Is(other error) bool {
	return other == fs.ErrNotExist
}

var _ error = notExistError(0)

// }}}

// type inputError {{{

// inputError represents failure to parse an input.
type inputError string

// Error fulfills the error interface.
func (err inputError) Error() string {
	return string(err)
}

var _ error = inputError("")

// }}}

// type SchemeError {{{

// SchemeError represents failure to identify a URL scheme or a source
// identifier scheme.
type SchemeError struct {
	Scheme string
	Err    error
}

// Error fulfills the error interface.
func (err SchemeError) Error() string {
	return fmt.Sprintf("invalid scheme %q: %v", err.Scheme, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err SchemeError) Unwrap() error {
	return err.Err
}

var _ error = SchemeError{}

// }}}

// type PathError {{{

// PathError represents failure to parse a path of some sort, such as a
// ZooKeeper node path or an etcd key.
type PathError struct {
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %v", err.Path, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err PathError) Unwrap() error {
	return err.Err
}

var _ error = PathError{}

// }}}

// type HostPortError {{{

// HostPortError represents failure to parse a "host:port"-shaped string.
type HostPortError struct {
	HostPort string
	Err      error
}

// Error fulfills the error interface.
func (err HostPortError) Error() string {
	return fmt.Sprintf("invalid <host>:<port> string %q: %v", err.HostPort, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err HostPortError) Unwrap() error {
	return err.Err
}

var _ error = HostPortError{}

// }}}

// type PortError {{{

// PortError represents failure to parse a port number string.
type PortError struct {
	Port string
	Err  error
}

// Error fulfills the error interface.
func (err PortError) Error() string {
	return fmt.Sprintf("invalid port number %q: %v", err.Port, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err PortError) Unwrap() error {
	return err.Err
}

var _ error = PortError{}

// }}}

// type EnvVarLookupError {{{

// EnvVarLookupError represents failure to look up an environment variable.
type EnvVarLookupError struct {
	Var string
	Err error
}

// Error fulfills the error interface.
func (err EnvVarLookupError) Error() string {
	return fmt.Sprintf("invalid environment variable ${%s}: %v", err.Var, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err EnvVarLookupError) Unwrap() error {
	return err.Err
}

var _ error = EnvVarLookupError{}

// }}}

// type LookupUserByNameError {{{

// LookupUserByNameError represents failure to look up an OS user by name.
type LookupUserByNameError struct {
	Name string
	Err  error
}

// Error fulfills the error interface.
func (err LookupUserByNameError) Error() string {
	return fmt.Sprintf("\"os/user\".Lookup(%q) failed: %v", err.Name, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err LookupUserByNameError) Unwrap() error {
	return err.Err
}

var _ error = LookupUserByNameError{}

// }}}

// type PathAbsError {{{

// PathAbsError represents failure to make a file path absolute.
type PathAbsError struct {
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err PathAbsError) Error() string {
	return fmt.Sprintf("failed to make path absolute: %q: %v", err.Path, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err PathAbsError) Unwrap() error {
	return err.Err
}

var _ error = PathAbsError{}

// }}}
