package mimegen

import (
	"fmt"
)

// type PackageNameError {{{

// PackageNameError reports a package name that is not a Go identifier.
type PackageNameError struct {
	Package string
}

// Error fulfills the error interface.
func (err PackageNameError) Error() string {
	return fmt.Sprintf("invalid Go package name %q", err.Package)
}

var _ error = PackageNameError{}

// }}}

// type GenerateError {{{

// GenerateError reports a failure while rendering or writing an artifact.
type GenerateError struct {
	Stage string
	Err   error
}

// Error fulfills the error interface.
func (err GenerateError) Error() string {
	return fmt.Sprintf("mimegen: %s: %v", err.Stage, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err GenerateError) Unwrap() error {
	return err.Err
}

var _ error = GenerateError{}

// }}}
