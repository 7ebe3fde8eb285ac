package mainutil

import (
	"fmt"
)

// type OptionError {{{

// OptionError indicates an error while parsing options.
type OptionError struct {
	Name     string
	Value    string
	Err      error
	Complete bool
}

// Error fulfills the error interface.
func (err OptionError) Error() string {
	str := err.Name
	if err.Complete {
		str = err.Name + "=" + err.Value
	}
	return fmt.Sprintf("option %q: %v", str, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err OptionError) Unwrap() error {
	return err.Err
}

var _ error = OptionError{}

// }}}

// type UnknownOptionError {{{

// UnknownOptionError indicates that an unknown option was encountered.
type UnknownOptionError struct{}

// Error fulfills the error interface.
func (UnknownOptionError) Error() string {
	return "unknown option name"
}

var _ error = UnknownOptionError{}

// }}}

// type MissingOptionValueError {{{

// MissingOptionValueError indicates that an option was found with the value
// elided, but eliding the value doesn't make sense for that option.
type MissingOptionValueError struct{}

// Error fulfills the error interface.
func (MissingOptionValueError) Error() string {
	return "must specify a value"
}

var _ error = MissingOptionValueError{}

// }}}

// type ZKAddAuthError {{{

// ZKAddAuthError indicates a problem while authenticating to ZooKeeper.
type ZKAddAuthError struct {
	AuthScheme string
	Err        error
}

// Error fulfills the error interface.
func (err ZKAddAuthError) Error() string {
	return fmt.Sprintf("failed to (*zk.Conn).AddAuth with scheme=%q: %v", err.AuthScheme, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err ZKAddAuthError) Unwrap() error {
	return err.Err
}

var _ error = ZKAddAuthError{}

// }}}

// type MetricsWriteError {{{

// MetricsWriteError indicates a problem while writing a metrics file.
type MetricsWriteError struct {
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err MetricsWriteError) Error() string {
	return fmt.Sprintf("failed to write metrics to file: %q: %v", err.Path, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err MetricsWriteError) Unwrap() error {
	return err.Err
}

var _ error = MetricsWriteError{}

// }}}
