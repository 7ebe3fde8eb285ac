package mimesource

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoData is wrapped by a SourceError when a ZooKeeper node or etcd key
// exists but is empty.
var ErrNoData = errors.New("no data")

// type SourceError {{{

// SourceError reports a failure to read a registry from a source.
type SourceError struct {
	Source string
	Stage  Stage
	Err    error
}

// Error fulfills the error interface.
func (err SourceError) Error() string {
	return fmt.Sprintf("%s: %q: %v", err.Stage.Message(), err.Source, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err SourceError) Unwrap() error {
	return err.Err
}

// Is returns true for fs.ErrNotExist if the failure was at StageNotFound.
func (err SourceError) Is(other error) bool {
	return err.Stage == StageNotFound && other == fs.ErrNotExist
}

var _ error = SourceError{}

// }}}

// type StatusError {{{

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code   int
	Status string
}

// Error fulfills the error interface.
func (err StatusError) Error() string {
	if err.Status == "" {
		return fmt.Sprintf("HTTP status %d", err.Code)
	}
	return fmt.Sprintf("HTTP status %s", err.Status)
}

var _ error = StatusError{}

// }}}

// type BodyTooLargeError {{{

// BodyTooLargeError reports content that exceeds the configured size limit.
type BodyTooLargeError struct {
	Limit int64
}

// Error fulfills the error interface.
func (err BodyTooLargeError) Error() string {
	return fmt.Sprintf("content exceeds the limit of %d bytes", err.Limit)
}

var _ error = BodyTooLargeError{}

// }}}
