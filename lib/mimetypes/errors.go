package mimetypes

import (
	"fmt"
	"strings"
)

// type LineError {{{

// LineError reports a registry line that is neither ignorable nor a valid
// "type/subtype ext" entry.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error fulfills the error interface.  The message always contains the
// offending line verbatim.
func (err LineError) Error() string {
	var buf strings.Builder
	if err.Line > 0 {
		fmt.Fprintf(&buf, "line %d: ", err.Line)
	}
	buf.WriteString("'")
	buf.WriteString(err.Text)
	buf.WriteString("' does not match the registry pattern ")
	buf.WriteString(linePattern)
	if err.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(err.Err.Error())
	}
	return buf.String()
}

// Unwrap returns the underlying cause of this error.
func (err LineError) Unwrap() error {
	return err.Err
}

var _ error = LineError{}

// }}}

// type ReadError {{{

// ReadError reports an I/O failure while consuming registry text.
type ReadError struct {
	Line int
	Err  error
}

// Error fulfills the error interface.
func (err ReadError) Error() string {
	return fmt.Sprintf("failed to read registry after line %d: %v", err.Line, err.Err)
}

// Unwrap returns the underlying cause of this error.
func (err ReadError) Unwrap() error {
	return err.Err
}

var _ error = ReadError{}

// }}}

// type DuplicateExtensionError {{{

// DuplicateExtensionError indicates that Build was given two records with the
// same extension.  Run the records through Dedup first.
type DuplicateExtensionError struct {
	First  Record
	Second Record
}

// Error fulfills the error interface.
func (err DuplicateExtensionError) Error() string {
	return fmt.Sprintf("duplicate extension %q: %s conflicts with %s", err.Second.Extension, err.Second.MediaType(), err.First.MediaType())
}

var _ error = DuplicateExtensionError{}

// }}}

// type EmptyExtensionError {{{

// EmptyExtensionError indicates that Build was given a record with an empty
// extension.
type EmptyExtensionError struct {
	Record Record
}

// Error fulfills the error interface.
func (err EmptyExtensionError) Error() string {
	return fmt.Sprintf("empty extension for %s", err.Record.MediaType())
}

var _ error = EmptyExtensionError{}

// }}}

// type InvalidMediaTypeError {{{

// InvalidMediaTypeError indicates a record whose type or subtype is not a
// single non-empty token.
type InvalidMediaTypeError struct {
	Record Record
}

// Error fulfills the error interface.
func (err InvalidMediaTypeError) Error() string {
	return fmt.Sprintf("invalid media type %q/%q for extension %q", err.Record.Type, err.Record.Subtype, err.Record.Extension)
}

var _ error = InvalidMediaTypeError{}

// }}}

// type DataFileError {{{

// DataFileError indicates a problem while loading a JSON data file.
type DataFileError struct {
	Section string
	Err     error
}

// Error fulfills the error interface.
func (err DataFileError) Error() string {
	var buf strings.Builder
	buf.WriteString("failed to load data file: ")
	if err.Section != "" {
		buf.WriteString(err.Section)
		buf.WriteString(": ")
	}
	buf.WriteString(err.Err.Error())
	return buf.String()
}

// Unwrap returns the underlying cause of this error.
func (err DataFileError) Unwrap() error {
	return err.Err
}

var _ error = DataFileError{}

// }}}

// type InvalidEnumNameError {{{

// InvalidEnumNameError indicates an enum name that could not be parsed.
type InvalidEnumNameError struct {
	Type    string
	Name    string
	Allowed []string
}

// Error fulfills the error interface.
func (err InvalidEnumNameError) Error() string {
	return fmt.Sprintf("invalid %s name %q; must be one of %q", err.Type, err.Name, err.Allowed)
}

var _ error = InvalidEnumNameError{}

// }}}
