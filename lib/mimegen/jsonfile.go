package mimegen

import (
	"encoding/json"
	"io"

	"github.com/chronos-tachyon/mimetable/lib/mimetypes"
)

// JSONOptions controls WriteJSON.
type JSONOptions struct {
	// Source is recorded in the "source" field.
	Source string

	// Compact disables indentation.
	Compact bool
}

// WriteJSON writes records as a JSON data file.  The records must already be
// deduplicated; they are validated with mimetypes.Build before anything is
// written.
func WriteJSON(w io.Writer, records []mimetypes.Record, opts JSONOptions) error {
	if _, err := mimetypes.Build(records); err != nil {
		return err
	}

	df := mimetypes.NewDataFile(opts.Source, records)

	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	if !opts.Compact {
		e.SetIndent("", "  ")
	}
	if err := e.Encode(df); err != nil {
		return GenerateError{Stage: "write", Err: err}
	}
	return nil
}
