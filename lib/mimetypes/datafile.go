package mimetypes

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/internal/misc"
)

// DataFile is the JSON form of a table, as written by "mimegen --format=json".
type DataFile struct {
	Format  string          `json:"format"`
	Source  string          `json:"source,omitempty"`
	Entries []DataFileEntry `json:"entries"`
}

// DataFileEntry is one row of a DataFile.
type DataFileEntry struct {
	Extension string `json:"ext"`
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
}

// NewDataFile converts records into a DataFile.
func NewDataFile(source string, records []Record) DataFile {
	entries := make([]DataFileEntry, len(records))
	for i, rec := range records {
		entries[i] = DataFileEntry{
			Extension: rec.Extension,
			Type:      rec.Type,
			Subtype:   rec.Subtype,
		}
	}
	return DataFile{
		Format:  constants.DataFileFormat,
		Source:  source,
		Entries: entries,
	}
}

// Records converts the entries back into records.  Line numbers are the
// 1-based entry indices.
func (df DataFile) Records() []Record {
	records := make([]Record, len(df.Entries))
	for i, entry := range df.Entries {
		records[i] = Record{
			Extension: entry.Extension,
			Type:      entry.Type,
			Subtype:   entry.Subtype,
			Line:      i + 1,
		}
	}
	return records
}

// LoadJSON reads a DataFile and builds a Table from it.  Unknown fields, a
// missing or foreign format tag, duplicate extensions, and empty extensions
// are all errors.
func LoadJSON(r io.Reader) (*Table, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, DataFileError{Err: err}
	}

	var df DataFile
	err = misc.StrictUnmarshalJSON(raw, &df)
	if err != nil {
		return nil, DataFileError{Err: err}
	}

	if df.Format != constants.DataFileFormat {
		return nil, DataFileError{
			Section: "format",
			Err:     fmt.Errorf("expected %q, got %q", constants.DataFileFormat, df.Format),
		}
	}

	if df.Entries == nil {
		return nil, DataFileError{
			Section: "entries",
			Err:     errors.New("missing required field"),
		}
	}

	t, err := Build(df.Records())
	if err != nil {
		return nil, DataFileError{Section: "entries", Err: err}
	}
	return t, nil
}
