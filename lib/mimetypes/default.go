package mimetypes

import (
	"github.com/chronos-tachyon/mimetable/dist"
)

// LoadDefault parses the registry embedded in this module and returns a new
// Table.  Each call returns an independent Table; callers that need one
// should build it once and pass it around.
func LoadDefault() (*Table, error) {
	return LoadDefaultWithOptions(Options{})
}

// LoadDefaultWithOptions is LoadDefault with explicit parse options.
func LoadDefaultWithOptions(opts Options) (*Table, error) {
	records, _, err := ParseReader(dist.DefaultMimeTypesReader(), opts)
	if err != nil {
		return nil, err
	}
	return Build(records)
}
