package mimetypes

import (
	"strconv"
)

// Record is one (extension, type, subtype) triple read from a registry.
type Record struct {
	// Extension is the lookup key, without a leading dot, exactly as it
	// appears in the registry.  It may be empty in the output of
	// ParseLines; Dedup and Build never keep such a record.
	Extension string

	// Type is the primary MIME type, e.g. "text".
	Type string

	// Subtype is the MIME subtype, e.g. "plain".
	Subtype string

	// Line is the 1-based line number the record came from, or 0 if the
	// record did not come from registry text.
	Line int
}

// MediaType returns the MediaType for this record.
func (rec Record) MediaType() MediaType {
	return MediaType{Type: rec.Type, Subtype: rec.Subtype}
}

// String returns a human-readable representation.
func (rec Record) String() string {
	return quote(rec.Extension) + " => " + rec.Type + "/" + rec.Subtype
}

// Stats counts what happened while turning registry text into records.
type Stats struct {
	// Lines is the number of lines read.
	Lines int

	// Blank and Comments count the lines that were ignored.
	Blank    int
	Comments int

	// Candidates is the number of records produced by the parser,
	// including those with an empty extension and duplicates.
	Candidates int

	// EmptyExtensions is the number of candidates dropped for having no
	// extension.
	EmptyExtensions int

	// Duplicates is the number of candidates dropped because an earlier
	// record already claimed the same extension.
	Duplicates int

	// Records is the number of records that survived deduplication.
	Records int
}

func quote(str string) string {
	return strconv.Quote(str)
}
