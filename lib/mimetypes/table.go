package mimetypes

import (
	"strings"
)

// Table is an immutable exact-match map from file extension to MediaType.
//
// The zero value and the nil *Table are both valid, empty tables.
type Table struct {
	byExt map[string]MediaType
	order []Record
}

// Build constructs a Table from deduplicated records.  The records' order is
// preserved by Entries and Extensions.
//
// Build does not deduplicate: a repeated extension yields a
// DuplicateExtensionError and an empty extension yields an
// EmptyExtensionError.  Use Dedup (or Parse) first.
func Build(records []Record) (*Table, error) {
	t := &Table{
		byExt: make(map[string]MediaType, len(records)),
		order: make([]Record, 0, len(records)),
	}

	first := make(map[string]Record, len(records))
	for _, rec := range records {
		if rec.Extension == "" {
			return nil, EmptyExtensionError{Record: rec}
		}
		if !isToken(rec.Type) || !isToken(rec.Subtype) {
			return nil, InvalidMediaTypeError{Record: rec}
		}
		if prev, found := first[rec.Extension]; found {
			return nil, DuplicateExtensionError{First: prev, Second: rec}
		}
		first[rec.Extension] = rec
		t.byExt[rec.Extension] = rec.MediaType()
		t.order = append(t.order, rec)
	}
	return t, nil
}

// MustBuild is Build that panics on error.  It is intended for generated
// code whose records were validated when the code was generated.
func MustBuild(records []Record) *Table {
	t, err := Build(records)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the MediaType registered for ext.  The match is exact: no
// case folding and no leading-dot stripping.  A miss returns false.
func (t *Table) Lookup(ext string) (MediaType, bool) {
	if t == nil {
		return MediaType{}, false
	}
	mt, found := t.byExt[ext]
	return mt, found
}

// Has returns true iff ext is a key of this table.
func (t *Table) Has(ext string) bool {
	_, found := t.Lookup(ext)
	return found
}

// ContentType returns the "type/subtype" string for ext.
func (t *Table) ContentType(ext string) (string, bool) {
	mt, found := t.Lookup(ext)
	if !found {
		return "", false
	}
	return mt.String(), true
}

// Len returns the number of extensions in this table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Extensions returns the keys of this table in first-seen order.  The caller
// owns the returned slice.
func (t *Table) Extensions() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.order))
	for i, rec := range t.order {
		out[i] = rec.Extension
	}
	return out
}

// Entries returns the records this table was built from, in first-seen
// order.  The caller owns the returned slice.
func (t *Table) Entries() []Record {
	if t == nil {
		return nil
	}
	out := make([]Record, len(t.order))
	copy(out, t.order)
	return out
}

func isToken(str string) bool {
	return str != "" && !strings.ContainsAny(str, " \t\r\n")
}
