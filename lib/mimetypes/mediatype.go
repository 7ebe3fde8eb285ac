package mimetypes

import (
	"strings"
)

// MediaType is a MIME type split into its primary type and its subtype.
//
// Parameters (such as "charset=utf-8") are not modeled; every MediaType
// produced by this package has an empty parameter set.
type MediaType struct {
	Type    string
	Subtype string
}

// IsZero returns true iff this is the zero MediaType.
func (mt MediaType) IsZero() bool {
	return mt.Type == "" && mt.Subtype == ""
}

// AppendTo appends the "type/subtype" representation to the given Builder.
func (mt MediaType) AppendTo(out *strings.Builder) {
	out.WriteString(mt.Type)
	out.WriteByte('/')
	out.WriteString(mt.Subtype)
}

// String returns the "type/subtype" representation.
func (mt MediaType) String() string {
	if mt.IsZero() {
		return ""
	}
	var buf strings.Builder
	buf.Grow(len(mt.Type) + len(mt.Subtype) + 1)
	mt.AppendTo(&buf)
	return buf.String()
}

// GoString returns a Go expression for this MediaType.
func (mt MediaType) GoString() string {
	var buf strings.Builder
	buf.WriteString("mimetypes.MediaType{Type: ")
	buf.WriteString(quote(mt.Type))
	buf.WriteString(", Subtype: ")
	buf.WriteString(quote(mt.Subtype))
	buf.WriteString("}")
	return buf.String()
}
