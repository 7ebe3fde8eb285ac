// Package dist contains embedded copies of files distributed with mimetable.
package dist

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed mime.types
var defaultMimeTypes []byte

// DefaultMimeTypes returns the contents of "dist/mime.types".
func DefaultMimeTypes() []byte {
	out := make([]byte, len(defaultMimeTypes))
	copy(out, defaultMimeTypes)
	return out
}

// DefaultMimeTypesReader returns a reader over "dist/mime.types".
func DefaultMimeTypesReader() io.Reader {
	return bytes.NewReader(defaultMimeTypes)
}
