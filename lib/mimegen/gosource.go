package mimegen

import (
	"bytes"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"text/template"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/lib/mimetypes"
)

// DefaultPackage is the package name used when GoOptions.Package is empty.
const DefaultPackage = "mimetable"

// DefaultImportPath is the import path of the mimetypes package, as seen by
// the generated code.
const DefaultImportPath = "github.com/chronos-tachyon/mimetable/lib/mimetypes"

// GoOptions controls WriteGo.
type GoOptions struct {
	// Package is the package clause of the generated file.
	Package string

	// Source is recorded in a comment.  It is usually the source
	// identifier that the records were read from.
	Source string

	// ImportPath overrides DefaultImportPath.
	ImportPath string
}

type goTemplateData struct {
	Header     string
	Package    string
	Source     string
	ImportPath string
	Records    []mimetypes.Record
}

var goTemplate = template.Must(template.New("gosource").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`{{.Header}}
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import "{{.ImportPath}}"

// Lookup returns the media type registered for ext.  The match is exact.
func Lookup(ext string) (mimetypes.MediaType, bool) {
	switch ext {
{{- range .Records}}
	case {{quote .Extension}}:
		return mimetypes.MediaType{Type: {{quote .Type}}, Subtype: {{quote .Subtype}}}, true
{{- end}}
	}
	return mimetypes.MediaType{}, false
}

var extensions = [...]string{
{{- range .Records}}
	{{quote .Extension}},
{{- end}}
}

// Extensions returns every registered extension in registry order.  The
// caller owns the returned slice.
func Extensions() []string {
	out := make([]string, len(extensions))
	copy(out, extensions[:])
	return out
}

// NewTable returns a new *mimetypes.Table holding the same entries as Lookup.
func NewTable() *mimetypes.Table {
	return mimetypes.MustBuild([]mimetypes.Record{
{{- range .Records}}
		{Extension: {{quote .Extension}}, Type: {{quote .Type}}, Subtype: {{quote .Subtype}}},
{{- end}}
	})
}
`))

// WriteGo writes gofmt'd Go source implementing a lookup over records.
// The records must already be deduplicated; they are validated with
// mimetypes.Build before anything is written.
func WriteGo(w io.Writer, records []mimetypes.Record, opts GoOptions) error {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	if opts.ImportPath == "" {
		opts.ImportPath = DefaultImportPath
	}

	if !token.IsIdentifier(opts.Package) {
		return PackageNameError{Package: opts.Package}
	}

	if _, err := mimetypes.Build(records); err != nil {
		return err
	}

	data := goTemplateData{
		Header:     constants.GeneratedHeader,
		Package:    opts.Package,
		Source:     sanitizeComment(opts.Source),
		ImportPath: opts.ImportPath,
		Records:    records,
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, data); err != nil {
		return GenerateError{Stage: "template", Err: err}
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return GenerateError{Stage: "gofmt", Err: err}
	}

	if _, err := w.Write(formatted); err != nil {
		return GenerateError{Stage: "write", Err: err}
	}
	return nil
}

func sanitizeComment(str string) string {
	out := []byte(str)
	for i, ch := range out {
		if ch == '\n' || ch == '\r' {
			out[i] = ' '
		}
	}
	return string(out)
}
