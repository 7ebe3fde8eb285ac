// Package mimegen renders a deduplicated list of registry records as a build
// artifact: either gofmt'd Go source containing a switch-based Lookup
// function, or a JSON data file readable by mimetypes.LoadJSON.
//
// Output is a pure function of the input: the same records always produce
// the same bytes.
package mimegen
