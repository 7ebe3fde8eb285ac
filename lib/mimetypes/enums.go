package mimetypes

import (
	"fmt"
	"strings"
)

type enumData struct {
	GoName  string
	Name    string
	Aliases []string
}

func makeAllowedNames(data []enumData) []string {
	out := make([]string, len(data))
	for index, row := range data {
		out[index] = row.Name
	}
	return out
}

// type ExtensionMode {{{

// ExtensionMode selects how a registry line listing several extensions is
// turned into records.
type ExtensionMode uint8

const (
	// FirstExtension registers only the first whitespace-delimited token
	// after "type/subtype".  The token is used verbatim.
	FirstExtension ExtensionMode = iota

	// AllExtensions registers every whitespace-delimited token after
	// "type/subtype", in order.
	AllExtensions
)

var extensionModeData = []enumData{
	{"FirstExtension", "first", []string{"single", "one"}},
	{"AllExtensions", "all", []string{"multi", "every"}},
}

// ParseExtensionMode parses the string representation of an ExtensionMode.
func ParseExtensionMode(str string) (ExtensionMode, error) {
	for index, row := range extensionModeData {
		if strings.EqualFold(str, row.Name) || strings.EqualFold(str, row.GoName) {
			return ExtensionMode(index), nil
		}
		for _, alias := range row.Aliases {
			if strings.EqualFold(str, alias) {
				return ExtensionMode(index), nil
			}
		}
	}
	return 0, InvalidEnumNameError{
		Type:    "ExtensionMode",
		Name:    str,
		Allowed: makeAllowedNames(extensionModeData),
	}
}

// String returns the canonical name of this mode.
func (mode ExtensionMode) String() string {
	// out of range => intentional panic
	return extensionModeData[mode].Name
}

// GoString returns the Go constant name of this mode.
func (mode ExtensionMode) GoString() string {
	if uint(mode) >= uint(len(extensionModeData)) {
		return fmt.Sprintf("mimetypes.ExtensionMode(%d)", uint(mode))
	}
	return "mimetypes." + extensionModeData[mode].GoName
}

var _ fmt.Stringer = ExtensionMode(0)
var _ fmt.GoStringer = ExtensionMode(0)

// }}}
