package mimetypes

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

const linePattern = `^\s*([^\s/]+)/(\S+)\s*(.*)$`

const maxLineLength = 1 << 20

var reLine = regexp.MustCompile(linePattern)

// Options controls how registry text is parsed.
type Options struct {
	// Mode selects what happens to lines listing more than one extension.
	// The zero value is FirstExtension.
	Mode ExtensionMode
}

// Parse parses registry text and deduplicates the result, returning one
// record per distinct extension in first-seen order.
func Parse(text string, opts Options) ([]Record, Stats, error) {
	return ParseReader(strings.NewReader(text), opts)
}

// ParseReader is Parse for an io.Reader.
func ParseReader(r io.Reader, opts Options) ([]Record, Stats, error) {
	records, stats, err := ParseLines(r, opts)
	if err != nil {
		return nil, stats, err
	}
	records = Dedup(records, &stats)
	return records, stats, nil
}

// ParseLines parses registry text into candidate records, in source order,
// without deduplicating.  Candidates with an empty extension are included.
//
// Parsing stops at the first line that is neither ignorable nor a valid
// entry; the returned error is a LineError and no records are returned.
func ParseLines(r io.Reader, opts Options) ([]Record, Stats, error) {
	var stats Stats

	if uint(opts.Mode) >= uint(len(extensionModeData)) {
		return nil, stats, InvalidEnumNameError{
			Type:    "ExtensionMode",
			Name:    opts.Mode.GoString(),
			Allowed: makeAllowedNames(extensionModeData),
		}
	}

	records := make([]Record, 0, 1024)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()

		if line == "" {
			stats.Blank++
			continue
		}
		if line[0] == '#' {
			stats.Comments++
			continue
		}

		match := reLine.FindStringSubmatch(line)
		if match == nil {
			return nil, stats, LineError{
				Line: stats.Lines,
				Text: line,
				Err:  mimeutil.ErrFailedToMatch,
			}
		}

		typ, subtype, rest := match[1], match[2], match[3]
		exts := splitExtensions(rest, opts.Mode)
		for _, ext := range exts {
			records = append(records, Record{
				Extension: ext,
				Type:      typ,
				Subtype:   subtype,
				Line:      stats.Lines,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, ReadError{Line: stats.Lines, Err: err}
	}

	stats.Candidates = len(records)
	return records, stats, nil
}

// splitExtensions returns the extension tokens of one line.  It always
// returns at least one element; a line with no extension yields [""].
func splitExtensions(rest string, mode ExtensionMode) []string {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return []string{""}
	}
	if mode == FirstExtension {
		return fields[:1]
	}
	return fields
}
