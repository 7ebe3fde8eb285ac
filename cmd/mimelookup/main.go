// Command "mimelookup" answers extension-to-MIME-type queries against a
// table produced by mimegen, or against the registry compiled into
// mimetable.
//
// Usage:
//
//	mimelookup [<flags>] <ext>...
//
// Flags:
//
//	-V, --version        print version and exit
//	-i, --input=path     JSON data file written by "mimegen --format=json"
//	         [default: the embedded registry]
//	-m, --all-extensions register every extension on a line (embedded only)
//	-J, --log-journald   log to journald
//	-l, --log-file=path  log JSON to file
//	-S, --log-stderr     log JSON to stderr
//	-v, --verbose        enable debug logging
//	-d, --debug          enable debug and trace logging
//
// For each extension, one line "<ext>\t<type>/<subtype>" is printed, or
// "<ext>\t-" if the extension is not registered.  The exit status is 1 if any
// extension was not registered.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog/log"

	"github.com/chronos-tachyon/mimetable/lib/mainutil"
	"github.com/chronos-tachyon/mimetable/lib/mimetypes"
	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

var (
	flagInput         string
	flagAllExtensions bool
)

func init() {
	getopt.SetParameters("<ext>...")

	mainutil.SetAppVersion(mainutil.MimetableVersion())
	mainutil.RegisterVersionFlag()
	mainutil.RegisterLoggingFlags()

	getopt.FlagLong(&flagInput, "input", 'i', "JSON data file to load instead of the embedded registry")
	getopt.FlagLong(&flagAllExtensions, "all-extensions", 'm', "register every extension listed on a line of the embedded registry")
}

func main() {
	getopt.Parse()

	mainutil.InitVersion()

	mainutil.InitLogging()
	defer mainutil.DoneLogging()

	if getopt.NArgs() == 0 {
		log.Logger.Fatal().
			Int("expected", 1).
			Int("actual", 0).
			Msg("wrong number of positional arguments")
	}

	table, err := loadTable()
	if err != nil {
		log.Logger.Fatal().
			Str("input", flagInput).
			Err(err).
			Msg("failed to load table")
	}

	log.Logger.Debug().
		Str("input", flagInput).
		Int("entries", table.Len()).
		Msg("loaded table")

	w := bufio.NewWriter(os.Stdout)
	missing := printLookups(w, table, getopt.Args())
	if err := w.Flush(); err != nil {
		log.Logger.Fatal().
			Err(err).
			Msg("failed to write to stdout")
	}

	if missing != 0 {
		mainutil.DoneLogging()
		os.Exit(1)
	}
}

func loadTable() (*mimetypes.Table, error) {
	if flagInput == "" {
		mode := mimetypes.FirstExtension
		if flagAllExtensions {
			mode = mimetypes.AllExtensions
		}
		return mimetypes.LoadDefaultWithOptions(mimetypes.Options{Mode: mode})
	}

	path, err := mimeutil.ExpandPath(flagInput)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return mimetypes.LoadJSON(f)
}

// printLookups writes one line per extension and returns the number of
// extensions that were not found.
func printLookups(w io.Writer, table *mimetypes.Table, exts []string) int {
	var missing int
	for _, ext := range exts {
		contentType, found := table.ContentType(ext)
		if !found {
			contentType = "-"
			missing++
		}
		fmt.Fprintf(w, "%s\t%s\n", ext, contentType)
	}
	return missing
}
