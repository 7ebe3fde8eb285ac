// Command "mimegen" reads a MIME type registry in Apache mime.types format,
// deduplicates it, and writes a lookup table as Go source or as a JSON data
// file.
//
// Usage:
//
//	mimegen [<flags>] <source>
//
// Flags:
//
//	-V, --version             print version and exit
//	-o, --output=path         output file [default: "-", stdout]
//	-f, --format=go|json      output format [default: go]
//	-p, --package=name        Go package name [default: mimetable]
//	-m, --all-extensions      register every extension on a line
//	-t, --timeout=dur         source read timeout [default: 60s]
//	-M, --metrics-file=path   write run metrics in Prometheus text format
//	-J, --log-journald        log to journald
//	-l, --log-file=path       log JSON to file
//	-S, --log-stderr          log JSON to stderr
//	-v, --verbose             enable debug logging
//	-d, --debug               enable debug and trace logging
//
// The source is a path, a file://, http://, https://, zk://, or etcd:// URL,
// or "embedded:" for the registry compiled into mimetable.
package main

import (
	"bytes"
	"context"
	"os"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/internal/misc"
	"github.com/chronos-tachyon/mimetable/lib/mainutil"
	"github.com/chronos-tachyon/mimetable/lib/mimegen"
	"github.com/chronos-tachyon/mimetable/lib/mimesource"
	"github.com/chronos-tachyon/mimetable/lib/mimetypes"
	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

var (
	flagOutput        string        = "-"
	flagFormat        string        = constants.FormatGo
	flagPackage       string        = mimegen.DefaultPackage
	flagAllExtensions bool
	flagTimeout       time.Duration = 60 * time.Second
	flagMetricsFile   string
)

func init() {
	getopt.SetParameters("<source>")

	mainutil.SetAppVersion(mainutil.MimetableVersion())
	mainutil.RegisterVersionFlag()
	mainutil.RegisterLoggingFlags()

	getopt.FlagLong(&flagOutput, "output", 'o', "output file, or \"-\" for stdout")
	getopt.FlagLong(&flagFormat, "format", 'f', "output format: \"go\" or \"json\"")
	getopt.FlagLong(&flagPackage, "package", 'p', "package name for Go output")
	getopt.FlagLong(&flagAllExtensions, "all-extensions", 'm', "register every extension listed on a line, not just the first")
	getopt.FlagLong(&flagTimeout, "timeout", 't', "timeout for reading the source")
	getopt.FlagLong(&flagMetricsFile, "metrics-file", 'M', "write run metrics to this file in Prometheus text format")
}

func main() {
	getopt.Parse()

	mainutil.InitVersion()

	mainutil.InitLogging()
	defer mainutil.DoneLogging()

	mainutil.InitContext()
	defer mainutil.CancelRootContext()

	runID := xid.New()
	logger := log.Logger.With().Str("run", runID.String()).Logger()

	if getopt.NArgs() != 1 {
		logger.Fatal().
			Int("expected", 1).
			Int("actual", getopt.NArgs()).
			Msg("wrong number of positional arguments")
	}
	source := getopt.Arg(0)

	switch flagFormat {
	case constants.FormatGo:
	case constants.FormatJSON:
	default:
		logger.Fatal().
			Str("input", flagFormat).
			Msg("--format: must be \"go\" or \"json\"")
	}

	mode := mimetypes.FirstExtension
	if flagAllExtensions {
		mode = mimetypes.AllExtensions
	}

	if flagOutput != "-" {
		abs, err := mimeutil.ExpandPath(flagOutput)
		if err != nil {
			logger.Fatal().
				Str("input", flagOutput).
				Err(err).
				Msg("--output: failed to process path")
		}
		flagOutput = abs
	}

	var metrics *mainutil.RunMetrics
	if flagMetricsFile != "" {
		abs, err := mimeutil.ExpandPath(flagMetricsFile)
		if err != nil {
			logger.Fatal().
				Str("input", flagMetricsFile).
				Err(err).
				Msg("--metrics-file: failed to process path")
		}
		flagMetricsFile = abs
		metrics = mainutil.NewRunMetrics("mimegen", runID)
	}

	ctx, cancel := mainutil.WithTimeout(flagTimeout)
	defer cancel()

	stats, err := run(ctx, logger, source, mode)

	if metrics != nil {
		recordStats(metrics, stats)
		metrics.Finish(err == nil)
		if err2 := metrics.WriteFile(flagMetricsFile); err2 != nil {
			logger.Error().
				Err(err2).
				Msg("failed to write metrics")
		}
	}

	if err != nil {
		logger.Fatal().
			Str("source", source).
			Err(err).
			Msg("failed to generate table")
	}

	logger.Info().
		Str("source", source).
		Str("output", flagOutput).
		Str("format", flagFormat).
		Stringer("mode", mode).
		Int("lines", stats.Lines).
		Int("records", stats.Records).
		Int("duplicates", stats.Duplicates).
		Int("emptyExtensions", stats.EmptyExtensions).
		Msg("OK")
}

func run(ctx context.Context, logger zerolog.Logger, source string, mode mimetypes.ExtensionMode) (mimetypes.Stats, error) {
	var stats mimetypes.Stats

	text, err := mimesource.Fetch(ctx, source, mimesource.Options{Logger: &logger})
	if err != nil {
		return stats, err
	}

	records, stats, err := mimetypes.Parse(text, mimetypes.Options{Mode: mode})
	if err != nil {
		return stats, err
	}

	logger.Debug().
		Int("lines", stats.Lines).
		Int("comments", stats.Comments).
		Int("blank", stats.Blank).
		Int("records", stats.Records).
		Msg("parsed registry")

	var buf bytes.Buffer
	switch flagFormat {
	case constants.FormatJSON:
		err = mimegen.WriteJSON(&buf, records, mimegen.JSONOptions{Source: source})
	default:
		err = mimegen.WriteGo(&buf, records, mimegen.GoOptions{Package: flagPackage, Source: source})
	}
	if err != nil {
		return stats, err
	}

	if flagOutput == "-" {
		_, err = os.Stdout.Write(buf.Bytes())
		return stats, err
	}
	return stats, misc.WriteFileAtomic(flagOutput, buf.Bytes(), 0o644)
}

func recordStats(metrics *mainutil.RunMetrics, stats mimetypes.Stats) {
	metrics.SetCount("lines", stats.Lines)
	metrics.SetCount("blank", stats.Blank)
	metrics.SetCount("comments", stats.Comments)
	metrics.SetCount("candidates", stats.Candidates)
	metrics.SetCount("empty_extensions", stats.EmptyExtensions)
	metrics.SetCount("duplicates", stats.Duplicates)
	metrics.SetCount("records", stats.Records)
}
