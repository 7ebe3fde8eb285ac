package mainutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"
	multierror "github.com/hashicorp/go-multierror"
	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/journald"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chronos-tachyon/mimetable/internal/misc"
	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

var unixZero = time.Unix(0, 0)

var gLogFile *LogFileWriter

var (
	flagVersion     bool
	flagDebug       bool
	flagTrace       bool
	flagLogStderr   bool
	flagLogJournald bool
	flagLogFile     string
)

// RegisterVersionFlag registers the -V/--version flag.
func RegisterVersionFlag() {
	getopt.FlagLong(&flagVersion, "version", 'V', "print version and exit")
}

// RegisterLoggingFlags registers the flags for controlling log output.
func RegisterLoggingFlags() {
	getopt.FlagLong(&flagDebug, "verbose", 'v', "enable debug logging")
	getopt.FlagLong(&flagTrace, "debug", 'd', "enable debug and trace logging")
	getopt.FlagLong(&flagLogStderr, "log-stderr", 'S', "log JSON to stderr")
	getopt.FlagLong(&flagLogJournald, "log-journald", 'J', "log to journald")
	getopt.FlagLong(&flagLogFile, "log-file", 'l', "log JSON to file")
}

// InitVersion processes the -V/--version flag.
func InitVersion() {
	if flagVersion {
		fmt.Println(AppVersion())
		os.Exit(0)
	}
}

// InitLogging processes the logging flags and sets up log.Logger.
//
// The caller must ensure that DoneLogging gets called by the end of the
// program's lifecycle.
func InitLogging() {
	if flagLogStderr && flagLogJournald {
		fmt.Fprintln(os.Stderr, "fatal: flags '--log-stderr' and '--log-journald' are mutually exclusive")
		os.Exit(1)
	}
	if flagLogStderr && flagLogFile != "" {
		fmt.Fprintln(os.Stderr, "fatal: flags '--log-stderr' and '--log-file' are mutually exclusive")
		os.Exit(1)
	}
	if flagLogJournald && flagLogFile != "" {
		fmt.Fprintln(os.Stderr, "fatal: flags '--log-journald' and '--log-file' are mutually exclusive")
		os.Exit(1)
	}

	if flagLogFile != "" {
		abs, err := mimeutil.ExpandPath(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
		flagLogFile = abs
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Second
	zerolog.DurationFieldInteger = false
	zerolog.SetGlobalLevel(LogLevel(flagDebug, flagTrace))

	switch {
	case flagLogStderr:
		// do nothing

	case flagLogJournald:
		log.Logger = log.Output(journald.NewJournalDWriter())

	case flagLogFile != "":
		var err error
		gLogFile, err = NewLogFileWriter(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: failed to open log file for append: %q: %v\n", flagLogFile, err)
			os.Exit(1)
		}
		log.Logger = log.Output(gLogFile)

	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}

// DoneLogging does end-of-program cleanup on the logging subsystem.
func DoneLogging() {
	if gLogFile != nil {
		_ = gLogFile.Close()
	}
}

// LogLevel returns the global log level implied by the -v and -d flags.
func LogLevel(verbose bool, debug bool) zerolog.Level {
	switch {
	case debug:
		return zerolog.TraceLevel
	case verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// type LogFileWriter {{{

// LogFileWriter is an io.WriteCloser that appends to a log file and waits for
// in-flight writes to finish before closing it.
type LogFileWriter struct {
	fileName   string
	mu         sync.Mutex
	cv         *sync.Cond
	file       *os.File
	numWriters int
}

// NewLogFileWriter opens fileName for append and constructs a LogFileWriter.
func NewLogFileWriter(fileName string) (*LogFileWriter, error) {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	w := &LogFileWriter{
		fileName: fileName,
		file:     file,
	}
	w.cv = sync.NewCond(&w.mu)
	return w, nil
}

// Write writes a block of data to the logfile.
//
// The input should generally be a single line of JSON data.
func (w *LogFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	file := w.file
	w.numWriters++
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.numWriters--
		if w.numWriters <= 0 {
			w.cv.Signal()
		}
		w.mu.Unlock()
	}()

	if file == nil {
		return 0, os.ErrClosed
	}
	return file.Write(p)
}

// Close syncs and closes the logfile.
func (w *LogFileWriter) Close() error {
	w.mu.Lock()
	defer func() {
		w.cv.Signal()
		w.mu.Unlock()
	}()

	for w.numWriters > 0 {
		w.cv.Wait()
	}

	if w.file == nil {
		return nil
	}

	var errs multierror.Error
	if err := w.file.Sync(); err != nil {
		errs.Errors = append(errs.Errors, err)
	}
	if err := w.file.Close(); err != nil {
		errs.Errors = append(errs.Errors, err)
	}
	w.file = nil
	return misc.ErrorOrNil(errs)
}

var _ io.WriteCloser = (*LogFileWriter)(nil)

// }}}

// type ZKLoggerBridge {{{

// ZKLoggerBridge is a zk.Logger that forwards to zerolog.
type ZKLoggerBridge struct{}

// Printf fulfills zk.Logger.
func (ZKLoggerBridge) Printf(fmt string, args ...interface{}) {
	log.Logger.Debug().Msgf("zookeeper: "+fmt, args...)
}

var _ zk.Logger = ZKLoggerBridge{}

// }}}

// type ZapLoggerBridge {{{

// ZapLoggerBridge is a zap.Sink that forwards to zerolog.  The etcd client
// logs through zap.
type ZapLoggerBridge struct{}

// Write fulfills zap.Sink.
func (ZapLoggerBridge) Write(p []byte) (int, error) {
	var data map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	if err := d.Decode(&data); err != nil {
		log.Logger.Error().Err(err).Msg("ZapLoggerBridge.Write: json.Decoder.Decode")
		return len(p), nil
	}

	var e *zerolog.Event

	if rawLevelStr, found := data[zerolog.LevelFieldName]; found {
		if levelStr, ok := rawLevelStr.(string); ok {
			delete(data, zerolog.LevelFieldName)
			l, err := zerolog.ParseLevel(levelStr)
			if err == nil {
				e = log.Logger.WithLevel(l)
			} else {
				log.Error().Str("str", levelStr).Err(err).Msg("ZapLoggerBridge.Write: ParseLevel")
			}
		}
	}
	if e == nil {
		e = log.Logger.Log()
	}

	var (
		hasMessage bool
		message    string
	)
	if rawMessageStr, found := data[zerolog.MessageFieldName]; found {
		if messageStr, ok := rawMessageStr.(string); ok {
			delete(data, zerolog.MessageFieldName)
			hasMessage = true
			message = messageStr
		}
	}

	e = e.Interface("zap", data)

	if hasMessage {
		e.Msg(message)
	} else {
		e.Send()
	}

	return len(p), nil
}

// Sync fulfills zap.Sink.
func (ZapLoggerBridge) Sync() error {
	return nil
}

// Close fulfills zap.Sink.
func (ZapLoggerBridge) Close() error {
	return nil
}

var _ zap.Sink = ZapLoggerBridge{}

// }}}

// NewDummyZapConfig returns a *zap.Config that logs to zerolog.
func NewDummyZapConfig() *zap.Config {
	return &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.WarnLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:    zerolog.MessageFieldName,
			LevelKey:      zerolog.LevelFieldName,
			TimeKey:       zerolog.TimestampFieldName,
			NameKey:       "name",
			CallerKey:     zerolog.CallerFieldName,
			FunctionKey:   "function",
			StacktraceKey: "stackTrace",
			LineEnding:    "\n",
			EncodeLevel: func(l zapcore.Level, out zapcore.PrimitiveArrayEncoder) {
				var str string
				switch l {
				case zapcore.DebugLevel:
					str = zerolog.DebugLevel.String()
				case zapcore.InfoLevel:
					str = zerolog.InfoLevel.String()
				case zapcore.WarnLevel:
					str = zerolog.WarnLevel.String()
				case zapcore.ErrorLevel:
					str = zerolog.ErrorLevel.String()
				case zapcore.DPanicLevel, zapcore.PanicLevel:
					str = zerolog.PanicLevel.String()
				case zapcore.FatalLevel:
					str = zerolog.FatalLevel.String()
				default:
					str = zerolog.NoLevel.String()
				}
				out.AppendString(str)
			},
			EncodeTime: func(t time.Time, out zapcore.PrimitiveArrayEncoder) {
				out.AppendFloat64(t.Sub(unixZero).Seconds())
			},
			EncodeDuration: func(d time.Duration, out zapcore.PrimitiveArrayEncoder) {
				out.AppendFloat64(d.Seconds())
			},
			EncodeCaller: zapcore.FullCallerEncoder,
			EncodeName:   zapcore.FullNameEncoder,
		},
		OutputPaths:      []string{"dummy:///"},
		ErrorOutputPaths: []string{"dummy:///"},
	}
}

func init() {
	_ = zap.RegisterSink("dummy", func(u *url.URL) (zap.Sink, error) {
		return ZapLoggerBridge{}, nil
	})
}
