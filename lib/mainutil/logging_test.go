package mainutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogLevel(t *testing.T) {
	type testRow struct {
		Verbose bool
		Debug   bool
		Expect  zerolog.Level
	}

	testData := []testRow{
		{false, false, zerolog.InfoLevel},
		{true, false, zerolog.DebugLevel},
		{false, true, zerolog.TraceLevel},
		{true, true, zerolog.TraceLevel},
	}

	for _, row := range testData {
		if actual := LogLevel(row.Verbose, row.Debug); actual != row.Expect {
			t.Errorf("LogLevel(%v, %v): expected %v, got %v", row.Verbose, row.Debug, row.Expect, actual)
		}
	}
}

func TestLogFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	w, err := NewLogFileWriter(path)
	if err != nil {
		t.Fatalf("NewLogFileWriter: unexpected error: %v", err)
	}

	logger := zerolog.New(w)
	logger.Info().Str("ext", "flv").Msg("hello")

	if err := w.Close(); err != nil {
		t.Fatalf("Close: unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: unexpected error: %v", err)
	}
	if _, err := w.Write([]byte("late\n")); err != os.ErrClosed {
		t.Errorf("Write after Close: expected os.ErrClosed, got %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), `"ext":"flv"`) || !strings.Contains(string(raw), `"message":"hello"`) {
		t.Errorf("unexpected log file contents: %q", raw)
	}
}

func TestZapLoggerBridge_Write(t *testing.T) {
	var bridge ZapLoggerBridge
	inputs := [][]byte{
		[]byte(`{"level":"warn","message":"etcd says hi","endpoint":"http://etcd1:2379"}` + "\n"),
		[]byte(`not json`),
	}
	for _, input := range inputs {
		n, err := bridge.Write(input)
		if err != nil {
			t.Errorf("Write(%q): unexpected error: %v", input, err)
		}
		if n != len(input) {
			t.Errorf("Write(%q): expected n=%d, got %d", input, len(input), n)
		}
	}
}
