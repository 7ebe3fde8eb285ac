package mimesource

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSource_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mime.types")
	contents := "# comment\nvideo/x-flv flv\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	text, err := Fetch(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Fetch(%q): unexpected error: %v", path, err)
	}
	if text != contents {
		t.Errorf("Fetch(%q): expected %q, got %q", path, contents, text)
	}

	text, err = Fetch(context.Background(), "file://"+path, Options{})
	if err != nil {
		t.Fatalf("Fetch(file://%s): unexpected error: %v", path, err)
	}
	if text != contents {
		t.Errorf("Fetch(file://%s): expected %q, got %q", path, contents, text)
	}
}

func TestFileSource_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.types")

	_, err := Fetch(context.Background(), path, Options{})

	var srcErr SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %T: %v", err, err)
	}
	if srcErr.Stage != StageNotFound {
		t.Errorf("expected stage %#v, got %#v", StageNotFound, srcErr.Stage)
	}
	if srcErr.Source != path {
		t.Errorf("expected Source %q, got %q", path, srcErr.Source)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error to match fs.ErrNotExist: %v", err)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected message to mention %q, got %q", "not found", err.Error())
	}
}

func TestFileSource_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.types")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 64)), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Fetch(context.Background(), path, Options{MaxBytes: 16})

	var srcErr SourceError
	if !errors.As(err, &srcErr) || srcErr.Stage != StageRead {
		t.Fatalf("expected SourceError at StageRead, got %v", err)
	}
	var sizeErr BodyTooLargeError
	if !errors.As(err, &sizeErr) || sizeErr.Limit != 16 {
		t.Errorf("expected BodyTooLargeError{Limit: 16}, got %v", err)
	}
}

func TestFileSource_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.types")
	if err := os.WriteFile(path, []byte("text/plain caf\xe9\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	text, err := Fetch(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Fetch: unexpected error: %v", err)
	}
	if expect := "text/plain caf�\n"; text != expect {
		t.Errorf("expected %q, got %q", expect, text)
	}
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, "/etc/mime.types", Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
