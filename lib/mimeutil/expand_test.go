package mimeutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandString(t *testing.T) {
	t.Setenv("MIMETABLE_TEST_DIR", "/srv/mime")

	type testRow struct {
		Input   string
		Output  string
		WantErr bool
	}

	testData := []testRow{
		{Input: "", Output: ""},
		{Input: "plain", Output: "plain"},
		{Input: "${MIMETABLE_TEST_DIR}/mime.types", Output: "/srv/mime/mime.types"},
		{Input: "$MIMETABLE_TEST_DIR", Output: "/srv/mime"},
		{Input: "${MIMETABLE_TEST_UNSET_VAR}/x", Output: "/x", WantErr: true},
	}

	for _, row := range testData {
		t.Run(row.Input, func(t *testing.T) {
			output, err := ExpandString(row.Input)
			if row.WantErr {
				var lookupErr EnvVarLookupError
				if !errors.As(err, &lookupErr) {
					t.Errorf("ExpandString(%q): expected EnvVarLookupError, got %v", row.Input, err)
				}
				if !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("ExpandString(%q): expected error to match fs.ErrNotExist", row.Input)
				}
			} else if err != nil {
				t.Errorf("ExpandString(%q): unexpected error: %v", row.Input, err)
			}
			if output != row.Output {
				t.Errorf("ExpandString(%q): expected %q, got %q", row.Input, row.Output, output)
			}
		})
	}
}

func TestExpandPathWithCWD(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	type testRow struct {
		Input  string
		CWD    string
		Output string
	}

	testData := []testRow{
		{Input: "/etc/mime.types", CWD: "/", Output: "/etc/mime.types"},
		{Input: "conf/mime.types", CWD: "/opt/app", Output: "/opt/app/conf/mime.types"},
		{Input: "~/mime.types", CWD: "/", Output: "/home/tester/mime.types"},
		{Input: "/a/b/../c", CWD: "/", Output: "/a/c"},
		{Input: "https://example.com/mime.types", CWD: "/", Output: "https://example.com/mime.types"},
	}

	for _, row := range testData {
		t.Run(row.Input, func(t *testing.T) {
			output, err := ExpandPathWithCWD(row.Input, row.CWD)
			if err != nil {
				t.Fatalf("ExpandPathWithCWD(%q, %q): unexpected error: %v", row.Input, row.CWD, err)
			}
			if output != row.Output {
				t.Errorf("ExpandPathWithCWD(%q, %q): expected %q, got %q", row.Input, row.CWD, row.Output, output)
			}
		})
	}
}

func TestExpandPassword(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "secret")
	if err := os.WriteFile(secretPath, []byte("hunter2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := ExpandPassword("@" + secretPath)
	if err != nil {
		t.Fatalf("ExpandPassword: unexpected error: %v", err)
	}
	if output != "hunter2" {
		t.Errorf("ExpandPassword: expected %q, got %q", "hunter2", output)
	}

	output, err = ExpandPassword("literal")
	if err != nil {
		t.Fatalf("ExpandPassword: unexpected error: %v", err)
	}
	if output != "literal" {
		t.Errorf("ExpandPassword: expected %q, got %q", "literal", output)
	}
}
