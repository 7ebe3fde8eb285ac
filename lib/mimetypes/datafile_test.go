package mimetypes

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoadJSON(t *testing.T) {
	records, _, err := Parse("video/x-flv flv\ntext/plain txt text\n", Options{Mode: AllExtensions})
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}

	raw, err := json.Marshal(NewDataFile("file:///etc/mime.types", records))
	if err != nil {
		t.Fatalf("json.Marshal: unexpected error: %v", err)
	}

	table, err := LoadJSON(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("LoadJSON: unexpected error: %v", err)
	}

	expected := []string{"flv", "txt", "text"}
	if exts := table.Extensions(); !reflect.DeepEqual(exts, expected) {
		t.Errorf("Extensions: expected %q, got %q", expected, exts)
	}
	if mt, found := table.Lookup("text"); !found || mt.String() != "text/plain" {
		t.Errorf("Lookup(\"text\"): got %v, %v", mt, found)
	}
}

func TestLoadJSON_Errors(t *testing.T) {
	type testRow struct {
		Name    string
		Input   string
		Section string
	}

	testData := []testRow{
		{
			Name:  "not-json",
			Input: "video/x-flv flv",
		},
		{
			Name:  "unknown-field",
			Input: `{"format":"mimetable/v1","entries":[],"extra":1}`,
		},
		{
			Name:    "wrong-format",
			Input:   `{"format":"mimetable/v0","entries":[]}`,
			Section: "format",
		},
		{
			Name:    "missing-entries",
			Input:   `{"format":"mimetable/v1"}`,
			Section: "entries",
		},
		{
			Name:    "duplicate",
			Input:   `{"format":"mimetable/v1","entries":[{"ext":"txt","type":"text","subtype":"plain"},{"ext":"txt","type":"text","subtype":"x-other"}]}`,
			Section: "entries",
		},
		{
			Name:    "empty-extension",
			Input:   `{"format":"mimetable/v1","entries":[{"ext":"","type":"text","subtype":"plain"}]}`,
			Section: "entries",
		},
	}

	for _, row := range testData {
		t.Run(row.Name, func(t *testing.T) {
			_, err := LoadJSON(strings.NewReader(row.Input))
			var dfErr DataFileError
			if !errors.As(err, &dfErr) {
				t.Fatalf("LoadJSON: expected DataFileError, got %v", err)
			}
			if dfErr.Section != row.Section {
				t.Errorf("DataFileError.Section: expected %q, got %q", row.Section, dfErr.Section)
			}
		})
	}
}

func TestLoadJSON_EmptyTable(t *testing.T) {
	table, err := LoadJSON(strings.NewReader(`{"format":"mimetable/v1","entries":[]}`))
	if err != nil {
		t.Fatalf("LoadJSON: unexpected error: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len: expected 0, got %d", table.Len())
	}
}
