package mimegen

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/lib/mimetypes"
)

func TestWriteJSON_RoundTrip(t *testing.T) {
	records := mustParse(t, twoLineRegistry, mimetypes.AllExtensions)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, records, JSONOptions{Source: "https://example.com/mime.types"}); err != nil {
		t.Fatalf("WriteJSON: unexpected error: %v", err)
	}

	var df mimetypes.DataFile
	if err := json.Unmarshal(buf.Bytes(), &df); err != nil {
		t.Fatalf("json.Unmarshal: unexpected error: %v", err)
	}
	if df.Format != constants.DataFileFormat {
		t.Errorf("expected format %q, got %q", constants.DataFileFormat, df.Format)
	}
	if df.Source != "https://example.com/mime.types" {
		t.Errorf("expected source to be recorded, got %q", df.Source)
	}

	table, err := mimetypes.LoadJSON(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("LoadJSON: unexpected error: %v", err)
	}

	expectExts := []string{"flv", "txt,", "text"}
	if actual := table.Extensions(); !reflect.DeepEqual(actual, expectExts) {
		t.Errorf("expected extensions %q, got %q", expectExts, actual)
	}
	mt, found := table.Lookup("flv")
	if !found || mt != (mimetypes.MediaType{Type: "video", Subtype: "x-flv"}) {
		t.Errorf("Lookup(flv): got %#v, %v", mt, found)
	}
}

func TestWriteJSON_Compact(t *testing.T) {
	records := []mimetypes.Record{
		{Extension: "flv", Type: "video", Subtype: "x-flv", Line: 1},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, records, JSONOptions{Compact: true}); err != nil {
		t.Fatalf("WriteJSON: unexpected error: %v", err)
	}

	expect := `{"format":"mimetable/v1","entries":[{"ext":"flv","type":"video","subtype":"x-flv"}]}` + "\n"
	if buf.String() != expect {
		t.Errorf("expected %q, got %q", expect, buf.String())
	}
	if strings.Contains(buf.String(), "source") {
		t.Errorf("expected empty source to be omitted")
	}
}

func TestWriteJSON_Errors(t *testing.T) {
	dup := []mimetypes.Record{
		{Extension: "rar", Type: "application", Subtype: "rar", Line: 1},
		{Extension: "rar", Type: "application", Subtype: "vnd.rar", Line: 2},
	}

	var buf bytes.Buffer
	err := WriteJSON(&buf, dup, JSONOptions{})
	if !errors.As(err, &mimetypes.DuplicateExtensionError{}) {
		t.Errorf("expected DuplicateExtensionError, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing to be written on error, got %q", buf.String())
	}
}
