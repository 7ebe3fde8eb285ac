package mimesource

import (
	"context"
	"strings"
	"testing"

	"github.com/chronos-tachyon/mimetable/dist"
)

func TestEmbeddedSource_Read(t *testing.T) {
	text, err := Fetch(context.Background(), "embedded:", Options{})
	if err != nil {
		t.Fatalf("Fetch: unexpected error: %v", err)
	}
	if text != string(dist.DefaultMimeTypes()) {
		t.Errorf("Fetch: content differs from dist.DefaultMimeTypes")
	}
	if !strings.Contains(text, "video/x-flv") {
		t.Errorf("Fetch: expected embedded registry to mention video/x-flv")
	}
}
