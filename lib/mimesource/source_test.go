package mimesource

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

func TestParse(t *testing.T) {
	relAbs, err := filepath.Abs("rel/mime.types")
	if err != nil {
		t.Fatalf("filepath.Abs: %v", err)
	}

	type testRow struct {
		Input  string
		Type   string
		String string
	}

	testData := []testRow{
		{"/etc/mime.types", "*mimesource.FileSource", "/etc/mime.types"},
		{"rel/mime.types", "*mimesource.FileSource", relAbs},
		{"file:///etc/mime.types", "*mimesource.FileSource", "/etc/mime.types"},
		{"file://localhost/etc/mime.types", "*mimesource.FileSource", "/etc/mime.types"},
		{"http://example.com/mime.types", "*mimesource.HTTPSource", "http://example.com/mime.types"},
		{"https://example.com:8443/conf/mime.types?raw=1", "*mimesource.HTTPSource", "https://example.com:8443/conf/mime.types?raw=1"},
		{"zk://zk1,zk2:2182/mime/types?sessionTimeout=10s", "*mimesource.ZKSource", "zk://zk1:2181,zk2:2182/mime/types"},
		{"etcd://etcd1/mime/types?tls", "*mimesource.EtcdSource", "etcd://etcd1:2379/mime/types"},
		{"embedded:", "*mimesource.EmbeddedSource", "embedded:"},
	}

	for _, row := range testData {
		t.Run(row.Input, func(t *testing.T) {
			src, err := Parse(row.Input, Options{})
			if err != nil {
				t.Errorf("Parse(%q): unexpected error: %v", row.Input, err)
				return
			}
			if actual := reflect.TypeOf(src).String(); actual != row.Type {
				t.Errorf("Parse(%q): expected type %s, got %s", row.Input, row.Type, actual)
			}
			if actual := src.String(); actual != row.String {
				t.Errorf("Parse(%q).String(): expected %q, got %q", row.Input, row.String, actual)
			}
		})
	}
}

func TestParse_ZKConfig(t *testing.T) {
	src, err := Parse("zk://zk1/mime/types?sessionTimeout=10s&username=alice&password=secret", Options{})
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	zkSrc := src.(*ZKSource)
	if zkSrc.Path != "/mime/types" {
		t.Errorf("expected Path %q, got %q", "/mime/types", zkSrc.Path)
	}
	if zkSrc.Config.SessionTimeout != 10*time.Second {
		t.Errorf("expected SessionTimeout 10s, got %v", zkSrc.Config.SessionTimeout)
	}
	if !zkSrc.Config.Auth.Enabled || zkSrc.Config.Auth.Scheme != "digest" || zkSrc.Config.Auth.Username != "alice" || zkSrc.Config.Auth.Password != "secret" {
		t.Errorf("unexpected auth config: %#v", zkSrc.Config.Auth)
	}
}

func TestParse_EtcdConfig(t *testing.T) {
	src, err := Parse("etcd://etcd1:4001,etcd2/config/mime.types?dialTimeout=3s", Options{})
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	etcdSrc := src.(*EtcdSource)
	if etcdSrc.Key != "/config/mime.types" {
		t.Errorf("expected Key %q, got %q", "/config/mime.types", etcdSrc.Key)
	}
	expectEndpoints := []string{"http://etcd1:4001", "http://etcd2:2379"}
	if !reflect.DeepEqual(etcdSrc.Config.Endpoints, expectEndpoints) {
		t.Errorf("expected Endpoints %q, got %q", expectEndpoints, etcdSrc.Config.Endpoints)
	}
	if etcdSrc.Config.DialTimeout != 3*time.Second {
		t.Errorf("expected DialTimeout 3s, got %v", etcdSrc.Config.DialTimeout)
	}
}

func TestParse_Errors(t *testing.T) {
	type testRow struct {
		Input string
		Cause error
	}

	testData := []testRow{
		{"", mimeutil.ErrExpectNonEmpty},
		{"gopher://example.com/mime.types", mimeutil.ErrNotExist},
		{"http:///mime.types", mimeutil.ErrExpectNonEmpty},
		{"file://remote/etc/mime.types", mimeutil.ErrExpectEmpty},
		{"zk://zk1", mimeutil.ErrExpectLeadingSlash},
		{"zk:///mime/types", mimeutil.ErrExpectNonEmptyList},
		{"zk://zk1/", mimeutil.ErrExpectNonEmpty},
		{"zk://zk1/mime/types/", mimeutil.ErrExpectNoEndSlash},
		{"etcd://etcd1/mime//types", mimeutil.ErrExpectNoDoubleSlash},
		{"zk://zk1/mime/types?bogus=1", nil},
		{"etcd://etcd1/mime/types?tls=maybe", nil},
	}

	for _, row := range testData {
		t.Run(row.Input, func(t *testing.T) {
			src, err := Parse(row.Input, Options{})
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %v", row.Input, src)
				return
			}

			var srcErr SourceError
			if !errors.As(err, &srcErr) {
				t.Errorf("Parse(%q): expected SourceError, got %T: %v", row.Input, err, err)
				return
			}
			if srcErr.Stage != StageParse {
				t.Errorf("Parse(%q): expected stage %#v, got %#v", row.Input, StageParse, srcErr.Stage)
			}
			if srcErr.Source != row.Input {
				t.Errorf("Parse(%q): expected Source %q, got %q", row.Input, row.Input, srcErr.Source)
			}
			if row.Cause != nil && !errors.Is(err, row.Cause) {
				t.Errorf("Parse(%q): expected error to wrap %v, got %v", row.Input, row.Cause, err)
			}
		})
	}
}

func TestStage_String(t *testing.T) {
	type testRow struct {
		Stage    Stage
		String   string
		GoString string
	}

	testData := []testRow{
		{StageParse, "parse", "mimesource.StageParse"},
		{StageConnect, "connect", "mimesource.StageConnect"},
		{StageStatus, "status", "mimesource.StageStatus"},
		{StageRead, "read", "mimesource.StageRead"},
		{StageNotFound, "notFound", "mimesource.StageNotFound"},
		{Stage(42), "stage#42", "mimesource.Stage(42)"},
	}

	for _, row := range testData {
		if actual := row.Stage.String(); actual != row.String {
			t.Errorf("String: expected %q, got %q", row.String, actual)
		}
		if actual := row.Stage.GoString(); actual != row.GoString {
			t.Errorf("GoString: expected %q, got %q", row.GoString, actual)
		}
	}
}
