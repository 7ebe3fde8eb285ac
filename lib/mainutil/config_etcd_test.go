package mainutil

import (
	"reflect"
	"testing"
	"time"
)

func TestEtcdConfig_Parse(t *testing.T) {
	t.Setenv("MIMETABLE_TEST_ETCD_USER", "builder")

	type testRow struct {
		Name    string
		Input   string
		Expect  EtcdConfig
		String  string
		WantErr bool
	}

	testData := []testRow{
		{
			Name:   "empty",
			Input:  "",
			Expect: EtcdConfig{},
			String: "",
		},
		{
			Name:  "bare-host",
			Input: "etcd1",
			Expect: EtcdConfig{
				Enabled:   true,
				Endpoints: []string{"http://etcd1:2379"},
			},
			String: "http://etcd1:2379",
		},
		{
			Name:  "tls-shorthand",
			Input: "etcd1:4001,etcd2;tls",
			Expect: EtcdConfig{
				Enabled:   true,
				Endpoints: []string{"https://etcd1:4001", "https://etcd2:2379"},
				TLS:       true,
			},
			String: "https://etcd1:4001,https://etcd2:2379;tls=on",
		},
		{
			Name:  "full",
			Input: "http://etcd1:2379/;username=${MIMETABLE_TEST_ETCD_USER};password=hunter2;dialTimeout=2s",
			Expect: EtcdConfig{
				Enabled:     true,
				Endpoints:   []string{"http://etcd1:2379"},
				Username:    "builder",
				Password:    "hunter2",
				DialTimeout: 2 * time.Second,
			},
			String: "http://etcd1:2379;username=builder;password=hunter2;dialTimeout=2s",
		},
		{Name: "no-endpoints", Input: ";tls", WantErr: true},
		{Name: "scheme-mismatch", Input: "https://etcd1;tls=false", WantErr: true},
		{Name: "path-forbidden", Input: "http://etcd1/v3", WantErr: true},
		{Name: "bad-tls-value", Input: "etcd1;tls=maybe", WantErr: true},
		{Name: "unknown-option", Input: "etcd1;keepAlive=1s", WantErr: true},
	}

	for _, row := range testData {
		t.Run(row.Name, func(t *testing.T) {
			var cfg EtcdConfig
			err := cfg.Parse(row.Input)
			if row.WantErr {
				if err == nil {
					t.Errorf("Parse(%q): expected error, got %#v", row.Input, cfg)
				}
				if !reflect.DeepEqual(cfg, EtcdConfig{}) {
					t.Errorf("Parse(%q): expected zero value after error, got %#v", row.Input, cfg)
				}
				return
			}
			if err != nil {
				t.Errorf("Parse(%q): unexpected error: %v", row.Input, err)
				return
			}
			if !reflect.DeepEqual(cfg, row.Expect) {
				t.Errorf("Parse(%q): expected %#v, got %#v", row.Input, row.Expect, cfg)
			}
			if str := cfg.String(); str != row.String {
				t.Errorf("String(): expected %q, got %q", row.String, str)
			}
		})
	}
}
