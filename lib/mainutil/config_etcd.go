package mainutil

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	v3 "go.etcd.io/etcd/client/v3"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

// DefaultEtcdDialTimeout is the dial timeout used when the configuration does
// not specify one.
const DefaultEtcdDialTimeout = 5 * time.Second

// EtcdConfig represents the configuration for an etcd.io *v3.Client.
type EtcdConfig struct {
	Enabled     bool
	Endpoints   []string
	TLS         bool
	Username    string
	Password    string
	DialTimeout time.Duration
}

// AppendTo appends the string representation to the given Builder.
func (cfg EtcdConfig) AppendTo(out *strings.Builder) {
	if !cfg.Enabled {
		return
	}
	out.WriteString(strings.Join(cfg.Endpoints, ","))
	if cfg.TLS {
		out.WriteString(";" + optionTLS + "=" + optionValueOn)
	}
	if cfg.Username != "" {
		out.WriteString(";" + optionUsername + "=")
		out.WriteString(cfg.Username)
	}
	if cfg.Password != "" {
		out.WriteString(";" + optionPassword + "=")
		out.WriteString(cfg.Password)
	}
	if cfg.DialTimeout != 0 {
		out.WriteString(";" + optionDialTimeout + "=")
		out.WriteString(cfg.DialTimeout.String())
	}
}

// String returns the string representation.
func (cfg EtcdConfig) String() string {
	if !cfg.Enabled {
		return ""
	}

	var buf strings.Builder
	buf.Grow(64)
	cfg.AppendTo(&buf)
	return buf.String()
}

// Parse parses the string representation, which is a comma-separated list of
// endpoints followed by zero or more ";name=value" options.  The "tls" option
// may be written without a value.
func (cfg *EtcdConfig) Parse(str string) error {
	if cfg == nil {
		panic(errors.New("*EtcdConfig is nil"))
	}

	wantZero := true
	defer func() {
		if wantZero {
			*cfg = EtcdConfig{}
		}
	}()

	*cfg = EtcdConfig{}

	if str == "" || str == constants.NullString {
		wantZero = false
		return nil
	}

	pieces := strings.Split(str, ";")

	for _, item := range pieces[1:] {
		name, value, complete, err := splitOption(item)
		if err != nil {
			return err
		}

		optErr := func(err error) error {
			return OptionError{Name: name, Value: value, Complete: complete, Err: err}
		}

		switch name {
		case optionTLS:
			cfg.TLS, err = strconv.ParseBool(value)
			if err != nil && value == optionValueOn {
				cfg.TLS, err = true, nil
			}
			if err != nil {
				return optErr(err)
			}

		case optionUsername:
			cfg.Username, err = mimeutil.ExpandString(value)
			if err != nil {
				return optErr(err)
			}

		case optionPassword:
			cfg.Password, err = mimeutil.ExpandPassword(value)
			if err != nil {
				return optErr(err)
			}

		case optionDialTimeout:
			cfg.DialTimeout, err = time.ParseDuration(value)
			if err != nil {
				return optErr(err)
			}

		default:
			return optErr(UnknownOptionError{})
		}
	}

	endpointListString, err := mimeutil.ExpandString(pieces[0])
	if err != nil {
		return err
	}

	cfg.Endpoints = splitList(endpointListString)
	cfg.Enabled = true

	if err := cfg.PostProcess(); err != nil {
		return err
	}

	wantZero = false
	return nil
}

// PostProcess performs data integrity checks and input post-processing.
// Endpoints without a scheme gain "http://" or "https://" to match the TLS
// setting, and endpoints without a port gain the default etcd port.
func (cfg *EtcdConfig) PostProcess() error {
	if cfg == nil {
		panic(errors.New("*EtcdConfig is nil"))
	}

	if !cfg.Enabled {
		*cfg = EtcdConfig{}
		return nil
	}

	if len(cfg.Endpoints) == 0 {
		return errors.New("len(EtcdConfig.Endpoints) == 0")
	}

	expectScheme := constants.SchemeHTTP
	if cfg.TLS {
		expectScheme = constants.SchemeHTTPS
	}

	for index, endpoint := range cfg.Endpoints {
		if endpoint == "" {
			return fmt.Errorf("EtcdConfig.Endpoints[%d] == %q", index, endpoint)
		}

		if !strings.Contains(endpoint, "://") {
			endpoint = expectScheme + "://" + endpoint
		}

		u, err := url.Parse(endpoint)
		if err != nil {
			return fmt.Errorf("failed to parse endpoint URL %q: %w", endpoint, err)
		}

		if u.Scheme != expectScheme {
			return fmt.Errorf("expected scheme %q, got scheme %q in URL %q", expectScheme, u.Scheme, u.String())
		}

		if u.Hostname() == "" {
			return mimeutil.HostPortError{HostPort: u.Host, Err: mimeutil.ErrExpectNonEmpty}
		}

		if u.Port() == "" {
			u.Host = net.JoinHostPort(u.Hostname(), constants.PortEtcd)
		}

		if u.User != nil || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
			return fmt.Errorf("URL %q contains forbidden components", u.String())
		}
		u.Path = ""

		cfg.Endpoints[index] = u.String()
	}

	return nil
}

// Connect constructs the configured etcd.io *v3.Client and dials the etcd
// cluster.
func (cfg EtcdConfig) Connect(ctx context.Context) (*v3.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	var tlsConfig *tls.Config
	if cfg.TLS {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = DefaultEtcdDialTimeout
	}

	return v3.New(v3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: dialTimeout,
		Username:    cfg.Username,
		Password:    cfg.Password,
		TLS:         tlsConfig,
		LogConfig:   NewDummyZapConfig(),
		Context:     ctx,
	})
}
