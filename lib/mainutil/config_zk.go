package mainutil

import (
	"context"
	"encoding/base64"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/internal/misc"
	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

// DefaultZKSessionTimeout is the session timeout used when the configuration
// does not specify one.
const DefaultZKSessionTimeout = 30 * time.Second

// ZKConfig represents the configuration for a *zk.Conn.
type ZKConfig struct {
	Enabled        bool
	Servers        []string
	SessionTimeout time.Duration
	Auth           ZKAuthConfig
}

// ZKAuthConfig represents the authentication portion of a ZKConfig.
type ZKAuthConfig struct {
	Enabled  bool
	Scheme   string
	Raw      []byte
	Username string
	Password string
}

// AppendTo appends the string representation to the given Builder.
func (zc ZKConfig) AppendTo(out *strings.Builder) {
	if !zc.Enabled {
		return
	}
	out.WriteString(strings.Join(zc.Servers, ","))
	if zc.SessionTimeout != 0 {
		out.WriteString(";" + optionSessionTimeout + "=")
		out.WriteString(zc.SessionTimeout.String())
	}
	if !zc.Auth.Enabled {
		return
	}
	if zc.Auth.Scheme != "" {
		out.WriteString(";" + optionAuthType + "=")
		out.WriteString(zc.Auth.Scheme)
	}
	if zc.Auth.Raw != nil {
		out.WriteString(";" + optionAuthData + "=")
		out.WriteString(base64.StdEncoding.EncodeToString(zc.Auth.Raw))
	}
	if zc.Auth.Username != "" {
		out.WriteString(";" + optionUsername + "=")
		out.WriteString(zc.Auth.Username)
	}
	if zc.Auth.Password != "" {
		out.WriteString(";" + optionPassword + "=")
		out.WriteString(zc.Auth.Password)
	}
}

// String returns the string representation.
func (zc ZKConfig) String() string {
	if !zc.Enabled {
		return ""
	}

	var buf strings.Builder
	buf.Grow(64)
	zc.AppendTo(&buf)
	return buf.String()
}

// Parse parses the string representation, which is a comma-separated list of
// servers followed by zero or more ";name=value" options.
func (zc *ZKConfig) Parse(str string) error {
	if zc == nil {
		panic(errors.New("*ZKConfig is nil"))
	}

	wantZero := true
	defer func() {
		if wantZero {
			*zc = ZKConfig{}
		}
	}()

	*zc = ZKConfig{}

	if str == "" || str == constants.NullString {
		wantZero = false
		return nil
	}

	pieces := strings.Split(str, ";")

	serverListString, err := mimeutil.ExpandString(pieces[0])
	if err != nil {
		return err
	}

	serverList := splitList(serverListString)
	if len(serverList) == 0 {
		return mimeutil.HostPortError{HostPort: pieces[0], Err: mimeutil.ErrExpectNonEmptyList}
	}

	zc.Servers = make([]string, 0, len(serverList))
	for _, server := range serverList {
		host, port, err := misc.SplitHostPort(server, constants.PortZK)
		if err != nil {
			return err
		}
		zc.Servers = append(zc.Servers, net.JoinHostPort(host, port))
	}

	for _, item := range pieces[1:] {
		name, value, complete, err := splitOption(item)
		if err != nil {
			return err
		}

		optErr := func(err error) error {
			return OptionError{Name: name, Value: value, Complete: complete, Err: err}
		}

		switch name {
		case optionSessionTimeout:
			zc.SessionTimeout, err = time.ParseDuration(value)
			if err != nil {
				return optErr(err)
			}

		case optionAuthType:
			zc.Auth.Enabled = true
			zc.Auth.Scheme = value

		case optionAuthData:
			zc.Auth.Enabled = true
			zc.Auth.Raw, err = misc.TryBase64DecodeString(value)
			if err != nil {
				return optErr(err)
			}

		case optionUsername:
			expanded, err := mimeutil.ExpandString(value)
			if err != nil {
				return optErr(err)
			}
			zc.Auth.Enabled = true
			zc.Auth.Username = expanded

		case optionPassword:
			expanded, err := mimeutil.ExpandPassword(value)
			if err != nil {
				return optErr(err)
			}
			zc.Auth.Enabled = true
			zc.Auth.Password = expanded

		default:
			return optErr(UnknownOptionError{})
		}
	}

	zc.Enabled = true
	if err := zc.PostProcess(); err != nil {
		return err
	}

	wantZero = false
	return nil
}

// PostProcess performs data integrity checks and input post-processing.
func (zc *ZKConfig) PostProcess() error {
	if zc == nil {
		panic(errors.New("*ZKConfig is nil"))
	}

	if !zc.Enabled {
		*zc = ZKConfig{}
		return nil
	}

	if len(zc.Servers) == 0 {
		return errors.New("len(ZKConfig.Servers) == 0")
	}

	if !zc.Auth.Enabled {
		zc.Auth = ZKAuthConfig{}
		return nil
	}

	if zc.Auth.Raw == nil && zc.Auth.Username == "" {
		return errors.New("must specify either \"authdata\" or \"username\"")
	}
	if zc.Auth.Raw != nil && zc.Auth.Username != "" {
		return errors.New("cannot specify both \"authdata\" and \"username\"")
	}
	if zc.Auth.Scheme == "" && zc.Auth.Raw != nil {
		return errors.New("must specify \"authtype\" with \"authdata\"")
	}
	if zc.Auth.Scheme == "" {
		zc.Auth.Scheme = "digest"
	}
	return nil
}

// Connect dials the configured ZooKeeper ensemble and authenticates, if
// authentication was requested.
func (zc ZKConfig) Connect(ctx context.Context) (*zk.Conn, error) {
	if !zc.Enabled {
		return nil, nil
	}

	sessTimeout := zc.SessionTimeout
	if sessTimeout == 0 {
		sessTimeout = DefaultZKSessionTimeout
	}

	zkconn, _, err := zk.Connect(
		zc.Servers,
		sessTimeout,
		zk.WithLogger(ZKLoggerBridge{}))
	if err != nil {
		return nil, err
	}

	if zc.Auth.Enabled {
		authRaw := zc.Auth.Raw
		if authRaw == nil {
			authRaw = []byte(zc.Auth.Username + ":" + zc.Auth.Password)
		}

		err = zkconn.AddAuth(zc.Auth.Scheme, authRaw)
		if err != nil {
			zkconn.Close()
			return nil, ZKAddAuthError{AuthScheme: zc.Auth.Scheme, Err: err}
		}
	}

	return zkconn, nil
}
