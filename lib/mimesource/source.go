package mimesource

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-zookeeper/zk"
	"github.com/rs/zerolog"
	v3 "go.etcd.io/etcd/client/v3"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

// DefaultMaxBytes is the default cap on the size of registry content.
const DefaultMaxBytes = 16 << 20

var reURLScheme = regexp.MustCompile(`^([a-z][a-z0-9+.-]*)://`)

// Source is a place from which registry text can be read.
type Source interface {
	// Read returns the full text content of the source.  Any error is a
	// SourceError.
	Read(ctx context.Context) (string, error)

	// String returns the canonical identifier of the source.
	String() string
}

// Options controls how a Source is constructed.  The zero value is ready to
// use.
type Options struct {
	// Logger receives debug-level events.  Defaults to a no-op logger.
	Logger *zerolog.Logger

	// HTTPClient is used by http:// and https:// sources.  Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// ZKConn, if set, is used by zk:// sources instead of dialing the
	// servers named in the identifier.  It is not closed.
	ZKConn *zk.Conn

	// EtcdClient, if set, is used by etcd:// sources instead of dialing the
	// endpoints named in the identifier.  It is not closed.
	EtcdClient *v3.Client

	// MaxBytes caps the size of the content.  Defaults to DefaultMaxBytes.
	MaxBytes int64
}

func (opts Options) withDefaults() Options {
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	return opts
}

// Parse converts a source identifier into a Source.
func Parse(identifier string, opts Options) (Source, error) {
	opts = opts.withDefaults()

	fail := func(err error) (Source, error) {
		return nil, SourceError{Source: identifier, Stage: StageParse, Err: err}
	}

	if identifier == "" {
		return fail(mimeutil.ErrExpectNonEmpty)
	}

	if identifier == constants.SchemeEmbedded+":" {
		return &EmbeddedSource{logger: opts.Logger}, nil
	}

	match := reURLScheme.FindStringSubmatch(identifier)
	if match == nil {
		path, err := mimeutil.ExpandPath(identifier)
		if err != nil {
			return fail(err)
		}
		return &FileSource{Path: path, logger: opts.Logger, maxBytes: opts.MaxBytes}, nil
	}

	scheme := match[1]
	rest := identifier[len(match[0]):]
	switch scheme {
	case constants.SchemeFile:
		return parseFile(identifier, opts)

	case constants.SchemeHTTP, constants.SchemeHTTPS:
		return parseHTTP(identifier, opts)

	case constants.SchemeZK:
		return parseZK(identifier, rest, opts)

	case constants.SchemeEtcd:
		return parseEtcd(identifier, rest, opts)

	default:
		return fail(mimeutil.SchemeError{Scheme: scheme, Err: mimeutil.ErrNotExist})
	}
}

// Fetch parses the identifier and reads the resulting Source.
func Fetch(ctx context.Context, identifier string, opts Options) (string, error) {
	src, err := Parse(identifier, opts)
	if err != nil {
		return "", err
	}
	return src.Read(ctx)
}

func parseFile(identifier string, opts Options) (Source, error) {
	u, err := url.Parse(identifier)
	if err != nil {
		return nil, SourceError{Source: identifier, Stage: StageParse, Err: err}
	}
	if u.Host != "" && u.Host != "localhost" {
		return nil, SourceError{
			Source: identifier,
			Stage:  StageParse,
			Err:    mimeutil.HostPortError{HostPort: u.Host, Err: mimeutil.ErrExpectEmpty},
		}
	}
	if u.Path == "" || u.Path[0] != '/' {
		return nil, SourceError{
			Source: identifier,
			Stage:  StageParse,
			Err:    mimeutil.PathError{Path: u.Path, Err: mimeutil.ErrExpectLeadingSlash},
		}
	}
	return &FileSource{Path: u.Path, logger: opts.Logger, maxBytes: opts.MaxBytes}, nil
}

// splitServersAndPath splits "host1,host2/path/to/node?opts" into its server
// list, its path, and a ";name=value" option string.
func splitServersAndPath(rest string) (servers string, path string, options string, err error) {
	var rawQuery string
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, rawQuery = rest[:i], rest[i+1:]
	}

	i := strings.IndexByte(rest, '/')
	if i < 0 {
		err = mimeutil.PathError{Path: "", Err: mimeutil.ErrExpectLeadingSlash}
		return
	}
	servers, path = rest[:i], rest[i:]

	if servers == "" {
		err = mimeutil.HostPortError{HostPort: servers, Err: mimeutil.ErrExpectNonEmptyList}
		return
	}
	if path == "/" {
		err = mimeutil.PathError{Path: path, Err: mimeutil.ErrExpectNonEmpty}
		return
	}
	if strings.HasSuffix(path, "/") {
		err = mimeutil.PathError{Path: path, Err: mimeutil.ErrExpectNoEndSlash}
		return
	}
	if strings.Contains(path, "//") {
		err = mimeutil.PathError{Path: path, Err: mimeutil.ErrExpectNoDoubleSlash}
		return
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return
	}

	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, key := range keys {
		for _, value := range query[key] {
			buf.WriteString(";")
			buf.WriteString(key)
			if value != "" {
				buf.WriteString("=")
				buf.WriteString(value)
			}
		}
	}
	options = buf.String()
	return
}

func readLimited(raw []byte, limit int64) (string, error) {
	if int64(len(raw)) > limit {
		return "", BodyTooLargeError{Limit: limit}
	}
	return decodeText(raw), nil
}

// decodeText converts raw bytes to a string, replacing invalid UTF-8
// sequences with U+FFFD.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "�")
}
