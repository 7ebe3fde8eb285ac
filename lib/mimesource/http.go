package mimesource

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

// UserAgent is sent with every HTTP request.
const UserAgent = "mimetable-mimesource"

// HTTPSource reads a registry with a single HTTP GET request.
type HTTPSource struct {
	URL *url.URL

	client   *http.Client
	logger   *zerolog.Logger
	maxBytes int64
}

func parseHTTP(identifier string, opts Options) (Source, error) {
	u, err := url.Parse(identifier)
	if err != nil {
		return nil, SourceError{Source: identifier, Stage: StageParse, Err: err}
	}
	if u.Host == "" {
		return nil, SourceError{
			Source: identifier,
			Stage:  StageParse,
			Err:    mimeutil.HostPortError{HostPort: u.Host, Err: mimeutil.ErrExpectNonEmpty},
		}
	}
	return &HTTPSource{
		URL:      u,
		client:   opts.HTTPClient,
		logger:   opts.Logger,
		maxBytes: opts.MaxBytes,
	}, nil
}

// String returns the URL.
func (src *HTTPSource) String() string {
	return src.URL.String()
}

// Read fulfills Source.  Any response status outside 200..299 is a failure.
func (src *HTTPSource) Read(ctx context.Context) (string, error) {
	client := src.client
	if client == nil {
		client = http.DefaultClient
	}
	limit := src.maxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	logger := loggerOrNop(src.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL.String(), nil)
	if err != nil {
		return "", src.fail(StageParse, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/plain, */*;q=0.5")

	logger.Debug().
		Str("source", src.String()).
		Msg("HTTP GET")

	resp, err := client.Do(req)
	if err != nil {
		return "", src.fail(StageConnect, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", src.fail(StageStatus, StatusError{Code: resp.StatusCode, Status: resp.Status})
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return "", src.fail(StageRead, err)
	}

	text, err := readLimited(raw, limit)
	if err != nil {
		return "", src.fail(StageRead, err)
	}

	logger.Debug().
		Str("source", src.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Msg("read registry over HTTP")
	return text, nil
}

func (src *HTTPSource) fail(stage Stage, err error) error {
	return SourceError{Source: src.String(), Stage: stage, Err: err}
}

var _ Source = (*HTTPSource)(nil)
