package mimesource

import (
	"context"
	"errors"
	"strings"

	"github.com/go-zookeeper/zk"
	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/lib/mainutil"
)

// ZKSource reads a registry from the data of a single ZooKeeper node.
type ZKSource struct {
	Config mainutil.ZKConfig
	Path   string

	conn     *zk.Conn
	logger   *zerolog.Logger
	maxBytes int64
}

func parseZK(identifier string, rest string, opts Options) (Source, error) {
	servers, path, options, err := splitServersAndPath(rest)
	if err != nil {
		return nil, SourceError{Source: identifier, Stage: StageParse, Err: err}
	}

	var cfg mainutil.ZKConfig
	if err := cfg.Parse(servers + options); err != nil {
		return nil, SourceError{Source: identifier, Stage: StageParse, Err: err}
	}

	return &ZKSource{
		Config:   cfg,
		Path:     path,
		conn:     opts.ZKConn,
		logger:   opts.Logger,
		maxBytes: opts.MaxBytes,
	}, nil
}

// String returns "zk://" followed by the server list and the node path.
func (src *ZKSource) String() string {
	return constants.SchemeZK + "://" + strings.Join(src.Config.Servers, ",") + src.Path
}

// Read fulfills Source.
func (src *ZKSource) Read(ctx context.Context) (string, error) {
	logger := loggerOrNop(src.logger)

	conn := src.conn
	if conn == nil {
		logger.Debug().
			Str("zk", src.Config.String()).
			Msg("connecting to ZooKeeper")

		c, err := src.Config.Connect(ctx)
		if err != nil {
			return "", src.fail(StageConnect, err)
		}
		conn = c
		defer conn.Close()
	}

	type result struct {
		raw []byte
		err error
	}

	ch := make(chan result, 1)
	go func() {
		raw, _, err := conn.Get(src.Path)
		ch <- result{raw, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		return "", src.fail(StageConnect, ctx.Err())
	case r = <-ch:
	}

	if r.err != nil {
		return "", src.fail(zkStage(r.err), r.err)
	}
	if len(r.raw) == 0 {
		return "", src.fail(StageNotFound, ErrNoData)
	}

	limit := src.maxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	text, err := readLimited(r.raw, limit)
	if err != nil {
		return "", src.fail(StageRead, err)
	}

	logger.Debug().
		Str("source", src.String()).
		Int("bytes", len(r.raw)).
		Msg("read registry from ZooKeeper")
	return text, nil
}

func (src *ZKSource) fail(stage Stage, err error) error {
	return SourceError{Source: src.String(), Stage: stage, Err: err}
}

func zkStage(err error) Stage {
	switch {
	case errors.Is(err, zk.ErrNoNode):
		return StageNotFound
	case errors.Is(err, zk.ErrConnectionClosed):
		return StageConnect
	case errors.Is(err, zk.ErrClosing):
		return StageConnect
	case errors.Is(err, zk.ErrNoServer):
		return StageConnect
	case errors.Is(err, zk.ErrSessionExpired):
		return StageConnect
	default:
		return StageRead
	}
}

var _ Source = (*ZKSource)(nil)
