package mimesource

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"go.etcd.io/etcd/api/v3/mvccpb"
	v3 "go.etcd.io/etcd/client/v3"

	"github.com/chronos-tachyon/mimetable/internal/constants"
	"github.com/chronos-tachyon/mimetable/lib/mainutil"
)

// EtcdSource reads a registry from the value of a single etcd key.
type EtcdSource struct {
	Config mainutil.EtcdConfig
	Key    string

	client   *v3.Client
	logger   *zerolog.Logger
	maxBytes int64
}

func parseEtcd(identifier string, rest string, opts Options) (Source, error) {
	endpoints, key, options, err := splitServersAndPath(rest)
	if err != nil {
		return nil, SourceError{Source: identifier, Stage: StageParse, Err: err}
	}

	var cfg mainutil.EtcdConfig
	if err := cfg.Parse(endpoints + options); err != nil {
		return nil, SourceError{Source: identifier, Stage: StageParse, Err: err}
	}

	return &EtcdSource{
		Config:   cfg,
		Key:      key,
		client:   opts.EtcdClient,
		logger:   opts.Logger,
		maxBytes: opts.MaxBytes,
	}, nil
}

// String returns "etcd://" followed by the endpoint hosts and the key.
func (src *EtcdSource) String() string {
	hosts := make([]string, len(src.Config.Endpoints))
	for index, endpoint := range src.Config.Endpoints {
		hosts[index] = endpoint
		if i := strings.Index(endpoint, "://"); i >= 0 {
			hosts[index] = endpoint[i+3:]
		}
	}
	return constants.SchemeEtcd + "://" + strings.Join(hosts, ",") + src.Key
}

// Read fulfills Source.
func (src *EtcdSource) Read(ctx context.Context) (string, error) {
	logger := loggerOrNop(src.logger)

	client := src.client
	if client == nil {
		logger.Debug().
			Str("etcd", src.Config.String()).
			Msg("connecting to etcd")

		c, err := src.Config.Connect(ctx)
		if err != nil {
			return "", src.fail(StageConnect, err)
		}
		client = c
		defer client.Close()
	}

	resp, err := client.KV.Get(ctx, src.Key)
	if err != nil {
		return "", src.fail(StageConnect, err)
	}

	kv := findKeyValue(resp.Kvs, src.Key)
	if kv == nil {
		return "", src.fail(StageNotFound, ErrNoData)
	}
	if len(kv.Value) == 0 {
		return "", src.fail(StageNotFound, ErrNoData)
	}

	limit := src.maxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	text, err := readLimited(kv.Value, limit)
	if err != nil {
		return "", src.fail(StageRead, err)
	}

	logger.Debug().
		Str("source", src.String()).
		Int64("revision", kv.ModRevision).
		Int("bytes", len(kv.Value)).
		Msg("read registry from etcd")
	return text, nil
}

func (src *EtcdSource) fail(stage Stage, err error) error {
	return SourceError{Source: src.String(), Stage: stage, Err: err}
}

func findKeyValue(kvs []*mvccpb.KeyValue, key string) *mvccpb.KeyValue {
	for _, kv := range kvs {
		if kv != nil && string(kv.Key) == key {
			return kv
		}
	}
	return nil
}

var _ Source = (*EtcdSource)(nil)
