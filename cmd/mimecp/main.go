// Command "mimecp" reads a MIME type registry from any source, checks that it
// parses, and publishes it to a ZooKeeper node or an etcd key so that other
// hosts can build from it.
//
// Usage:
//
//	mimecp [<flags>] <source> <destination>
//
// Flags:
//
//	-V, --version        print version and exit
//	-P, --parents        create missing parent ZooKeeper nodes
//	-n, --dry-run        validate the registry but do not publish it
//	-t, --timeout=dur    timeout for the whole copy [default: 60s]
//	-J, --log-journald   log to journald
//	-l, --log-file=path  log JSON to file
//	-S, --log-stderr     log JSON to stderr
//	-v, --verbose        enable debug logging
//	-d, --debug          enable debug and trace logging
//
// The destination is a zk://servers/node/path or etcd://endpoints/key URL,
// with connection options in the query string as for mimegen sources.
package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog/log"

	"github.com/chronos-tachyon/mimetable/lib/mainutil"
	"github.com/chronos-tachyon/mimetable/lib/mimesource"
	"github.com/chronos-tachyon/mimetable/lib/mimetypes"
	"github.com/chronos-tachyon/mimetable/lib/mimeutil"
)

var (
	flagParents bool
	flagDryRun  bool
	flagTimeout time.Duration = 60 * time.Second
)

func init() {
	getopt.SetParameters("<source> <destination>")

	mainutil.SetAppVersion(mainutil.MimetableVersion())
	mainutil.RegisterVersionFlag()
	mainutil.RegisterLoggingFlags()

	getopt.FlagLong(&flagParents, "parents", 'P', "create missing parent ZooKeeper nodes")
	getopt.FlagLong(&flagDryRun, "dry-run", 'n', "validate the registry but do not publish it")
	getopt.FlagLong(&flagTimeout, "timeout", 't', "timeout for the whole copy")
}

func main() {
	getopt.Parse()

	mainutil.InitVersion()

	mainutil.InitLogging()
	defer mainutil.DoneLogging()

	mainutil.InitContext()
	defer mainutil.CancelRootContext()

	if getopt.NArgs() != 2 {
		log.Logger.Fatal().
			Int("expected", 2).
			Int("actual", getopt.NArgs()).
			Msg("wrong number of positional arguments")
	}
	srcID := getopt.Arg(0)
	dstID := getopt.Arg(1)

	dst, err := mimesource.Parse(dstID, mimesource.Options{Logger: &log.Logger})
	if err != nil {
		log.Logger.Fatal().
			Str("destination", dstID).
			Err(err).
			Msg("failed to parse destination")
	}

	ctx, cancel := mainutil.WithTimeout(flagTimeout)
	defer cancel()

	text, err := mimesource.Fetch(ctx, srcID, mimesource.Options{Logger: &log.Logger})
	if err != nil {
		log.Logger.Fatal().
			Str("source", srcID).
			Err(err).
			Msg("failed to read registry")
	}

	_, stats, err := mimetypes.Parse(text, mimetypes.Options{})
	if err != nil {
		log.Logger.Fatal().
			Str("source", srcID).
			Err(err).
			Msg("registry does not parse")
	}

	if flagDryRun {
		log.Logger.Info().
			Str("source", srcID).
			Int("records", stats.Records).
			Msg("dry run: registry is valid")
		return
	}

	switch x := dst.(type) {
	case *mimesource.ZKSource:
		err = publishZK(ctx, x, []byte(text))
	case *mimesource.EtcdSource:
		err = publishEtcd(ctx, x, text)
	default:
		err = mimeutil.SchemeError{Scheme: strings.SplitN(dstID, ":", 2)[0], Err: errors.New("destination must be a zk:// or etcd:// URL")}
	}
	if err != nil {
		log.Logger.Fatal().
			Str("destination", dst.String()).
			Err(err).
			Msg("failed to publish registry")
	}

	log.Logger.Info().
		Str("source", srcID).
		Str("destination", dst.String()).
		Int("records", stats.Records).
		Int("bytes", len(text)).
		Msg("OK")
}

func publishZK(ctx context.Context, dst *mimesource.ZKSource, data []byte) error {
	zkconn, err := dst.Config.Connect(ctx)
	if err != nil {
		return err
	}
	defer zkconn.Close()

	if flagParents {
		for _, parent := range zkParents(dst.Path) {
			_, err = zkconn.Create(parent, nil, 0, zk.WorldACL(zk.PermAll))
			if err != nil && !errors.Is(err, zk.ErrNodeExists) {
				return err
			}
		}
	}

	_, err = zkconn.Create(dst.Path, data, 0, zk.WorldACL(zk.PermAll))
	if errors.Is(err, zk.ErrNodeExists) {
		_, err = zkconn.Set(dst.Path, data, -1)
	}
	return err
}

func publishEtcd(ctx context.Context, dst *mimesource.EtcdSource, text string) error {
	client, err := dst.Config.Connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.KV.Put(ctx, dst.Key, text)
	if err != nil {
		return err
	}

	log.Logger.Debug().
		Str("key", dst.Key).
		Int64("revision", resp.Header.Revision).
		Msg("etcd Put")
	return nil
}

// zkParents returns the proper ancestors of a ZooKeeper node path, shallowest
// first, excluding "/".
func zkParents(path string) []string {
	var out []string
	for i := 1; i < len(path); i++ {
		if path[i] == '/' {
			out = append(out, path[:i])
		}
	}
	return out
}
