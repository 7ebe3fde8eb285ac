package mimesource

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// FileSource reads a registry from the local filesystem.
type FileSource struct {
	Path string

	logger   *zerolog.Logger
	maxBytes int64
}

// String returns the absolute path of the file.
func (src *FileSource) String() string {
	return src.Path
}

// Read fulfills Source.
func (src *FileSource) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", src.fail(StageConnect, err)
	}

	f, err := os.Open(src.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", src.fail(StageNotFound, err)
	}
	if err != nil {
		return "", src.fail(StageConnect, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, src.limit()+1))
	if err != nil {
		return "", src.fail(StageRead, err)
	}

	text, err := readLimited(raw, src.limit())
	if err != nil {
		return "", src.fail(StageRead, err)
	}

	src.log().Debug().
		Str("source", src.Path).
		Int("bytes", len(raw)).
		Msg("read registry file")
	return text, nil
}

func (src *FileSource) fail(stage Stage, err error) error {
	return SourceError{Source: src.Path, Stage: stage, Err: err}
}

func (src *FileSource) limit() int64 {
	if src.maxBytes <= 0 {
		return DefaultMaxBytes
	}
	return src.maxBytes
}

func (src *FileSource) log() *zerolog.Logger {
	return loggerOrNop(src.logger)
}

var _ Source = (*FileSource)(nil)
