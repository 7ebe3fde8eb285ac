package mimesource

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/mimetable/dist"
	"github.com/chronos-tachyon/mimetable/internal/constants"
)

// EmbeddedSource reads the registry vendored into the dist package.
type EmbeddedSource struct {
	logger *zerolog.Logger
}

// String returns "embedded:".
func (src *EmbeddedSource) String() string {
	return constants.SchemeEmbedded + ":"
}

// Read fulfills Source.  It fails only if ctx is already done.
func (src *EmbeddedSource) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", SourceError{Source: src.String(), Stage: StageRead, Err: err}
	}
	raw := dist.DefaultMimeTypes()
	loggerOrNop(src.logger).Debug().
		Str("source", src.String()).
		Int("bytes", len(raw)).
		Msg("read embedded registry")
	return decodeText(raw), nil
}

var _ Source = (*EmbeddedSource)(nil)

func loggerOrNop(logger *zerolog.Logger) *zerolog.Logger {
	if logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return logger
}
