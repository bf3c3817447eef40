package kit

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// NewLogger builds a JSON logger writing to stderr, leaving stdout to the
// interactive session.
func NewLogger(service, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]any{"service": service}
	return cfg.Build()
}
