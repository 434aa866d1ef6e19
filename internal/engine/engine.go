// Package engine is the boundary between startup and the measurement engine.
//
// The engine itself (measurement scheduling, result persistence) lives outside this
// repository. Startup only hands it the resolved options and the logger.
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/config"
)

type Engine interface {
	Start(ctx context.Context, opts config.ConfigurationOptions, log *zap.Logger) error
}

// Handoff is the in-tree Engine. It records what the external engine
// receives and returns.
type Handoff struct{}

func NewHandoff() *Handoff {
	return &Handoff{}
}

func (h *Handoff) Start(ctx context.Context, opts config.ConfigurationOptions, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tls := opts.SchedulerTLS()
	engineLog := log.Sugar().Named("engine")
	engineLog.Infow("handing off to measurement engine",
		"scheduler", opts.SchedulerDBServer,
		"port", opts.SchedulerDBPort,
		"database", opts.SchedulerDatabase,
		"sslmode", tls.SSLMode,
		"dsn", opts.RedactedDSN(),
	)
	if tls.SSLMode == config.SSLModeRequire {
		engineLog.Warn("TLS certificate check for the scheduler database is turned off")
	}
	return nil
}
