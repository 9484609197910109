// Package observers provides ready-made observers for monitoring state
// machine execution: structured logging via slog and Prometheus metrics.
package observers

import (
	"context"
	"log/slog"

	"github.com/anggasct/tickfsm"
)

// Logging logs every executed transition through a slog.Logger.
type Logging struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogging creates a logging observer. A nil logger falls back to
// slog.Default. Transitions log at Info level unless changed with WithLevel.
func NewLogging(logger *slog.Logger) *Logging {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{logger: logger, level: slog.LevelInfo}
}

// WithLevel sets the level transitions are logged at.
func (o *Logging) WithLevel(level slog.Level) *Logging {
	o.level = level
	return o
}

// OnTransition logs the executed transition.
func (o *Logging) OnTransition(from, to tickfsm.State) {
	o.logger.Log(context.Background(), o.level, "transition",
		slog.String("from", tickfsm.StateName(from)),
		slog.String("to", tickfsm.StateName(to)),
	)
}
