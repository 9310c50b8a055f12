package mongo

import (
	"context"
	"log/slog"
	"time"

	"playlog/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger reports failed and slow store commands through slog.
type commandLogger struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandMonitor(baseLogger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := &commandLogger{
		logger:        baseLogger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	if l.shouldLogSlow(evt.Duration) {
		attrs := l.commandAttrs(&evt.CommandFinishedEvent)
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)

		return
	}

	if l.debug {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command", l.commandAttrs(&evt.CommandFinishedEvent)...)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.commandAttrs(&evt.CommandFinishedEvent)
	attrs = append(attrs, slog.String("error", evt.Failure))
	l.logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed", attrs...)
}

func (l *commandLogger) commandAttrs(evt *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Int64("requestID", evt.RequestID),
		slog.Duration("elapsed", evt.Duration),
	}
}

func (l *commandLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold
}
