// Package log is the structured diagnostics logger of the decrypt tool.
package log

import "context"

// Logger defines the interface for structured logging.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	// With returns a Logger that adds the given key/value pairs to every entry.
	With(keysAndValues ...any) Logger
	Sync() error
}

// Init initializes and returns a new Logger with the provided Zap configuration.
func Init(cfg ZapConfig) Logger {
	logger := &zapLogger{cfg: &cfg}
	logger.init()
	return logger
}

// NewContext returns a copy of ctx carrying logger, picked up by every
// Logger method called with the returned context.
func NewContext(ctx context.Context, logger Logger) context.Context {
	if zl, ok := logger.(*zapLogger); ok {
		return context.WithValue(ctx, loggerKey{}, zl.sugarLogger)
	}
	return ctx
}
