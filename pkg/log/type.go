package log

import (
	"io"

	"go.uber.org/zap"
)

// ZapConfig holds configuration for the Zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Output defaults to os.Stderr, stdout is reserved for decrypted readings.
	Output io.Writer
}

// zapLogger implements Logger.
type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         *ZapConfig
}
