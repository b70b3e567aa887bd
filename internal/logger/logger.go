package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Production gets JSON output at info level,
// everything else a colored console logger at debug level.
func New(env string) *zap.Logger {
	if env == "production" {
		return zap.Must(zap.NewProduction())
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zap.Must(cfg.Build())
}
