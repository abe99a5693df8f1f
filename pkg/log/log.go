package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the toolkit.
type Logger interface {
	Debug(ctx context.Context, msg string)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, msg string)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, msg string)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, msg string)
	Errorf(ctx context.Context, format string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug enables development config
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process logger from config. Invalid settings fall back to
// a sane console logger rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Mode == "debug" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding == "console" || cfg.Encoding == "" {
		zc.Encoding = "console"
		if cfg.ColorEnabled {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	} else {
		zc.Encoding = cfg.Encoding
	}

	logger, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, msg string) { l.sugar.Debug(msg) }
func (l *zapLogger) Debugf(_ context.Context, format string, args ...any) {
	l.sugar.Debugf(format, args...)
}
func (l *zapLogger) Info(_ context.Context, msg string) { l.sugar.Info(msg) }
func (l *zapLogger) Infof(_ context.Context, format string, args ...any) {
	l.sugar.Infof(format, args...)
}
func (l *zapLogger) Warn(_ context.Context, msg string) { l.sugar.Warn(msg) }
func (l *zapLogger) Warnf(_ context.Context, format string, args ...any) {
	l.sugar.Warnf(format, args...)
}
func (l *zapLogger) Error(_ context.Context, msg string) { l.sugar.Error(msg) }
func (l *zapLogger) Errorf(_ context.Context, format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
