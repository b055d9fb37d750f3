package logger

import (
	"context"
	"fmt"

	"github.com/ougirez/regstat/internal/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// до Init используется production-логгер уровня info
var global = newDefault()

func newDefault() *zap.SugaredLogger {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// Init настраивает глобальный логгер. Повторный вызов заменяет предыдущий.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build zap logger: %w", err)
	}

	global = l.Sugar()
	return nil
}

// Set подменяет глобальный логгер, используется в тестах.
func Set(l *zap.Logger) {
	global = l.Sugar()
}

func Sync() {
	_ = global.Sync()
}

// WithRequestID кладёт идентификатор запроса в контекст.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constants.CtxKeyRequestID, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(constants.CtxKeyRequestID).(string)
	return id
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return global.With("request_id", id)
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Debugf(format, args...)
}

func Info(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Infow(msg, keysAndValues...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string, keysAndValues ...any) {
	fromCtx(ctx).Errorw(msg, keysAndValues...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Errorf(format, args...)
}

// Fatal пишет ошибку и завершает процесс. Nil игнорируется.
func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fromCtx(ctx).Fatal(err)
}
