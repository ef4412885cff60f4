package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// 替换库内部使用的logger（如需接入上层服务的zap实例）
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger.Store(l.WithOptions(zap.AddCallerSkip(1)))
	}
}

func Debug(msg string, fields ...zap.Field) {
	logger.Load().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Load().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Load().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Load().Error(msg, fields...)
}

func Sync() {
	_ = logger.Load().Sync()
}
