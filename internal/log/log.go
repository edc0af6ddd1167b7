// ABOUTME: Package-level logging backed by zap with lumberjack file rotation
// ABOUTME: File output keeps log noise out of whatever surface hosts the overlay

package log

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(zap.NewNop().Sugar())
}

// Init configures the global logger. When path is non-empty, entries go to a
// rotating JSON file; otherwise to stderr in console form. Debug enables the
// debug level.
func Init(path string, debug bool) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	var core zapcore.Core
	if path != "" {
		rotator := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		enc := zap.NewProductionEncoderConfig()
		enc.TimeKey = "timestamp"
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		core = zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(rotator), level)
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), level)
	}

	logger.Store(zap.New(core).Sugar())
}

// Sync flushes buffered log entries.
func Sync() {
	_ = logger.Load().Sync()
}

// Debug logs a printf-style debug message.
func Debug(format string, args ...any) {
	logger.Load().Debug(fmt.Sprintf(format, args...))
}

// Info logs a printf-style info message.
func Info(format string, args ...any) {
	logger.Load().Info(fmt.Sprintf(format, args...))
}

// Warn logs a printf-style warning.
func Warn(format string, args ...any) {
	logger.Load().Warn(fmt.Sprintf(format, args...))
}

// Error logs a printf-style error message.
func Error(format string, args ...any) {
	logger.Load().Error(fmt.Sprintf(format, args...))
}
