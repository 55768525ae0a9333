// Package log builds the zap loggers used by the enumerator and the CLI.
package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// ValidLevels lists the accepted level names.
func ValidLevels() []LogLevel {
	return []LogLevel{LogDebug, LogInfo, LogWarn, LogError}
}

// ErrUnknownLevel is returned for a level name outside ValidLevels.
var ErrUnknownLevel = fmt.Errorf("unknown log level")

// ZapLevel maps a LogLevel to the zap level.
func (l LogLevel) ZapLevel() (zapcore.Level, error) {
	switch l {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo:
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
	}
}

// New returns a console-encoded logger writing to w at the given level.
func New(w io.Writer, level LogLevel) (*zap.Logger, error) {
	zl, err := level.ZapLevel()
	if err != nil {
		return nil, err
	}
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zl,
	)
	return zap.New(consoleCore), nil
}

// Sync flushes logger and reports a failed flush through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Debug("failed to sync logger", zap.Error(err))
	}
}
