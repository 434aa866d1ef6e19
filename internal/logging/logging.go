// Package logging builds the agent's process logger from a numeric severity.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Severity codes accepted by --loglevel.
const (
	SeverityTrace uint = iota
	SeverityDebug
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityFatal
)

// Level maps a severity code to a zap level. Trace has no zap counterpart and
// logs as debug; codes above SeverityFatal are clamped.
func Level(severity uint) zapcore.Level {
	switch severity {
	case SeverityTrace, SeverityDebug:
		return zapcore.DebugLevel
	case SeverityInfo:
		return zapcore.InfoLevel
	case SeverityWarning:
		return zapcore.WarnLevel
	case SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

// New returns a console logger writing to w at the given severity. The caller
// owns the logger and passes it on; no global logger is replaced.
func New(severity uint, w io.Writer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(Level(severity)),
	)
	return zap.New(core)
}
