// Package applog is the diagnostic logger shared by every command. Output
// goes to stderr so stdout stays reserved for the resolved configuration.
package applog

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger = zap.Logger

var (
	opts = []zap.Option{
		zap.AddCaller(),
	}
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	def   = newLogger(os.Stderr, opts...)
)

func Info(msg string, fields ...zapcore.Field) {
	def.WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	def.WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	def.WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	def.WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

func GetLogger() *Logger {
	return def
}

// SetVerbose switches between debug output and warnings only
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.WarnLevel)
}

// Enabled reports whether messages at lvl are currently written
func Enabled(lvl zapcore.Level) bool {
	return level.Enabled(lvl)
}

// SetOutput redirects the logger to w
func SetOutput(w io.Writer) {
	setLogger(newLogger(w, opts...))
}

func Sync() {
	_ = def.Sync()
}

func newLogger(w io.Writer, opts ...zap.Option) *Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core, opts...)
}

func setLogger(l *Logger) {
	def = l
	zap.ReplaceGlobals(def)
}
