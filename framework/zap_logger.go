package framework

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
	level zapcore.Level
}

// ZapLogger adapts a zap logger to the Logger interface. Every message is written at the
// given level.
func ZapLogger(base *zap.Logger, level zapcore.Level) Logger {
	return zapLogger{sugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar(), level: level}
}

func (z zapLogger) Println(args ...interface{}) {
	z.sugar.Logf(z.level, "%s", strings.TrimRight(fmt.Sprintln(args...), "\r\n"))
}

func (z zapLogger) Printf(message string, args ...interface{}) {
	z.sugar.Logf(z.level, message, args...)
}

// NewProcessLogger builds the zap logger used for process-level output. With verbose set it
// logs at debug level in the human-readable development format; otherwise it only reports
// warnings and errors.
func NewProcessLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		config.DisableStacktrace = true
	}
	return config.Build()
}
