// Package log provides the shared zap logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// Init initializes the package-level logger. An empty outputPath logs to
// stderr; the dashboard passes a file because it owns the terminal.
func Init(debug bool, outputPath string) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if outputPath != "" {
		cfg.OutputPaths = []string{outputPath}
		cfg.ErrorOutputPaths = []string{outputPath}
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	logger = zapLogger.Sugar()
	return nil
}

// Logger returns the sugared logger for injection into components.
// Before Init it is a no-op logger.
func Logger() *zap.SugaredLogger {
	// Callers log directly, without the wrapper frame Init skips
	return logger.WithOptions(zap.AddCallerSkip(-1))
}

// Sync flushes any buffered log entries
func Sync() {
	_ = logger.Sync()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func Info(args ...interface{}) {
	logger.Info(args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	logger.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	logger.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	logger.Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...interface{}) {
	logger.Fatalf(template, args...)
}
