package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.SugaredLogger

// Init configures the global logger. Production gets JSON at info level;
// anything else gets development settings, optionally lowered to debug.
func Init(environment string, debug bool) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.Encoding = "json"
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

// Logger returns the global SugaredLogger, initializing a fallback if Init
// was never called (tests, mostly).
func Logger() *zap.SugaredLogger {
	if globalLogger == nil {
		logger, _ := zap.NewDevelopment()
		globalLogger = logger.Sugar()
	}
	return globalLogger
}

// Close flushes any buffered log entries.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Named returns a child logger tagged with a component name.
func Named(component string) *zap.SugaredLogger {
	return Logger().Named(component)
}

func Debug(message string, fields ...interface{}) {
	Logger().Debugw(message, fields...)
}

func Info(message string, fields ...interface{}) {
	Logger().Infow(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	Logger().Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	Logger().Errorw(message, fields...)
}

func Fatal(message string, fields ...interface{}) {
	Logger().Fatalw(message, fields...)
}
