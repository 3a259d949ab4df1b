// Package log wraps a zap sugared logger with console and rotated-file
// sinks. The core pointer packages never log; the loader and CLI do.
package log

import "go.uber.org/zap"

// Options control log initialization.
type Options struct {
	// Log mode: SIMPLE, FULL.
	//
	// Default: "FULL".
	Mode string
	// Log level: DEBUG, INFO, WARN, ERROR, FATAL.
	//
	// Default: "INFO".
	Level string
	// Log filename: set this if you want to write log messages to a file
	// instead of the console.
	//
	// Default: "".
	Filename string
}

// Init initializes the package-level logger with the given options.
func Init(opt *Options) error {
	mode := opt.Mode
	if mode == "" {
		mode = "FULL"
	}
	level := opt.Level
	if level == "" {
		level = "INFO"
	}
	if opt.Filename != "" {
		return InitFileLog(mode, level, opt.Filename)
	}
	return InitConsoleLog(mode, level)
}

// Log returns the package-level sugared logger.
func Log() *zap.SugaredLogger {
	return sugar
}

// Debugf uses fmt.Sprintf to log a templated message.
func Debugf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

// Infof uses fmt.Sprintf to log a templated message.
func Infof(format string, args ...any) {
	sugar.Infof(format, args...)
}

// Warnf uses fmt.Sprintf to log a templated message.
func Warnf(format string, args ...any) {
	sugar.Warnf(format, args...)
}

// Errorf uses fmt.Sprintf to log a templated message.
func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

// Panicf uses fmt.Sprintf to log a templated message, then panics.
func Panicf(format string, args ...any) {
	sugar.Panicf(format, args...)
}

// DPanic logs a message, then panics in development mode.
func DPanic(args ...any) {
	sugar.DPanic(args...)
}
