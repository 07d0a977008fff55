// Package output provides terminal output utilities: structured logging,
// styles, file trees and spinners.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// stdout is where user-facing results are printed.
var stdout io.Writer = os.Stdout

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig holds the logging settings resolved from flags and config.
type LogConfig struct {
	// Debug enables debug level and caller reporting (--debug).
	Debug bool

	// Timestamps controls whether timestamps are shown. nil means off,
	// unless Debug is set.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	SetupLoggingTo(os.Stderr, cfg)
}

// SetupLoggingTo configures the global logger to write to w.
func SetupLoggingTo(w io.Writer, cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	timestamps := cfg.Debug
	if !cfg.Debug && cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Debug,
		TimeFormat:      "15:04:05",
	})
}

// StepLogger returns a child logger prefixed with a scaffolding step name.
func StepLogger(step string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render(step))
}

// SetOutput redirects user-facing output and returns a restore function.
func SetOutput(w io.Writer) func() {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Helper()
	logger.Debug(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Helper()
	logger.Warn(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	fmt.Fprint(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	fmt.Fprintln(stdout, msg)
}
