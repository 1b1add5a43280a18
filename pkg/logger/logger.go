// Package logger provides structured logging for the linka commands and
// libraries.
//
// Design: one process-wide slog.Logger. Libraries log through the helpers
// below and stay silent until a command calls Init.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	defaultLogger *slog.Logger
	logFile       *os.File
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Config holds logger configuration
type Config struct {
	Level     LogLevel
	Format    string // "text" or "json"
	Output    io.Writer
	AddSource bool
	LogFile   string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// Init installs the global logger, closing any log file opened by an
// earlier Init. A LogFile takes precedence over Output.
func Init(cfg Config) error {
	if cfg.Format != "" && cfg.Format != "text" && cfg.Format != "json" {
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}
	if err := Close(); err != nil {
		return err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logFile = file
		output = file
	}

	opts := &slog.HandlerOptions{
		Level:     toSlogLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
	return nil
}

// InitDev initializes logging for development (debug level, text format)
func InitDev() {
	_ = Init(Config{
		Level:     LevelDebug,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: true,
	})
}

// Close drops the global logger and closes its log file, if any.
// Helpers are no-ops until the next Init.
func Close() error {
	defaultLogger = nil
	if logFile == nil {
		return nil
	}
	// slog's default must not keep writing to the closed file.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	err := logFile.Close()
	logFile = nil
	return err
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Error(msg, args...)
	}
}

// Discovery helpers

// LogDiscoveryStart logs the start of llvm-config discovery.
func LogDiscoveryStart(target string) {
	Info("Discovering LLVM configuration", "target", target)
}

// LogToolFound logs the resolved llvm-config binary.
func LogToolFound(path, how string) {
	Info("Found llvm-config", "path", path, "via", how)
}

// LogQuery logs a single llvm-config invocation.
func LogQuery(path, flag string, bytes int) {
	Debug("llvm-config query", "path", path, "flag", flag, "bytes", bytes)
}

// LogLibrary logs a library selected for linking.
func LogLibrary(kind, name string) {
	Info("Linking library", "kind", kind, "name", name)
}

// LogDirectivesWritten logs the generated cgo directives file.
func LogDirectivesWritten(path string, libraries int) {
	Info("Wrote cgo directives", "file", path, "libraries", libraries)
}

// Link helpers

// LogLinkStart logs an in-process linker invocation.
func LogLinkStart(flavor string, argc int) {
	Debug("Invoking lld", "flavor", flavor, "args", argc)
}

// LogLinkComplete logs the outcome of a linker invocation.
func LogLinkComplete(flavor string, success bool, messageBytes int) {
	if success {
		Debug("lld finished", "flavor", flavor, "messages", messageBytes)
	} else {
		Warn("lld reported failure", "flavor", flavor, "messages", messageBytes)
	}
}
