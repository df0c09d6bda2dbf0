// Package logger provides levelled printf-style logging for the console manager.
//
// Loggers are package globals so handlers, services and the CLI can log without
// threading a logger through every constructor. Calls made before Initialize are
// silently dropped.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

var (
	// InfoLogger handles informational messages.
	InfoLogger *log.Logger
	// WarnLogger handles recoverable problems.
	WarnLogger *log.Logger
	// ErrorLogger handles error messages.
	ErrorLogger *log.Logger
	// DebugLogger handles debug messages.
	DebugLogger *log.Logger
)

// Initialize sets up the loggers for the given level ("debug", "info", "warn", "error").
func Initialize(level string, development bool) error {
	return InitializeWithWriters(level, development, os.Stdout, os.Stderr)
}

// InitializeWithWriters is Initialize with explicit output streams.
func InitializeWithWriters(level string, development bool, out, errOut io.Writer) error {
	flags := log.Ldate | log.Ltime
	if development {
		flags |= log.Lshortfile
	}

	level = strings.ToLower(strings.TrimSpace(level))

	InfoLogger = log.New(out, "INFO: ", flags)
	WarnLogger = log.New(errOut, "WARN: ", flags)
	ErrorLogger = log.New(errOut, "ERROR: ", flags)
	DebugLogger = log.New(io.Discard, "", 0)

	switch level {
	case "debug":
		DebugLogger = log.New(out, "DEBUG: ", flags)
	case "warn":
		InfoLogger = log.New(io.Discard, "", 0)
	case "error":
		InfoLogger = log.New(io.Discard, "", 0)
		WarnLogger = log.New(io.Discard, "", 0)
	}

	return nil
}

// Info logs informational messages.
func Info(message string, args ...any) {
	if InfoLogger != nil {
		InfoLogger.Printf(message, args...)
	}
}

// Warn logs warnings.
func Warn(message string, args ...any) {
	if WarnLogger != nil {
		WarnLogger.Printf(message, args...)
	}
}

// Error logs error messages.
func Error(message string, args ...any) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(message, args...)
	}
}

// Debug logs debug messages. No-op unless initialized with level "debug".
func Debug(message string, args ...any) {
	if DebugLogger != nil {
		DebugLogger.Printf(message, args...)
	}
}

// Fatal logs fatal messages and terminates the program.
func Fatal(message string, args ...any) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(message, args...)
	}
	os.Exit(1)
}

// Sync flushes any buffered log entries (no-op for standard logger).
func Sync() {
}
