// Package logger provides the solver's leveled logging surface. The public
// functions (Debug/Info/Warn/Error, the per-cell and per-constraint
// helpers, SolvingStep) are called from the Board primitives and from the
// search in lib/solve; the surface stays stable while the implementation
// underneath wraps zerolog for structured, leveled output.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// LogLevel mirrors zerolog.Level so call sites never need to import
// zerolog directly.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of a LogLevel.
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DEBUG:
		return zerolog.DebugLevel
	case INFO:
		return zerolog.InfoLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger wraps a zerolog.Logger behind a mutex so SetLevel/SetOutput/
// SetPrefix can be called between logging calls without a data race.
type Logger struct {
	mu     sync.Mutex
	zl     zerolog.Logger
	level  LogLevel
	prefix string
}

var globalLogger *Logger

func init() {
	globalLogger = NewLogger(INFO, os.Stdout, "")
}

// GetLogger returns the global logger instance.
func GetLogger() *Logger {
	return globalLogger
}

// NewLogger creates a standalone logger instance with its own output.
func NewLogger(level LogLevel, output io.Writer, prefix string) *Logger {
	zl := zerolog.New(output).With().Timestamp().Logger().Level(level.zerologLevel())
	return &Logger{zl: zl, level: level, prefix: prefix}
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level LogLevel) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.level = level
	globalLogger.zl = globalLogger.zl.Level(level.zerologLevel())
}

// SetOutput sets the output destination for the global logger.
func SetOutput(w io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.zl = zerolog.New(w).With().Timestamp().Logger().Level(globalLogger.level.zerologLevel())
}

// SetPrefix sets a prefix field attached to every subsequent message.
func SetPrefix(prefix string) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.prefix = prefix
}

func (l *Logger) event(level LogLevel) *zerolog.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	var ev *zerolog.Event
	switch level {
	case DEBUG:
		ev = l.zl.Debug()
	case WARN:
		ev = l.zl.Warn()
	case ERROR:
		ev = l.zl.Error()
	default:
		ev = l.zl.Info()
	}
	if l.prefix != "" {
		ev = ev.Str("prefix", l.prefix)
	}
	return ev
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.event(level).Msgf(format, args...)
}

// Debug logs a debug message on the global logger.
func Debug(format string, args ...interface{}) { globalLogger.log(DEBUG, format, args...) }

// Info logs an info message on the global logger.
func Info(format string, args ...interface{}) { globalLogger.log(INFO, format, args...) }

// Warn logs a warning message on the global logger.
func Warn(format string, args ...interface{}) { globalLogger.log(WARN, format, args...) }

// Error logs an error message on the global logger.
func Error(format string, args ...interface{}) { globalLogger.log(ERROR, format, args...) }

// DebugCell logs cell-specific debug information. Cells are named
// R{row+1}C{col+1} per the board's external naming convention.
func DebugCell(row, col int, format string, args ...interface{}) {
	globalLogger.event(DEBUG).Int("row", row+1).Int("col", col+1).Msgf(format, args...)
}

// InfoCell logs cell-specific info.
func InfoCell(row, col int, format string, args ...interface{}) {
	globalLogger.event(INFO).Int("row", row+1).Int("col", col+1).Msgf(format, args...)
}

// DebugConstraint logs constraint-specific debug information.
func DebugConstraint(constraintName string, format string, args ...interface{}) {
	globalLogger.event(DEBUG).Str("constraint", constraintName).Msgf(format, args...)
}

// InfoConstraint logs constraint-specific info.
func InfoConstraint(constraintName string, format string, args ...interface{}) {
	globalLogger.event(INFO).Str("constraint", constraintName).Msgf(format, args...)
}

// SolvingStep logs a solving technique step.
func SolvingStep(technique string, format string, args ...interface{}) {
	globalLogger.event(INFO).Str("technique", technique).Msgf(format, args...)
}

// CandidateElimination logs when a candidate is eliminated from a cell.
func CandidateElimination(row, col, candidate int, reason string) {
	globalLogger.event(DEBUG).
		Int("row", row+1).Int("col", col+1).Int("candidate", candidate).
		Msg(reason)
}

// CellSolved logs when a cell is solved.
func CellSolved(row, col, value int, reason string) {
	globalLogger.event(INFO).
		Int("row", row+1).Int("col", col+1).Int("value", value).
		Msg(reason)
}

// Fatal logs a fatal error and exits the program.
func Fatal(format string, args ...interface{}) {
	globalLogger.event(ERROR).Msgf(format, args...)
	os.Exit(1)
}
