package climakeio

import (
	"fmt"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages.
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [SUCCESS] [WARN] [ERROR] [DEBUG]
	LogFormatSymbols                  // ● ◆ ✓ ▲ ✗
	LogFormatPlain                    // No prefix
)

// Logger provides leveled logging with customizable prefixes, bound to an
// IOManager so output follows the manager's sinks and color capability.
type Logger struct {
	io           *IOManager
	format       LogFormat
	prefixes     map[LogLevel]string
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
}

// NewLogger creates a new logger bound to the given IOManager.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:           io,
		format:       LogFormatTagged,
		prefixes:     taggedPrefixes(),
		minLevel:     LevelInfo,
		errorsStderr: true,
		timeFormat:   "15:04:05",
	}
}

func taggedPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelSuccess: "[SUCCESS]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	}
}

func symbolPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelSuccess: "✓",
		LevelWarning: "▲",
		LevelError:   "✗",
	}
}

// WithFormat sets the log format and returns the logger for chaining.
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	switch format {
	case LogFormatTagged:
		l.prefixes = taggedPrefixes()
	case LogFormatSymbols:
		l.prefixes = symbolPrefixes()
	case LogFormatPlain:
		l.prefixes = map[LogLevel]string{}
	}
	return l
}

// MinLevel sets the lowest level that produces output.
func (l *Logger) MinLevel(level LogLevel) *Logger { l.minLevel = level; return l }

// WithTime enables a time prefix using the logger's time format.
func (l *Logger) WithTime() *Logger { l.withTime = true; return l }

// TimeFormat sets the layout used by WithTime.
func (l *Logger) TimeFormat(layout string) *Logger { l.timeFormat = layout; return l }

// ErrorsToStdout routes warning and error output to stdout instead of stderr.
func (l *Logger) ErrorsToStdout() *Logger { l.errorsStderr = false; return l }

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) { l.log(LevelDebug, msg) }

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, fmt.Sprintf(format, args...)) }

// Info logs a message at info level.
func (l *Logger) Info(msg string) { l.log(LevelInfo, msg) }

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, fmt.Sprintf(format, args...)) }

// Success logs a message at success level.
func (l *Logger) Success(msg string) { l.log(LevelSuccess, msg) }

// Successf logs a formatted message at success level.
func (l *Logger) Successf(format string, args ...any) {
	l.log(LevelSuccess, fmt.Sprintf(format, args...))
}

// Warning logs a message at warning level.
func (l *Logger) Warning(msg string) { l.log(LevelWarning, msg) }

// Warningf logs a formatted message at warning level.
func (l *Logger) Warningf(format string, args ...any) {
	l.log(LevelWarning, fmt.Sprintf(format, args...))
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) { l.log(LevelError, msg) }

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, fmt.Sprintf(format, args...)) }

func (l *Logger) log(level LogLevel, msg string) {
	if level < l.minLevel {
		return
	}

	out := l.io.Out()
	if l.errorsStderr && level >= LevelWarning {
		out = l.io.Err()
	}

	line := ""
	if l.withTime {
		line += time.Now().Format(l.timeFormat) + " "
	}
	if prefix, ok := l.prefixes[level]; ok && prefix != "" {
		line += l.colorPrefix(level, prefix) + " "
	}
	line += msg

	fmt.Fprintln(out, line)
}

func (l *Logger) colorPrefix(level LogLevel, prefix string) string {
	switch level {
	case LevelDebug:
		return l.io.Faint(prefix)
	case LevelSuccess:
		return l.io.Colorize(prefix, "32")
	case LevelWarning:
		return l.io.Colorize(prefix, "33")
	case LevelError:
		return l.io.Colorize(prefix, "31")
	default:
		return prefix
	}
}
