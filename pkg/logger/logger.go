// Package logger provides the leveled, colored terminal output used by all
// goatgen commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Level represents the severity of a log message
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// ParseLevel parses a string log level, defaulting to info
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

var levelColors = map[Level]*color.Color{
	DebugLevel: color.New(color.FgHiBlack),
	InfoLevel:  color.New(color.FgGreen),
	WarnLevel:  color.New(color.FgYellow),
	ErrorLevel: color.New(color.FgRed),
	FatalLevel: color.New(color.FgRed, color.Bold),
}

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO ",
	WarnLevel:  "WARN ",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// Logger writes leveled, optionally timestamped messages
type Logger struct {
	mu       sync.Mutex
	level    Level
	writer   io.Writer
	showTime bool
}

// New creates a logger writing to stdout. Color is disabled automatically
// when stdout is not a terminal.
func New() *Logger {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	return &Logger{
		level:    InfoLevel,
		writer:   os.Stdout,
		showTime: true,
	}
}

var defaultLogger = New()

// SetLevel sets the global log level
func SetLevel(level Level) {
	defaultLogger.mu.Lock()
	defaultLogger.level = level
	defaultLogger.mu.Unlock()
}

// SetNoColor disables colored output globally
func SetNoColor(noColor bool) {
	color.NoColor = noColor
}

func (l *Logger) log(level Level, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	var parts []string
	if l.showTime {
		parts = append(parts, color.New(color.FgHiBlack).Sprint(time.Now().Format("15:04:05")))
	}
	parts = append(parts, levelColors[level].Sprint(levelNames[level]))
	parts = append(parts, fmt.Sprint(args...))
	fmt.Fprintln(l.writer, strings.Join(parts, " "))
	l.mu.Unlock()

	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	l.log(level, fmt.Sprintf(format, args...))
}

// Package-level helpers for the default logger

func Debug(args ...interface{})                 { defaultLogger.log(DebugLevel, args...) }
func Debugf(format string, args ...interface{}) { defaultLogger.logf(DebugLevel, format, args...) }
func Info(args ...interface{})                  { defaultLogger.log(InfoLevel, args...) }
func Infof(format string, args ...interface{})  { defaultLogger.logf(InfoLevel, format, args...) }
func Warn(args ...interface{})                  { defaultLogger.log(WarnLevel, args...) }
func Warnf(format string, args ...interface{})  { defaultLogger.logf(WarnLevel, format, args...) }
func Error(args ...interface{})                 { defaultLogger.log(ErrorLevel, args...) }
func Errorf(format string, args ...interface{}) { defaultLogger.logf(ErrorLevel, format, args...) }
func Fatal(args ...interface{})                 { defaultLogger.log(FatalLevel, args...) }
func Fatalf(format string, args ...interface{}) { defaultLogger.logf(FatalLevel, format, args...) }
