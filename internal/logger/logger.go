package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger handles logging functionalities
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// parseLevel maps a level name to a logrus level, defaulting to info
func parseLevel(levelStr string) logrus.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

func newFormatter(colors bool) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
		ForceColors:     colors,
		DisableColors:   !colors,
	}
}

// isTerminal reports whether stdout is a character device
func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// NewLogger creates a new logger with the specified log level
func NewLogger(levelStr string) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(parseLevel(levelStr))
	base.SetFormatter(newFormatter(isTerminal()))

	return &Logger{entry: logrus.NewEntry(base)}
}

// NewFileLogger creates a new logger that writes to a file
func NewFileLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(levelStr)
	logger.entry.Logger.SetOutput(file)
	logger.entry.Logger.SetFormatter(newFormatter(false))
	logger.file = file

	return logger, nil
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(levelStr)
	logger.entry.Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	logger.entry.Logger.SetFormatter(newFormatter(false))
	logger.file = file

	return logger, nil
}

func openLogFile(filePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// WithField returns a child logger that tags every message with key=value.
// The child shares output and level with its parent.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Debug logs a debug message
func (l *Logger) Debug(v ...interface{}) {
	l.entry.Debug(v...)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(v ...interface{}) {
	l.entry.Info(v...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(v ...interface{}) {
	l.entry.Warn(v...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(v ...interface{}) {
	l.entry.Error(v...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(v ...interface{}) {
	l.closeFile()
	l.entry.Fatal(v...)
}

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.closeFile()
	l.entry.Fatalf(format, v...)
}

// closeFile releases the log file before logrus exits the process; the
// fatal message goes to stderr instead.
func (l *Logger) closeFile() {
	if l.file == nil {
		return
	}
	l.entry.Logger.SetOutput(os.Stderr)
	l.file.Close()
	l.file = nil
}

// SetLevel sets the log level
func (l *Logger) SetLevel(levelStr string) {
	l.entry.Logger.SetLevel(parseLevel(levelStr))
}

// Level returns the active level name
func (l *Logger) Level() string {
	return l.entry.Logger.GetLevel().String()
}

// SetOutput sets the output writer for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.entry.Logger.SetFormatter(newFormatter(enable))
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
