// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Supports text or JSON output, level filtering and rotated log files

package logrus

import (
	"io"
	"os"
	"strings"

	"items-app-api/pkg/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// NewLogger creates a logger from the log configuration. When cfg.File is set
// output goes to a rotated file, otherwise to stdout.
func NewLogger(cfg config.LogConfig) (*Logger, error) {
	if cfg.File == "" {
		return NewLoggerWithWriter(cfg, os.Stdout)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    500, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	logger, err := NewLoggerWithWriter(cfg, rotator)
	if err != nil {
		return nil, err
	}
	logger.closer = rotator
	return logger, nil
}

// NewLoggerWithWriter creates a logger writing to w
func NewLoggerWithWriter(cfg config.LogConfig, w io.Writer) (*Logger, error) {
	base := logrus.New()
	base.SetOutput(w)

	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	base.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	return &Logger{entry: base}, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
