// ABOUTME: Logger implementation backed by zap
// ABOUTME: Alternative structured backend selected with LOG_BACKEND=zap

package zap

import (
	"io"
	"os"
	"sort"
	"strings"

	"items-app-api/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the Logger interface using zap
type Logger struct {
	base   *zap.Logger
	closer io.Closer
}

// NewLogger creates a logger from the log configuration
func NewLogger(cfg config.LogConfig) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var (
		sink   zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
		closer io.Closer
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		sink = zapcore.AddSync(rotator)
		closer = rotator
	}

	logger := NewLoggerFromCore(zapcore.NewCore(encoder, sink, level))
	logger.closer = closer
	return logger, nil
}

// NewLoggerFromCore wraps an existing zap core
func NewLoggerFromCore(core zapcore.Core) *Logger {
	return &Logger{base: zap.New(core)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, toZapFields(fields)...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, toZapFields(fields)...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, toZapFields(fields)...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.base.Error(msg, toZapFields(fields)...)
}

// Close flushes buffered entries and releases the log file, if any
func (l *Logger) Close() error {
	_ = l.base.Sync()
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// toZapFields converts map fields in key order so output is stable
func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
