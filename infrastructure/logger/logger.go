// ABOUTME: Builds the configured logger backend
// ABOUTME: Chooses between logrus and zap based on LOG_BACKEND

package logger

import (
	"fmt"
	"io"

	"items-app-api/core/interfaces"
	logruslogger "items-app-api/infrastructure/logger/logrus"
	zaplogger "items-app-api/infrastructure/logger/zap"
	"items-app-api/pkg/config"
)

// Closer is a Logger that may hold a log file open
type Closer interface {
	interfaces.Logger
	io.Closer
}

// New returns the logger selected by cfg.Backend
func New(cfg config.LogConfig) (Closer, error) {
	switch cfg.Backend {
	case "", "logrus":
		l, err := logruslogger.NewLogger(cfg)
		if err != nil {
			return nil, err
		}
		return l, nil
	case "zap":
		l, err := zaplogger.NewLogger(cfg)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}
