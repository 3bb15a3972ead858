package shape

import "go.uber.org/zap"

// logger is the package-wide logger used by Shape methods.
var logger *zap.Logger

// SetLogger overrides the package logger.
//
// If not set, zap.L() is used.
func SetLogger(l *zap.Logger) {
	logger = l
}

func log() *zap.Logger {
	if logger == nil {
		return zap.L()
	}

	return logger
}
