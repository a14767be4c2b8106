// Package log holds the process-wide logger shared by the engine packages.
package log

import "go.uber.org/zap"

var logger *zap.Logger

func init() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the process logger, e.g. with zap.NewNop() in tests.
func SetLogger(l *zap.Logger) {
	logger = l
}
