package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var instance *zap.Logger

// CreateLogger builds the process logger from cfg.
func CreateLogger(cfg zap.Config) error {
	tmp, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "log init error")
	}
	instance = tmp
	return nil
}

// Logger returns the process logger, or a no-op logger before CreateLogger.
func Logger() *zap.Logger {
	if instance == nil {
		return zap.NewNop()
	}
	return instance
}

func Sugar() *zap.SugaredLogger {
	return Logger().Sugar()
}
