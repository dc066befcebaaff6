package utils

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// GetLogger returns the singleton logger instance
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()

		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})

		logger.SetOutput(os.Stdout)

		level := os.Getenv("LOG_LEVEL")
		switch level {
		case "debug":
			logger.SetLevel(logrus.DebugLevel)
		case "warn":
			logger.SetLevel(logrus.WarnLevel)
		case "error":
			logger.SetLevel(logrus.ErrorLevel)
		default:
			logger.SetLevel(logrus.InfoLevel)
		}
	})
	return logger
}

// SetLogLevel allows changing log level at runtime
func SetLogLevel(level logrus.Level) {
	GetLogger().SetLevel(level)
}
