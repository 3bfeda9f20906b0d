package logger

import (
	"os"

	"timetable-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewAccessLogger builds the plain-text logger used for bootstrap messages
// and HTTP access lines; structured application logging goes through zap.
func NewAccessLogger(driverConfig *config.DriverConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}
