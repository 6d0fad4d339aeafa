package logger

import (
	"os"

	"go-finance-api/config"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init, which only
// applies the configured format and level.
var Log = logrus.New()

func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	level, err := logrus.ParseLevel(config.AppConfig.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
