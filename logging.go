package ridership

import (
	"fmt"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "ridership")

var logLevels = map[string]logrus.Level{
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
	"fatal": logrus.FatalLevel,
	"panic": logrus.PanicLevel,
}

// InitLogging configures the process-wide log format and level.
func InitLogging(level string) error {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level == "" {
		level = "info"
	}
	lvl, ok := logLevels[level]
	if !ok {
		return fmt.Errorf("invalid log level: %s", level)
	}
	logrus.SetLevel(lvl)
	return nil
}
