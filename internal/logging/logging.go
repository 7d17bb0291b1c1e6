package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging(level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:          os.Stdout,
		Hooks:        make(logrus.LevelHooks),
		Level:        level,
		ExitFunc:     os.Exit,
		ReportCaller: false,
	}

	return &logger
}
