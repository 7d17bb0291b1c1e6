package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/budget-forecast/internal/config"
	"github.com/carson-networks/budget-forecast/internal/logging"
	"github.com/carson-networks/budget-forecast/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	logger.WithFields(logrus.Fields{
		"address":  env.PostgresAddress,
		"port":     env.PostgresPort,
		"database": env.PostgresDB,
	}).Info("Migration target")

	status, err := storage.RunMigrations(env.PostgresConnectionString())
	if err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}
