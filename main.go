package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-forecast/api"
	"github.com/carson-networks/budget-forecast/internal/config"
	"github.com/carson-networks/budget-forecast/internal/logging"
	"github.com/carson-networks/budget-forecast/internal/operator"
	"github.com/carson-networks/budget-forecast/internal/service"
	"github.com/carson-networks/budget-forecast/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("budget-forecast starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	op := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	op.Start()
	defer op.Stop()

	svc := service.NewService(dbStorage, op, envConfig.ForecastLocation)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Service: svc,
		Storage: dbStorage,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
	logger.Info("budget-forecast stopped")
}
