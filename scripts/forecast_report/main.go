package main

import (
	"context"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-forecast/internal/config"
	"github.com/carson-networks/budget-forecast/internal/report"
	"github.com/carson-networks/budget-forecast/internal/service"
	"github.com/carson-networks/budget-forecast/internal/storage"
)

type Params struct {
	UserID string `descr:"UUID of the user to forecast for" positional:"true"`
}

func main() {
	boa.NewCmdT[Params]("forecast_report").
		WithShort("Print next month's spending forecast for a user").
		WithLong("Reads the last three complete months of a user's expenses and prints the predicted spending per category with the expected monthly range.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				logrus.WithError(err).Error("forecast_report")
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}
	logrus.SetLevel(env.LogLevel)

	userID, err := uuid.FromString(params.UserID)
	if err != nil {
		return err
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	forecasts := service.NewForecastService(dbStorage, env.ForecastLocation)
	result, window, err := forecasts.NextMonth(context.Background(), userID)
	if err != nil {
		return err
	}

	report.Render(os.Stdout, result, window, report.Options{
		Currency: env.ReportCurrency,
		Locale:   env.ReportLocale,
	})
	return nil
}
