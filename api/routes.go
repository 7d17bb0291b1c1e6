package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-forecast/internal/handlers/v1/category"
	"github.com/carson-networks/budget-forecast/internal/handlers/v1/dashboard"
	"github.com/carson-networks/budget-forecast/internal/handlers/v1/forecast"
	"github.com/carson-networks/budget-forecast/internal/handlers/v1/status"
	"github.com/carson-networks/budget-forecast/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-forecast/internal/logging"
	"github.com/carson-networks/budget-forecast/internal/service"
	"github.com/carson-networks/budget-forecast/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// Handler builds the mux with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(nil)
	if r.Storage != nil {
		statusHandler = status.NewHandler(r.Storage.SQL)
	}
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Forecast API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewSummaryHandler(r.Service.Transaction, r.Service.Forecast.Now).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	category.NewEnsureDefaultCategoriesHandler(r.Service.Category).Register(api)
	forecast.NewNextMonthHandler(r.Service.Forecast).Register(api)
	dashboard.NewHandler(r.Service.Dashboard).Register(api)

	return mux
}

// Serve listens until ctx is cancelled and then drains open requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
