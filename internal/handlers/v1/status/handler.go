package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carson-networks/budget-forecast/internal/logging"
)

const pingTimeout = 2 * time.Second

type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
		defer cancel()

		endTimer := logData.AddTiming("dbPing")
		err := h.DB.PingContext(ctx)
		endTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: database ping: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
