package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-forecast/internal/service"
)

type mockMonthSummarizer struct {
	mock.Mock
}

func (m *mockMonthSummarizer) MonthSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*service.MonthSummary, error) {
	args := m.Called(ctx, userID, now)
	summary, _ := args.Get(0).(*service.MonthSummary)
	return summary, args.Error(1)
}

var summaryNow = time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)

func newSummaryTestAPI(t *testing.T, svc monthSummarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSummaryHandler(svc, func() time.Time { return summaryNow }).Register(api)
	return api
}

func TestHTTP_Summary(t *testing.T) {
	mockSvc := new(mockMonthSummarizer)
	mockSvc.On("MonthSummary", mock.Anything, testUserID, summaryNow).Return(&service.MonthSummary{
		MonthStart: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Spent:      decimal.RequireFromString("150000.50"),
		Income:     decimal.RequireFromString("5000000"),
		Net:        decimal.RequireFromString("4849999.50"),
		Count:      3,
	}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/transaction/summary", testUserHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthSummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, MonthSummary{
		MonthStart: "2025-07-01",
		Spent:      "150000.5",
		Income:     "5000000",
		Net:        "4849999.5",
		Count:      3,
	}, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_ServiceError(t *testing.T) {
	mockSvc := new(mockMonthSummarizer)
	mockSvc.On("MonthSummary", mock.Anything, testUserID, summaryNow).Return(nil, errors.New("database unavailable"))

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/transaction/summary", testUserHeader)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
