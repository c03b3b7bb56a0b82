package forecast

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesForecast is a precomputed demand prediction for one category over
// one period. Forecasts are produced by an offline job and read-only here.
type SalesForecast struct {
	ID                uuid.UUID       `json:"id"`
	CategoryName      string          `json:"category_name"`
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	PredictedQuantity decimal.Decimal `json:"predicted_quantity"`
	PredictedAmount   decimal.Decimal `json:"predicted_amount"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ForecastRepository reads stored sales forecasts.
type ForecastRepository interface {
	// FindAll returns forecasts ordered by period start, newest first,
	// optionally filtered by category name.
	FindAll(ctx context.Context, categoryName string) ([]SalesForecast, error)
}
