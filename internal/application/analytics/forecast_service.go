package analytics

import (
	"context"
	"time"

	"github.com/smartsales/backend/internal/domain/forecast"
)

// ForecastService provides read access to stored sales forecasts.
type ForecastService struct {
	repo forecast.ForecastRepository
}

// NewForecastService creates a new ForecastService.
func NewForecastService(repo forecast.ForecastRepository) *ForecastService {
	return &ForecastService{repo: repo}
}

// ForecastResponse represents one sales forecast entry.
type ForecastResponse struct {
	ID                string    `json:"id"`
	CategoryName      string    `json:"category_name"`
	PeriodStart       time.Time `json:"period_start"`
	PeriodEnd         time.Time `json:"period_end"`
	PredictedQuantity float64   `json:"predicted_quantity"`
	PredictedAmount   float64   `json:"predicted_amount"`
	CreatedAt         time.Time `json:"created_at"`
}

// ListForecasts returns stored forecasts, optionally filtered by category.
func (s *ForecastService) ListForecasts(ctx context.Context, categoryName string) ([]ForecastResponse, error) {
	forecasts, err := s.repo.FindAll(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	responses := make([]ForecastResponse, len(forecasts))
	for i, f := range forecasts {
		quantity, _ := f.PredictedQuantity.Float64()
		amount, _ := f.PredictedAmount.Float64()
		responses[i] = ForecastResponse{
			ID:                f.ID.String(),
			CategoryName:      f.CategoryName,
			PeriodStart:       f.PeriodStart,
			PeriodEnd:         f.PeriodEnd,
			PredictedQuantity: quantity,
			PredictedAmount:   amount,
			CreatedAt:         f.CreatedAt,
		}
	}

	return responses, nil
}
