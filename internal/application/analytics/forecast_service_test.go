package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartsales/backend/internal/domain/forecast"
)

// MockForecastRepository is a mock implementation of ForecastRepository
type MockForecastRepository struct {
	mock.Mock
}

func (m *MockForecastRepository) FindAll(ctx context.Context, categoryName string) ([]forecast.SalesForecast, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]forecast.SalesForecast), args.Error(1)
}

func TestListForecasts(t *testing.T) {
	repo := new(MockForecastRepository)
	svc := NewForecastService(repo)

	stored := []forecast.SalesForecast{
		{
			ID:                uuid.New(),
			CategoryName:      "Bebidas",
			PeriodStart:       time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:         time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
			PredictedQuantity: decimal.NewFromInt(320),
			PredictedAmount:   decimal.NewFromFloat(4800.75),
		},
	}
	repo.On("FindAll", mock.Anything, "Bebidas").Return(stored, nil)

	responses, err := svc.ListForecasts(context.Background(), "Bebidas")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, stored[0].ID.String(), responses[0].ID)
	assert.Equal(t, "Bebidas", responses[0].CategoryName)
	assert.InDelta(t, 4800.75, responses[0].PredictedAmount, 0.0001)

	repo.AssertExpectations(t)
}

func TestListForecastsRepositoryError(t *testing.T) {
	repo := new(MockForecastRepository)
	svc := NewForecastService(repo)

	repo.On("FindAll", mock.Anything, "").Return(nil, errors.New("db down"))

	_, err := svc.ListForecasts(context.Background(), "")
	assert.EqualError(t, err, "db down")
}
