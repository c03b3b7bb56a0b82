package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/smartsales/backend/internal/domain/forecast"
	"github.com/smartsales/backend/internal/infrastructure/persistence/models"
)

// GormForecastRepository implements forecast.ForecastRepository using GORM
type GormForecastRepository struct {
	db *gorm.DB
}

// NewGormForecastRepository creates a new GormForecastRepository
func NewGormForecastRepository(db *gorm.DB) *GormForecastRepository {
	return &GormForecastRepository{db: db}
}

// FindAll returns forecasts ordered by period start, newest first,
// optionally filtered by category name
func (repo *GormForecastRepository) FindAll(ctx context.Context, categoryName string) ([]forecast.SalesForecast, error) {
	var rows []models.SalesForecastModel

	query := repo.db.WithContext(ctx).Order("period_start DESC")
	if categoryName != "" {
		query = query.Where("category_name = ?", categoryName)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	forecasts := make([]forecast.SalesForecast, len(rows))
	for i, row := range rows {
		forecasts[i] = row.ToDomain()
	}
	return forecasts, nil
}
