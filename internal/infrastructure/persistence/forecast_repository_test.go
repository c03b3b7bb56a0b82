package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smartsales/backend/internal/infrastructure/persistence/models"
)

func setupForecastTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SalesForecastModel{}))
	return db
}

func seedForecast(t *testing.T, db *gorm.DB, category string, start time.Time) {
	row := models.SalesForecastModel{
		CategoryName:      category,
		PeriodStart:       start,
		PeriodEnd:         start.AddDate(0, 1, -1),
		PredictedQuantity: decimal.NewFromInt(100),
		PredictedAmount:   decimal.NewFromFloat(1500.50),
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestGormForecastRepository_FindAll(t *testing.T) {
	db := setupForecastTestDB(t)
	repo := NewGormForecastRepository(db)
	ctx := context.Background()

	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	seedForecast(t, db, "Bebidas", march)
	seedForecast(t, db, "Bebidas", april)
	seedForecast(t, db, "Snacks", march)

	t.Run("returns all forecasts newest period first", func(t *testing.T) {
		forecasts, err := repo.FindAll(ctx, "")
		require.NoError(t, err)
		require.Len(t, forecasts, 3)
		assert.Equal(t, april, forecasts[0].PeriodStart)
	})

	t.Run("filters by category", func(t *testing.T) {
		forecasts, err := repo.FindAll(ctx, "Snacks")
		require.NoError(t, err)
		require.Len(t, forecasts, 1)
		assert.Equal(t, "Snacks", forecasts[0].CategoryName)
		assert.True(t, forecasts[0].PredictedAmount.Equal(decimal.NewFromFloat(1500.50)))
	})

	t.Run("unknown category yields empty slice", func(t *testing.T) {
		forecasts, err := repo.FindAll(ctx, "Electrónica")
		require.NoError(t, err)
		assert.Empty(t, forecasts)
	})
}
