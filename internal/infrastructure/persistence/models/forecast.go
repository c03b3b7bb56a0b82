package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartsales/backend/internal/domain/forecast"
)

// SalesForecastModel is the persistence model for a stored demand prediction.
type SalesForecastModel struct {
	BaseModel
	CategoryName      string          `gorm:"type:varchar(100);not null;index"`
	PeriodStart       time.Time       `gorm:"not null;index"`
	PeriodEnd         time.Time       `gorm:"not null"`
	PredictedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PredictedAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (SalesForecastModel) TableName() string {
	return "sales_forecasts"
}

// ToDomain converts the persistence model to the domain read model.
func (m *SalesForecastModel) ToDomain() forecast.SalesForecast {
	return forecast.SalesForecast{
		ID:                m.ID,
		CategoryName:      m.CategoryName,
		PeriodStart:       m.PeriodStart,
		PeriodEnd:         m.PeriodEnd,
		PredictedQuantity: m.PredictedQuantity,
		PredictedAmount:   m.PredictedAmount,
		CreatedAt:         m.CreatedAt,
	}
}
