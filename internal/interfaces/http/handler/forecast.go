package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/smartsales/backend/internal/application/analytics"
)

// ForecastLister lists stored sales forecasts.
type ForecastLister interface {
	ListForecasts(ctx context.Context, categoryName string) ([]analytics.ForecastResponse, error)
}

// ForecastHandler handles analytics read endpoints
type ForecastHandler struct {
	BaseHandler
	forecasts ForecastLister
}

// NewForecastHandler creates a new ForecastHandler
func NewForecastHandler(forecasts ForecastLister) *ForecastHandler {
	return &ForecastHandler{forecasts: forecasts}
}

// List handles GET /analytics/forecasts with an optional category filter
func (h *ForecastHandler) List(c *gin.Context) {
	out, err := h.forecasts.ListForecasts(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, out)
}

// RegisterRoutes registers analytics routes
func (h *ForecastHandler) RegisterRoutes(rg *gin.RouterGroup) {
	analyticsGroup := rg.Group("/analytics")
	{
		analyticsGroup.GET("/forecasts", h.List)
	}
}
