package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartsales/backend/internal/application/analytics"
	"github.com/smartsales/backend/internal/interfaces/http/dto"
)

type MockForecastLister struct {
	mock.Mock
}

func (m *MockForecastLister) ListForecasts(ctx context.Context, categoryName string) ([]analytics.ForecastResponse, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.ForecastResponse), args.Error(1)
}

func performForecastList(t *testing.T, lister ForecastLister, url string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewForecastHandler(lister)
	router := gin.New()
	router.GET("/api/v1/analytics/forecasts", h.List)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestForecastHandler_List(t *testing.T) {
	t.Run("lists forecasts", func(t *testing.T) {
		lister := new(MockForecastLister)
		lister.On("ListForecasts", mock.Anything, "").Return([]analytics.ForecastResponse{
			{CategoryName: "Bebidas", PredictedQuantity: 120, PredictedAmount: 1540.5},
		}, nil)

		w := performForecastList(t, lister, "/api/v1/analytics/forecasts")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		data := resp.Data.([]interface{})
		require.Len(t, data, 1)
		assert.Equal(t, "Bebidas", data[0].(map[string]interface{})["category_name"])
	})

	t.Run("passes the category filter through", func(t *testing.T) {
		lister := new(MockForecastLister)
		lister.On("ListForecasts", mock.Anything, "Snacks").Return([]analytics.ForecastResponse{}, nil)

		w := performForecastList(t, lister, "/api/v1/analytics/forecasts?category=Snacks")

		assert.Equal(t, http.StatusOK, w.Code)
		lister.AssertExpectations(t)
	})

	t.Run("repository errors return 500", func(t *testing.T) {
		lister := new(MockForecastLister)
		lister.On("ListForecasts", mock.Anything, "").Return(nil, errors.New("connection refused"))

		w := performForecastList(t, lister, "/api/v1/analytics/forecasts")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
