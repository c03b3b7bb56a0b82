package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsales/backend/internal/domain/shared"
	"github.com/smartsales/backend/internal/interfaces/http/dto"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_Success(t *testing.T) {
	c, w := newTestContext(t)
	h := &BaseHandler{}

	h.Success(c, gin.H{"value": 42})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestBaseHandler_HandleError(t *testing.T) {
	t.Run("maps domain not found to 404", func(t *testing.T) {
		c, w := newTestContext(t)
		h := &BaseHandler{}

		h.HandleError(c, shared.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("maps invalid input to 400", func(t *testing.T) {
		c, w := newTestContext(t)
		h := &BaseHandler{}

		h.HandleError(c, shared.ErrInvalidInput)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown errors become 500", func(t *testing.T) {
		c, w := newTestContext(t)
		h := &BaseHandler{}

		h.HandleError(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	})

	t.Run("does nothing for nil errors", func(t *testing.T) {
		c, w := newTestContext(t)
		h := &BaseHandler{}

		h.HandleError(c, nil)

		assert.Empty(t, w.Body.String())
	})
}

func TestBaseHandler_ErrorCarriesRequestID(t *testing.T) {
	c, w := newTestContext(t)
	c.Set(RequestIDKey, "req-777")
	h := &BaseHandler{}

	h.NotFound(c, "missing")

	resp := decodeResponse(t, w)
	assert.Equal(t, "req-777", resp.Error.RequestID)
}
