package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartsales/backend/internal/domain/report"
	"github.com/smartsales/backend/internal/infrastructure/logger"
	"github.com/smartsales/backend/internal/infrastructure/render"
	"github.com/smartsales/backend/internal/interfaces/http/dto"
)

// ReportGenerator produces a downloadable report artifact from a free text
// prompt.
type ReportGenerator interface {
	Generate(ctx context.Context, prompt string) (*report.Artifact, error)
}

// ReportHandler handles report generation endpoints
type ReportHandler struct {
	BaseHandler
	reports ReportGenerator
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports ReportGenerator) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GenerateReportRequest is the request body for report generation
type GenerateReportRequest struct {
	Prompt string `json:"prompt"`
}

// Generate handles POST /reports/generate. On success the response body is
// the artifact itself, served as a download.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	artifact, err := h.reports.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		h.handleGenerateError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.MediaType, artifact.Data)
}

// handleGenerateError maps generation failures onto the response taxonomy.
// A failed spreadsheet export is the single divergent shape: a top-level
// {error, detail, type} payload instead of the standard envelope.
func (h *ReportHandler) handleGenerateError(c *gin.Context, err error) {
	var renderErr *render.RenderError
	if errors.As(err, &renderErr) {
		if renderErr.Code == render.ErrCodeSpreadsheetFailed {
			c.JSON(http.StatusInternalServerError, dto.RenderFailure{
				Error:  "No se pudo generar el archivo Excel.",
				Detail: renderErr.Message,
				Type:   renderErr.Code,
			})
			return
		}
		h.ErrorWithCode(c, renderErr.Code, renderErr.Message)
		return
	}

	logger.FromContext(c.Request.Context()).Error("report generation failed", zap.Error(err))
	h.HandleError(c, err)
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.POST("/generate", h.Generate)
	}
}
