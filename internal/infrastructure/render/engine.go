package render

import (
	"context"
)

// PDFEngine converts a finished HTML document into PDF bytes. Engine
// implementations print landscape letter with fixed margins, page geometry
// is not a caller concern for reports.
type PDFEngine interface {
	// Render converts HTML content to a PDF document
	Render(ctx context.Context, html, title string) ([]byte, error)
	// Close releases any resources held by the engine
	Close() error
}

// RenderError represents an error during document rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout     = "RENDER_TIMEOUT"
	ErrCodeRenderFailed      = "RENDER_FAILED"
	ErrCodeInvalidHTML       = "INVALID_HTML"
	ErrCodeEngineNotFound    = "ENGINE_NOT_FOUND"
	ErrCodeSpreadsheetFailed = "SPREADSHEET_FAILED"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
