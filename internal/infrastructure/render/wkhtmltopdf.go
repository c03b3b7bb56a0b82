package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBinaryPath = "wkhtmltopdf"
	defaultWkTimeout  = 30 * time.Second
)

// WkhtmltopdfConfig contains configuration for the wkhtmltopdf engine
type WkhtmltopdfConfig struct {
	// BinaryPath is the path to the wkhtmltopdf binary.
	// If empty, will search in PATH
	BinaryPath string
	// Timeout for rendering operations
	Timeout time.Duration
	// TempDir for temporary files during rendering
	TempDir string
	// Logger for debug output
	Logger *zap.Logger
}

// WkhtmltopdfEngine renders HTML to PDF using the wkhtmltopdf command-line tool
type WkhtmltopdfEngine struct {
	binaryPath string
	timeout    time.Duration
	tempDir    string
	logger     *zap.Logger
}

// NewWkhtmltopdfEngine creates a new wkhtmltopdf-based PDF engine.
// Fails with ENGINE_NOT_FOUND when the binary is missing, the caller
// treats that as a fatal configuration error rather than retrying.
func NewWkhtmltopdfEngine(config *WkhtmltopdfConfig) (*WkhtmltopdfEngine, error) {
	if config == nil {
		config = &WkhtmltopdfConfig{}
	}
	binaryPath := config.BinaryPath
	if binaryPath == "" {
		binaryPath = defaultBinaryPath
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultWkTimeout
	}
	tempDir := config.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	resolved, err := resolveBinaryPath(binaryPath)
	if err != nil {
		return nil, NewRenderError(ErrCodeEngineNotFound,
			fmt.Sprintf("wkhtmltopdf binary not found: %s", binaryPath), err)
	}

	return &WkhtmltopdfEngine{
		binaryPath: resolved,
		timeout:    timeout,
		tempDir:    tempDir,
		logger:     logger,
	}, nil
}

func resolveBinaryPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return exec.LookPath(path)
}

// Render converts HTML content to PDF
func (e *WkhtmltopdfEngine) Render(ctx context.Context, html, title string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	htmlFile, err := os.CreateTemp(e.tempDir, "report-*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to create temp HTML file", err)
	}
	htmlPath := htmlFile.Name()
	defer os.Remove(htmlPath)

	if _, err := htmlFile.WriteString(html); err != nil {
		htmlFile.Close()
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to write HTML to temp file", err)
	}
	htmlFile.Close()

	pdfFile, err := os.CreateTemp(e.tempDir, "report-*.pdf")
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to create temp PDF file", err)
	}
	pdfPath := pdfFile.Name()
	pdfFile.Close()
	defer os.Remove(pdfPath)

	args := []string{
		"--quiet",
		"--encoding", "UTF-8",
		"--page-size", "Letter",
		"--orientation", "Landscape",
		"--margin-top", "12mm",
		"--margin-right", "12mm",
		"--margin-bottom", "12mm",
		"--margin-left", "12mm",
		"--disable-javascript",
		"--disable-local-file-access",
	}
	if title != "" {
		args = append(args, "--title", title)
	}
	args = append(args, htmlPath, pdfPath)

	cmd := exec.CommandContext(ctx, e.binaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", e.timeout), err)
		}
		e.logger.Error("wkhtmltopdf failed",
			zap.Error(err),
			zap.String("stderr", stderr.String()))
		return nil, NewRenderError(ErrCodeRenderFailed,
			"wkhtmltopdf execution failed: "+stderr.String(), err)
	}

	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to read generated PDF", err)
	}
	if len(pdfData) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}
	return pdfData, nil
}

// Close releases resources held by the engine
func (e *WkhtmltopdfEngine) Close() error {
	return nil
}

var _ PDFEngine = (*WkhtmltopdfEngine)(nil)
