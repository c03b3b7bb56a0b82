package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderError(t *testing.T) {
	t.Run("formats code and message", func(t *testing.T) {
		err := NewRenderError(ErrCodeRenderFailed, "something broke", nil)
		assert.Equal(t, "RENDER_FAILED: something broke", err.Error())
	})

	t.Run("unwraps the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewRenderError(ErrCodeRenderTimeout, "timed out", cause)
		assert.ErrorIs(t, err, cause)
	})
}

func TestChromedpEngine_RejectsEmptyHTML(t *testing.T) {
	engine := NewChromedpEngine(nil)
	defer engine.Close()

	data, err := engine.Render(context.Background(), "   ", "Reporte")

	assert.Nil(t, data)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
}

func TestNewWkhtmltopdfEngine_MissingBinary(t *testing.T) {
	_, err := NewWkhtmltopdfEngine(&WkhtmltopdfConfig{
		BinaryPath: filepath.Join(t.TempDir(), "wkhtmltopdf"),
	})

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeEngineNotFound, renderErr.Code)
}

func TestNewWkhtmltopdfEngine_ResolvesAbsolutePath(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "wkhtmltopdf")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

	engine, err := NewWkhtmltopdfEngine(&WkhtmltopdfConfig{BinaryPath: bin})

	require.NoError(t, err)
	defer engine.Close()
}
