package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.CanvasSize)
	assert.Equal(t, "canvas-image.png", cfg.ExportFilename)
	assert.Equal(t, "PolyDraw", cfg.WindowTitle)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("POLYDRAW_CANVAS_SIZE", "640")
	t.Setenv("POLYDRAW_WINDOW_TITLE", "Test Canvas")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.CanvasSize)
	assert.Equal(t, "Test Canvas", cfg.WindowTitle)
}
