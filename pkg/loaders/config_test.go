package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRenderConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	content := `
width: 640
height: 480
max-depth: 5
subpixel-division: 2
pass-per-pixel: 10
workers: 4
indirect-lighting: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadRenderConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 640, config.Width)
	assert.Equal(t, 480, config.Height)
	assert.Equal(t, 5, config.MaxDepth)
	assert.Equal(t, 2, config.SubPixelDivision)
	assert.Equal(t, 10, config.PassPerPixel)
	assert.Equal(t, 4, config.Workers)
	assert.False(t, config.IndirectLighting)
	// Omitted fields keep their defaults
	assert.True(t, config.SurfaceLighting)
	assert.False(t, config.SharedSeed)
}

func TestLoadRenderConfig_MissingFile(t *testing.T) {
	config, err := LoadRenderConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	// The defaults still come back usable
	assert.Equal(t, DefaultRenderConfig(), config)
}

func TestLoadRenderConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [not a number"), 0644))

	_, err := LoadRenderConfig(path)
	assert.Error(t, err)
}

func TestDefaultRenderConfig(t *testing.T) {
	config := DefaultRenderConfig()
	assert.Equal(t, 500, config.Width)
	assert.Equal(t, 500, config.Height)
	assert.True(t, config.IndirectLighting)
	assert.True(t, config.SurfaceLighting)
	assert.Positive(t, config.MaxDepth)
	assert.Positive(t, config.PassPerPixel)
}
