package visualizer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

func TestVisualizer_PlotAndClamp(t *testing.T) {
	v := New(4, 4, filepath.Join(t.TempDir(), "out.png"))

	assert.Equal(t, 4, v.Width())
	assert.Equal(t, 4, v.Height())

	// Values above 1 clamp to full intensity
	v.Plot(1, 2, core.NewVec3(10, 0.5, -3))
	img := v.Image()
	r, g, b, a := img.At(1, 2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x7f7f), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	// Out-of-bounds plots are ignored
	v.Plot(-1, 0, core.NewVec3(1, 1, 1))
	v.Plot(4, 4, core.NewVec3(1, 1, 1))
}

func TestVisualizer_FlushWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.png")
	v := New(2, 2, path)
	v.Plot(0, 0, core.NewVec3(1, 0, 0))

	require.NoError(t, v.Flush())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
}

func TestVisualizer_FlushWritesWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.webp")
	v := New(2, 2, path)
	v.Plot(1, 1, core.NewVec3(0, 1, 0))

	require.NoError(t, v.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	// RIFF....WEBP container header
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestVisualizer_ConcurrentPlots(t *testing.T) {
	v := New(16, 16, filepath.Join(t.TempDir(), "out.png"))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					v.Plot(x, y, core.NewVec3(float64(worker)/8, 0, 0))
				}
				v.Update()
			}
		}(w)
	}
	wg.Wait()
}
