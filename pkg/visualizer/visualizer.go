package visualizer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// flushInterval throttles intermediate file writes during rendering
const flushInterval = time.Second

// Visualizer is a framebuffer image sink. Pixels are plotted during
// rendering and flushed to an output file: PNG by default, WebP when
// the output path carries a .webp extension. Plot and Update are safe
// for concurrent use.
type Visualizer struct {
	width      int
	height     int
	outputPath string

	mu        sync.Mutex
	img       *image.RGBA
	dirty     bool
	lastFlush time.Time
}

// New creates a visualizer of the given pixel extent writing to outputPath
func New(width, height int, outputPath string) *Visualizer {
	return &Visualizer{
		width:      width,
		height:     height,
		outputPath: outputPath,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the horizontal pixel extent
func (v *Visualizer) Width() int {
	return v.width
}

// Height returns the vertical pixel extent
func (v *Visualizer) Height() int {
	return v.height
}

// Plot writes one pixel. Color components are clamped to [0, 1].
func (v *Visualizer) Plot(x, y int, c core.Vec3) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return
	}
	c = c.Clamp(0, 1)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.img.SetRGBA(x, y, color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	})
	v.dirty = true
}

// Update flushes the framebuffer to the output file. Writes are
// throttled; Flush forces one.
func (v *Visualizer) Update() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.dirty || time.Since(v.lastFlush) < flushInterval {
		return
	}
	v.flushLocked()
}

// Flush writes the framebuffer to the output file unconditionally
func (v *Visualizer) Flush() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.flushLocked()
}

func (v *Visualizer) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(v.outputPath), 0755); err != nil {
		return err
	}
	file, err := os.Create(v.outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(v.outputPath), ".webp") {
		err = nativewebp.Encode(file, v.img, nil)
	} else {
		err = png.Encode(file, v.img)
	}
	if err != nil {
		return err
	}
	v.dirty = false
	v.lastFlush = time.Now()
	return nil
}

// Image returns a snapshot of the current framebuffer
func (v *Visualizer) Image() *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	snapshot := image.NewRGBA(v.img.Bounds())
	copy(snapshot.Pix, v.img.Pix)
	return snapshot
}

// WaitKeyPressed blocks until a key is pressed on standard input
func (v *Visualizer) WaitKeyPressed() {
	fmt.Println("Press enter to exit...")
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadByte()
}
