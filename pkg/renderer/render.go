package renderer

import (
	"math/rand"
	"time"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// Visualizer is the image sink the renderer draws into. Plot and Update
// must be safe for serialized concurrent use.
type Visualizer interface {
	Width() int
	Height() int
	Plot(x, y int, color core.Vec3)
	Update()
}

// exposure is the fixed linear scale applied when plotting accumulated
// pixel values.
const exposure = 10.0

// pixelAccum accumulates the samples of one pixel across passes
type pixelAccum struct {
	count int
	sum   core.Vec3
}

func (p *pixelAccum) add(color core.Vec3) {
	p.count++
	p.sum = p.sum.Add(color)
}

func (p *pixelAccum) value() core.Vec3 {
	if p.count == 0 {
		return core.Vec3{}
	}
	return p.sum.Multiply(exposure / float64(p.count))
}

// Render performs passPerPixel × subPixelDivision² rendering passes over
// the image, accumulating one sample per pixel per pass. Subpixel
// offsets are enumerated on a regular grid over [-0.5, 0.5)². Rows
// within a pass are rendered in parallel by the worker pool; passes are
// sequential.
func (r *Renderer) Render(visu Visualizer, camera Camera, maxDepth, subPixelDivision, passPerPixel int) {
	if subPixelDivision < 1 {
		subPixelDivision = 1
	}
	if passPerPixel < 1 {
		passPerPixel = 1
	}

	width := visu.Width()
	height := visu.Height()
	pixelTable := make([][]pixelAccum, width)
	for x := range pixelTable {
		pixelTable[x] = make([]pixelAccum, height)
	}

	step := 1.0 / float64(subPixelDivision)
	totalPasses := passPerPixel * subPixelDivision * subPixelDivision
	seeds := rand.New(rand.NewSource(time.Now().UnixNano()))

	pool := newWorkerPool(r.opts.Workers, func(task rowTask, random *rand.Rand) {
		r.renderRow(visu, camera, pixelTable, task, maxDepth, random)
	})
	defer pool.stop()

	startTime := time.Now()
	pass := 0
	for counter := 0; counter < passPerPixel; counter++ {
		for i := 0; i < subPixelDivision; i++ {
			xp := -0.5 + float64(i)*step
			for j := 0; j < subPixelDivision; j++ {
				yp := -0.5 + float64(j)*step

				r.opts.Logger.Printf("Pass: %d/%d\n", pass, totalPasses)
				pass++
				passSeed := seeds.Int63()

				for y := 0; y < height; y++ {
					pool.submit(rowTask{y: y, xp: xp, yp: yp, pass: pass, passSeed: passSeed})
				}
				pool.wait()
				visu.Update()

				elapsed := time.Since(startTime)
				remaining := elapsed / time.Duration(pass) * time.Duration(totalPasses-pass)
				r.opts.Logger.Printf("time: %v, remaining time: %v, total time: %v\n",
					elapsed.Round(time.Millisecond), remaining.Round(time.Millisecond),
					(elapsed + remaining).Round(time.Millisecond))
			}
		}
	}

	elapsed := time.Since(startTime)
	r.opts.Logger.Printf("time: %v\n", elapsed.Round(time.Millisecond))
}

// renderRow renders one row of the current pass. The accumulator is
// partitioned by pixel coordinate and rows never overlap, so writes are
// race-free; the visualizer serializes Plot internally.
func (r *Renderer) renderRow(visu Visualizer, camera Camera, pixelTable [][]pixelAccum, task rowTask, maxDepth int, random *rand.Rand) {
	width := visu.Width()
	height := visu.Height()

	for x := 0; x < width; x++ {
		if r.opts.SharedSeed {
			random.Seed(task.passSeed)
		}

		u := (float64(x) + task.xp) / float64(width)
		v := (float64(task.y) + task.yp) / float64(height)
		ray := camera.GetRay(u, v)

		var color core.Vec3
		if r.opts.IndirectLighting {
			color = r.PathTracing(ray, 0, maxDepth, random)
		} else {
			color = r.SendRay(ray, 0, maxDepth, random)
		}

		pixel := &pixelTable[x][task.y]
		pixel.add(color)
		visu.Plot(x, task.y, pixel.value())
	}

	// Refresh the rendering target once per line
	visu.Update()
}
