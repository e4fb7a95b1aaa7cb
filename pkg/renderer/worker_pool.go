package renderer

import (
	"math/rand"
	"sync"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// defaultWorkers is the size of the render worker pool when not
// configured otherwise.
const defaultWorkers = 8

// rowTask describes one image row of the current pass
type rowTask struct {
	y        int
	xp, yp   float64 // subpixel offset of the pass
	pass     int     // global pass number
	passSeed int64   // common seed used when shared seeding is enabled
}

// workerPool renders rows of a pass in parallel. Each task gets its own
// random generator, seeded deterministically from the pass and row, so
// no generator state is ever shared between workers.
type workerPool struct {
	tasks      chan rowTask
	numWorkers int
	pending    sync.WaitGroup
	done       sync.WaitGroup
}

// newWorkerPool creates and starts a pool executing run for every task
func newWorkerPool(numWorkers int, run func(task rowTask, random *rand.Rand)) *workerPool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}

	wp := &workerPool{
		tasks:      make(chan rowTask, numWorkers*4),
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.done.Add(1)
		go func() {
			defer wp.done.Done()
			for task := range wp.tasks {
				random := rand.New(rand.NewSource(core.PixelSeed(task.pass, task.y)))
				run(task, random)
				wp.pending.Done()
			}
		}()
	}

	return wp
}

// submit enqueues a row task
func (wp *workerPool) submit(task rowTask) {
	wp.pending.Add(1)
	wp.tasks <- task
}

// wait blocks until all submitted tasks have completed
func (wp *workerPool) wait() {
	wp.pending.Wait()
}

// stop shuts the pool down after the queued tasks drain
func (wp *workerPool) stop() {
	close(wp.tasks)
	wp.done.Wait()
}
