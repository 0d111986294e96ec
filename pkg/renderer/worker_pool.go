package renderer

import (
	"runtime"
	"sync"
)

// TileFunc renders one tile on behalf of worker workerID
type TileFunc func(workerID int, tile Tile) error

// WorkerPool runs a fixed set of goroutines over a pre-filled queue of tiles.
// The queue is closed before any worker starts, so a worker exits as soon as
// it finds the queue drained.
type WorkerPool struct {
	taskQueue  chan Tile
	numWorkers int

	mu  sync.Mutex
	err error
}

// NewWorkerPool enqueues every tile and closes the queue
func NewWorkerPool(tiles []Tile, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:  make(chan Tile, len(tiles)),
		numWorkers: numWorkers,
	}
	for _, tile := range tiles {
		wp.taskQueue <- tile
	}
	close(wp.taskQueue)

	return wp
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run starts the workers, waits for the queue to drain and returns the
// first error any tile reported. Failing tiles do not stop the others.
func (wp *WorkerPool) Run(render TileFunc) error {
	var wg sync.WaitGroup
	for id := 0; id < wp.numWorkers; id++ {
		wg.Add(1)
		go wp.work(id, render, &wg)
	}
	wg.Wait()

	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.err
}

// work is the main worker loop
func (wp *WorkerPool) work(id int, render TileFunc, wg *sync.WaitGroup) {
	defer wg.Done()

	for tile := range wp.taskQueue {
		if err := render(id, tile); err != nil {
			wp.mu.Lock()
			if wp.err == nil {
				wp.err = err
			}
			wp.mu.Unlock()
		}
	}
}
