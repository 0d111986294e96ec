package renderer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		width, height, size int
		tiles               int
	}{
		{5, 3, 2, 6},
		{5, 3, 0, 15},
		{5, 3, 1, 15},
		{4, 4, 4, 1},
		{4, 4, 16, 1},
		{7, 1, 3, 3},
	}

	for _, tt := range tests {
		tiles := NewTileGrid(tt.width, tt.height, tt.size)
		require.Len(t, tiles, tt.tiles, "%dx%d by %d", tt.width, tt.height, tt.size)

		covered := make([]int, tt.width*tt.height)
		for i, tile := range tiles {
			assert.Equal(t, i, tile.ID)
			assert.False(t, tile.Bounds.Empty())
			assert.True(t, tile.Bounds.In(image.Rect(0, 0, tt.width, tt.height)))
			for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
				for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
					covered[y*tt.width+x]++
				}
			}
		}
		for i, count := range covered {
			assert.Equal(t, 1, count, "pixel %d", i)
		}
	}
}

func TestWorkerPool_RunsEveryTileOnce(t *testing.T) {
	tiles := NewTileGrid(10, 10, 1)
	pool := NewWorkerPool(tiles, 4)
	assert.Equal(t, 4, pool.NumWorkers())

	var seen [100]atomic.Int32
	var workersUsed sync.Map
	err := pool.Run(func(workerID int, tile Tile) error {
		seen[tile.ID].Add(1)
		workersUsed.Store(workerID, true)
		return nil
	})
	require.NoError(t, err)

	for i := range seen {
		assert.Equal(t, int32(1), seen[i].Load(), "tile %d", i)
	}
	workersUsed.Range(func(key, _ any) bool {
		assert.Less(t, key.(int), 4)
		return true
	})
}

func TestWorkerPool_ReportsFirstErrorAndFinishes(t *testing.T) {
	tiles := NewTileGrid(6, 1, 1)
	boom := errors.New("boom")

	var processed atomic.Int32
	err := NewWorkerPool(tiles, 1).Run(func(workerID int, tile Tile) error {
		processed.Add(1)
		if tile.ID >= 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(6), processed.Load(), "a failing tile does not stop the queue")
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), NewWorkerPool(nil, 0).NumWorkers())
	assert.NoError(t, NewWorkerPool(nil, 3).Run(func(int, Tile) error { return nil }))
}

func TestProgress(t *testing.T) {
	var out bytes.Buffer
	logger := core.NewWriterLogger(&out, &out, "", false)

	var calls []int
	var mu sync.Mutex
	progress := NewProgress(20, logger, func(done, total int) {
		mu.Lock()
		calls = append(calls, done)
		mu.Unlock()
		assert.Equal(t, 20, total)
	})

	for i := 0; i < 20; i++ {
		progress.Increment()
	}

	assert.Equal(t, 20, progress.Done())
	assert.Len(t, calls, 20)
	assert.Equal(t, 10, strings.Count(out.String(), "INFO"))
	assert.Contains(t, out.String(), "100% (20/20 pixels)")
	assert.Contains(t, out.String(), "50% (10/20 pixels)")
}

func TestParams(t *testing.T) {
	params := NewImageParams(16.0/9.0, 400, 10, 5, nil)
	assert.Equal(t, 225, params.Height)
	assert.NoError(t, params.Validate())

	assert.Equal(t, 450, params.WithWidth(800).Height)
	assert.Equal(t, 400, params.Width, "WithWidth returns a copy")

	assert.Equal(t, 1, NewImageParams(1000, 10, 1, 1, nil).Height)

	for _, bad := range []ImageParams{
		NewImageParams(1, 0, 10, 5, nil),
		NewImageParams(1, 10, 0, 5, nil),
		NewImageParams(1, 10, 10, 0, nil),
	} {
		assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	// Red, green, blue and black average to a quarter
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})
	assert.InDelta(t, 0.25, CalculateAverageLuminance(img), 1e-4)

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.RGBA{255, 255, 255, 255})
	assert.InDelta(t, 1.0, CalculateAverageLuminance(white), 1e-4)

	assert.Equal(t, 0.0, CalculateAverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))))
}

func TestRenderStats(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Duration: 2_000_000_000}
	assert.Equal(t, 500.0, stats.SamplesPerSecond())
	assert.Equal(t, 0.0, RenderStats{TotalSamples: 10}.SamplesPerSecond())
	assert.Contains(t, stats.String(), "1000 samples")
}

var _ integrator.Integrator = (*constantIntegrator)(nil)
