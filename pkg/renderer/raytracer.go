package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// Config controls how a render is scheduled
type Config struct {
	Workers    int          // Goroutines in the pool; 0 uses every CPU
	TileSize   int          // Edge length of a unit of work in pixels
	Seed       int64        // Base seed of the per-pixel generators
	OnProgress ProgressFunc // Optional, called after every pixel
}

// DefaultConfig returns one pixel per unit of work on every CPU
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		TileSize: 1,
		Seed:     42,
	}
}

// Job is one image to render
type Job struct {
	ID     uuid.UUID // Generated when nil
	Name   string
	Params ImageParams
	Camera *Camera
	World  geometry.Hittable
	// Integrator defaults to a path tracer over Params.MaxDepth and Params.Background
	Integrator integrator.Integrator
}

// Renderer schedules jobs over a worker pool
type Renderer struct {
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer; a nil logger discards output
func NewRenderer(config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{config: config, logger: logger}
}

// Render runs job to completion and returns the finished framebuffer.
// There is no cancellation: every pixel is rendered exactly once.
func (r *Renderer) Render(job Job) (*Framebuffer, RenderStats, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	stats := RenderStats{JobID: job.ID, Width: job.Params.Width, Height: job.Params.Height}

	if err := job.Params.Validate(); err != nil {
		return nil, stats, fmt.Errorf("job %s: %w", job.ID, err)
	}
	if job.Camera == nil || job.World == nil {
		return nil, stats, fmt.Errorf("job %s: camera and world are required", job.ID)
	}

	pathIntegrator := job.Integrator
	if pathIntegrator == nil {
		background := job.Params.Background
		if background == nil {
			background = integrator.NewSkyGradient()
		}
		pathIntegrator = integrator.NewPathTracer(job.Params.MaxDepth, background, r.logger)
	}

	tiles := NewTileGrid(job.Params.Width, job.Params.Height, r.config.TileSize)
	pool := NewWorkerPool(tiles, r.config.Workers)
	framebuffer := NewFramebuffer(job.Params.Width, job.Params.Height)
	progress := NewProgress(job.Params.Width*job.Params.Height, r.logger, r.config.OnProgress)

	tileRenderer := &TileRenderer{
		world:       job.World,
		camera:      job.Camera,
		integrator:  pathIntegrator,
		params:      job.Params,
		seed:        r.config.Seed,
		framebuffer: framebuffer,
		progress:    progress,
	}

	r.logger.Infof("job %s: rendering %q at %dx%d, %d spp, depth %d on %d workers (%d tiles)",
		job.ID, job.Name, job.Params.Width, job.Params.Height, job.Params.SamplesPerPixel,
		job.Params.MaxDepth, pool.NumWorkers(), len(tiles))

	// Each worker only touches its own slot
	workerStats := make([]TileStats, pool.NumWorkers())
	start := time.Now()
	err := pool.Run(func(workerID int, tile Tile) error {
		tileStats, err := tileRenderer.RenderTile(tile)
		workerStats[workerID].add(tileStats)
		if err != nil {
			return fmt.Errorf("tile %d: %w", tile.ID, err)
		}
		return nil
	})
	stats.Duration = time.Since(start)

	var total TileStats
	for _, ws := range workerStats {
		total.add(ws)
	}
	stats.TotalPixels = total.Pixels
	stats.TotalSamples = total.Samples
	stats.Tiles = len(tiles)
	stats.Workers = pool.NumWorkers()
	integratorStats := pathIntegrator.Stats()
	stats.Violations = integratorStats.Violations
	stats.NonFinite = integratorStats.NonFinite

	if err != nil {
		return framebuffer, stats, fmt.Errorf("job %s: %w", job.ID, err)
	}
	if !framebuffer.Complete() {
		return framebuffer, stats, fmt.Errorf("job %s: only %d of %d pixels written", job.ID, framebuffer.Written(), progress.Total())
	}

	if stats.Violations > 0 {
		r.logger.Warnf("job %s: %d samples hit a material contract violation and were rendered black", job.ID, stats.Violations)
	}
	if stats.NonFinite > 0 {
		r.logger.Warnf("job %s: %d non-finite samples were rendered black", job.ID, stats.NonFinite)
	}
	r.logger.Infof("%s", stats)

	return framebuffer, stats, nil
}
