package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
)

// TileStats counts the work done for one or more tiles
type TileStats struct {
	Pixels  int
	Samples int64
}

func (s *TileStats) add(other TileStats) {
	s.Pixels += other.Pixels
	s.Samples += other.Samples
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	JobID        uuid.UUID
	Width        int
	Height       int
	TotalPixels  int           // Pixels written to the framebuffer
	TotalSamples int64         // Primary rays traced
	Tiles        int           // Units of work in the queue
	Workers      int           // Goroutines in the pool
	Duration     time.Duration // Wall time from first tile to join
	Violations   int64         // Material contract violations rendered as black
	NonFinite    int64         // NaN or infinite samples rendered as black
}

// SamplesPerSecond returns the primary ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("job %s: %dx%d, %d samples in %v (%.0f samples/s, %d workers, %d tiles, %d violations, %d non-finite)",
		s.JobID, s.Width, s.Height, s.TotalSamples, s.Duration.Round(time.Millisecond),
		s.SamplesPerSecond(), s.Workers, s.Tiles, s.Violations, s.NonFinite)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(pixels)
}
