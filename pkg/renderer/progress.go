package renderer

import (
	"sync/atomic"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// progressMilestones is how many times progress is logged over a render
const progressMilestones = 10

// ProgressFunc is told the completed and total pixel counts. It is called
// from worker goroutines and must be safe for concurrent use.
type ProgressFunc func(done, total int)

// Progress is a monotonically increasing completed-pixel counter
type Progress struct {
	total    int
	done     atomic.Int64
	logger   core.Logger
	callback ProgressFunc
}

// NewProgress creates a counter over total pixels
func NewProgress(total int, logger core.Logger, callback ProgressFunc) *Progress {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Progress{total: total, logger: logger, callback: callback}
}

// Increment records one finished pixel and logs every tenth of the way
func (p *Progress) Increment() {
	done := int(p.done.Add(1))

	if p.total > 0 {
		before := (done - 1) * progressMilestones / p.total
		after := done * progressMilestones / p.total
		if after > before {
			p.logger.Infof("%d%% (%d/%d pixels)", after*100/progressMilestones, done, p.total)
		}
	}

	if p.callback != nil {
		p.callback(done, p.total)
	}
}

// Done returns the number of finished pixels
func (p *Progress) Done() int {
	return int(p.done.Load())
}

// Total returns the number of pixels in the render
func (p *Progress) Total() int {
	return p.total
}
