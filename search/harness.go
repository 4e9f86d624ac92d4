package search

import (
	"runtime"
	"time"
)

// Harness tracks expansion count and elapsed time for one solver
// invocation and drives progress sampling and cooperative yielding.
// It owns no search state beyond its own counters; frontier and
// depth are supplied by the caller at each sample point because only
// the solver knows its own frontier representation.
type Harness struct {
	opts     Options
	start    time.Time
	explored int
}

// NewHarness starts the clock for a fresh solver invocation.
func NewHarness(opts Options) *Harness {
	return &Harness{opts: opts, start: time.Now()}
}

// Cancelled polls the harness's context without blocking.
func (h *Harness) Cancelled() bool {
	select {
	case <-h.opts.Ctx.Done():
		return true
	default:
		return false
	}
}

// Expand records one node expansion (pop + goal-test) and, every
// ProgressInterval expansions, reports progress and yields the
// scheduler once.
func (h *Harness) Expand(frontier, depth int) {
	h.explored++
	if h.explored%ProgressInterval == 0 {
		h.report(frontier, depth)
		runtime.Gosched()
	}
}

// Final reports a last progress sample at termination, regardless of
// whether the last Expand call happened to land on the interval.
func (h *Harness) Final(frontier, depth int) {
	h.report(frontier, depth)
}

func (h *Harness) report(frontier, depth int) {
	h.opts.Progress(Metrics{
		Explored: h.explored,
		Frontier: frontier,
		Depth:    depth,
		TimeMs:   h.ElapsedMs(),
	})
}

// Explored returns the current expansion count.
func (h *Harness) Explored() int { return h.explored }

// ElapsedMs returns elapsed wall-clock time since the harness was
// created, rounded to the millisecond.
func (h *Harness) ElapsedMs() int64 {
	return time.Since(h.start).Round(time.Millisecond).Milliseconds()
}
