package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"orbrun/internal/sim"
)

// fpsWindow is how many tick intervals the moving average covers.
const fpsWindow = 60

// cadenceSlack is the tolerated deviation from the target interval
// before a tick is reported as off-cadence.
const cadenceSlack = 2.0

// FPSMeter tracks the achieved tick rate with a moving average over the
// last fpsWindow intervals. The simulation itself is fixed-step; the
// meter only reports how well the host keeps up.
type FPSMeter struct {
	target    time.Duration
	intervals [fpsWindow]time.Duration
	idx       int
	count     int
	last      time.Time
	logger    *log.Logger
}

// NewFPSMeter creates a meter for the given tick rate.
// The logger may be nil to disable cadence warnings.
func NewFPSMeter(tickRate int, logger *log.Logger) *FPSMeter {
	return &FPSMeter{
		target: time.Second / time.Duration(tickRate),
		logger: logger,
	}
}

// Sample records one tick arrival. The first call only anchors the
// clock; averaging starts from the second.
func (f *FPSMeter) Sample(now time.Time) {
	if f.last.IsZero() {
		f.last = now
		return
	}

	delta := now.Sub(f.last)
	f.last = now

	f.intervals[f.idx] = delta
	f.idx = (f.idx + 1) % fpsWindow
	if f.count < fpsWindow {
		f.count++
	}

	if f.logger != nil && delta > time.Duration(float64(f.target)*cadenceSlack) {
		err := &sim.CadenceError{Want: f.target, Got: delta}
		f.logger.Warn("tick cadence drift", "error", err)
	}
}

// Average returns the measured ticks per second over the window.
// ok is false until at least one full interval has been sampled.
func (f *FPSMeter) Average() (float64, bool) {
	if f.count == 0 {
		return 0, false
	}

	var total time.Duration
	for i := 0; i < f.count; i++ {
		total += f.intervals[i]
	}
	if total <= 0 {
		return 0, false
	}

	avg := total / time.Duration(f.count)
	return float64(time.Second) / float64(avg), true
}

// Reset clears all samples, for example after a restart or a pause.
func (f *FPSMeter) Reset() {
	f.idx = 0
	f.count = 0
	f.last = time.Time{}
}
