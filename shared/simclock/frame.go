package simclock

import "time"

const (
	// TargetFrame is the duration of one frame-unit of simulation time (~60Hz).
	TargetFrame = 16670 * time.Microsecond
	// MaxDelta caps a single step so a stalled host does not cause a runaway jump.
	MaxDelta = 2.0
)

// ClampDelta limits a frame-unit delta to [0, MaxDelta].
func ClampDelta(dt float64) float64 {
	if dt < 0 || dt != dt {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

// FrameClock converts host tick timestamps into clamped frame-unit deltas.
type FrameClock struct {
	last    time.Time
	started bool
}

// NewFrameClock returns a clock that reports 0 on its first tick.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Reset forgets the previous tick so the next Tick returns 0.
func (f *FrameClock) Reset() {
	f.started = false
	f.last = time.Time{}
}

// Start anchors the clock at now.
func (f *FrameClock) Start(now time.Time) {
	f.last = now
	f.started = true
}

// Tick returns clamp((now-last)/TargetFrame, 0, MaxDelta) and records now.
func (f *FrameClock) Tick(now time.Time) float64 {
	if !f.started {
		f.Start(now)
		return 0
	}
	elapsed := now.Sub(f.last)
	f.last = now
	return ClampDelta(float64(elapsed) / float64(TargetFrame))
}
