package game

import (
	"time"

	"github.com/jdeal-mediamath/clockwork"
)

// FrameStats tracks the frame rate over one-second windows. It takes a
// clockwork.Clock so tests can drive it with a fake clock.
type FrameStats struct {
	clock       clockwork.Clock
	windowStart time.Time
	frames      int
	fps         float64
}

// NewFrameStats creates a tracker using the given clock.
func NewFrameStats(clock clockwork.Clock) *FrameStats {
	return &FrameStats{
		clock:       clock,
		windowStart: clock.Now(),
	}
}

// Frame records one rendered frame, rolling the measurement window once a
// second of clock time has passed.
func (s *FrameStats) Frame() {
	s.frames++
	now := s.clock.Now()
	if elapsed := now.Sub(s.windowStart); elapsed >= time.Second {
		s.fps = float64(s.frames) / elapsed.Seconds()
		s.frames = 0
		s.windowStart = now
	}
}

// FPS returns the rate measured over the last completed window. Zero until
// the first window completes.
func (s *FrameStats) FPS() float64 {
	return s.fps
}
