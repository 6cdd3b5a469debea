package game

import (
	"math"
	"testing"
	"time"

	"github.com/jdeal-mediamath/clockwork"
)

func TestFrameStatsZeroBeforeFirstWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	stats := NewFrameStats(clock)

	stats.Frame()
	stats.Frame()
	if stats.FPS() != 0 {
		t.Errorf("Expected FPS 0 before the first window completes, got %v", stats.FPS())
	}
}

func TestFrameStatsMeasuresRate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	stats := NewFrameStats(clock)

	// 60 frames spread over exactly one second.
	for i := 0; i < 60; i++ {
		clock.Advance(time.Second / 60)
		stats.Frame()
	}

	if math.Abs(stats.FPS()-60) > 0.5 {
		t.Errorf("Expected roughly 60 FPS, got %v", stats.FPS())
	}
}

func TestFrameStatsRollsWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	stats := NewFrameStats(clock)

	for i := 0; i < 30; i++ {
		clock.Advance(time.Second / 30)
		stats.Frame()
	}
	first := stats.FPS()

	// A slower second window replaces the measurement.
	for i := 0; i < 10; i++ {
		clock.Advance(time.Second / 10)
		stats.Frame()
	}
	second := stats.FPS()

	if math.Abs(first-30) > 0.5 {
		t.Errorf("Expected first window around 30 FPS, got %v", first)
	}
	if math.Abs(second-10) > 0.5 {
		t.Errorf("Expected second window around 10 FPS, got %v", second)
	}
}
