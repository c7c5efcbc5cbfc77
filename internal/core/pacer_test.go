package core

import (
	"testing"
	"time"
)

func TestPacerStepsAtTickRate(t *testing.T) {
	tests := []struct {
		fps       int
		frames    int
		wantSteps int
	}{
		{60, 60, 10}, // one second of frames
		{60, 5, 0},   // not yet a full tick
		{60, 6, 1},
		{30, 30, 10},
		{5, 7, 7}, // slower than TickRate: step every frame
	}

	for _, tc := range tests {
		p := NewPacer(tc.fps, GameOverHold)
		steps := 0
		for range tc.frames {
			if p.Frame() == PaceStep {
				steps++
			}
		}
		if steps != tc.wantSteps {
			t.Errorf("fps %d, %d frames: steps = %d, expected %d", tc.fps, tc.frames, steps, tc.wantSteps)
		}
	}
}

func TestPacerHold(t *testing.T) {
	p := NewPacer(60, GameOverHold)
	if p.Holding() {
		t.Fatal("new pacer should not be holding")
	}

	p.Hold()
	if !p.Holding() {
		t.Fatal("Holding() = false after Hold")
	}

	// 2s at 60 fps: 119 idle frames, done on the 120th
	for i := 1; i < 120; i++ {
		if got := p.Frame(); got != PaceIdle {
			t.Fatalf("frame %d = %v, expected PaceIdle", i, got)
		}
	}
	if got := p.Frame(); got != PaceDone {
		t.Errorf("frame 120 = %v, expected PaceDone", got)
	}
}

func TestPacerHoldIsIdempotent(t *testing.T) {
	p := NewPacer(10, 300*time.Millisecond)
	p.Hold()
	p.Frame()
	p.Hold() // must not restart the countdown

	if got := p.Frame(); got != PaceIdle {
		t.Errorf("second frame = %v, expected PaceIdle", got)
	}
	if got := p.Frame(); got != PaceDone {
		t.Errorf("third frame = %v, expected PaceDone", got)
	}
}
