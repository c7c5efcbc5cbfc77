package core

import "time"

// Pace is what a frontend should do after one display frame.
type Pace int

const (
	PaceIdle Pace = iota // Nothing to simulate this frame
	PaceStep             // Run one game tick
	PaceDone             // Game-over hold elapsed, close the game
)

// Pacer divides a fixed display frame rate down to TickRate and counts down
// the game-over hold. Frontends that draw faster than the game ticks call
// Frame once per display frame.
type Pacer struct {
	stepEvery  int
	holdFrames int
	frames     int
	holdLeft   int
	holding    bool
}

// NewPacer creates a pacer for a display running at fps frames per second.
func NewPacer(fps int, hold time.Duration) *Pacer {
	return &Pacer{
		stepEvery:  max(1, fps/TickRate),
		holdFrames: max(1, int(hold.Seconds()*float64(fps))),
	}
}

// Frame advances one display frame.
func (p *Pacer) Frame() Pace {
	if p.holding {
		p.holdLeft--
		if p.holdLeft <= 0 {
			return PaceDone
		}
		return PaceIdle
	}

	p.frames++
	if p.frames < p.stepEvery {
		return PaceIdle
	}
	p.frames = 0
	return PaceStep
}

// Hold starts the game-over countdown. No further steps are reported.
func (p *Pacer) Hold() {
	if p.holding {
		return
	}
	p.holding = true
	p.holdLeft = p.holdFrames
}

// Holding reports whether the game-over screen is showing.
// Input other than quit is ignored while holding.
func (p *Pacer) Holding() bool {
	return p.holding
}
