package snake

import (
	"math/rand"

	"github.com/vovakirdan/checker-snake/internal/core"
)

// Food is the single item the snake chases.
type Food struct {
	pos    core.Cell
	rng    *rand.Rand
	spawns int // Number of Randomize calls
}

// NewFood creates food at a random cell drawn from rng.
func NewFood(rng *rand.Rand) *Food {
	f := &Food{rng: rng}
	f.Randomize()
	return f
}

// Randomize moves the food to a uniformly random cell.
// The snake's body is not consulted, so the food may land under it.
func (f *Food) Randomize() {
	f.pos = core.CellAt(f.rng.Intn(core.GridWidth), f.rng.Intn(core.GridHeight))
	f.spawns++
}

// Spawns returns how many times the food has been placed.
func (f *Food) Spawns() int {
	return f.spawns
}

// Position returns the food's cell.
func (f *Food) Position() core.Cell {
	return f.pos
}

// Draw paints the food as a filled cell.
func (f *Food) Draw(dst core.Canvas, c core.Color) {
	dst.FillRect(f.pos.Rect(), c)
}
