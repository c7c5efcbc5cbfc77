// Package snake implements the checkerboard snake game: a pure simulation
// stepped at a fixed rate by a frontend, plus the routines that draw it.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/checker-snake/internal/core"
)

// Phase is the state of the game loop.
type Phase int

const (
	PhaseRunning  Phase = iota
	PhaseGameOver       // Terminal: nothing leaves this phase
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameStatus is what a frontend needs to know after a tick.
type GameStatus struct {
	Score    int  // Current score
	GameOver bool // Whether the snake has collided with itself
}

// StepResult is returned by State.Step after each simulation tick.
type StepResult struct {
	Status GameStatus
	Ate    bool // The snake ate the food this tick
	Died   bool // The snake collided this tick
}

// State owns everything that changes while the game runs.
// It is exclusively owned by one loop; it is not safe for concurrent use.
type State struct {
	rng   *rand.Rand
	tick  uint64
	phase Phase
	snake *Snake
	food  *Food
}

// New creates a running game: a one-segment snake at the board center with
// a random heading, and food at a random cell.
func New(cfg core.RuntimeConfig) *State {
	rng := rand.New(rand.NewSource(cfg.Seed))
	dirs := core.Directions()

	st := &State{rng: rng, phase: PhaseRunning}
	st.snake = NewSnake(core.Center(), dirs[rng.Intn(len(dirs))])
	st.food = NewFood(rng)
	return st
}

// NewWith creates a running game from an existing snake and food.
// Used to set up specific positions.
func NewWith(s *Snake, f *Food) *State {
	return &State{rng: f.rng, phase: PhaseRunning, snake: s, food: f}
}

// Step advances the game by one tick.
// Turns are applied in input order, then the snake moves. A collision ends
// the game before any food check, so dying wins over scoring on the same tick.
func (st *State) Step(input core.InputFrame) StepResult {
	if st.phase == PhaseGameOver {
		return StepResult{Status: st.Status()}
	}
	st.tick++

	for _, a := range input.Actions() {
		if dir, ok := a.Direction(); ok {
			st.snake.Turn(dir)
		}
	}

	if !st.snake.Move() {
		st.phase = PhaseGameOver
		return StepResult{Status: st.Status(), Died: true}
	}

	ate := false
	if st.snake.Head() == st.food.Position() {
		st.snake.Grow()
		st.food.Randomize()
		ate = true
	}

	return StepResult{Status: st.Status(), Ate: ate}
}

// Status returns the current score and game-over flag.
func (st *State) Status() GameStatus {
	return GameStatus{
		Score:    st.snake.Score(),
		GameOver: st.phase == PhaseGameOver,
	}
}

// Phase returns the loop phase.
func (st *State) Phase() Phase {
	return st.phase
}

// Tick returns the number of ticks simulated while running.
func (st *State) Tick() uint64 {
	return st.tick
}

// Snake returns the player's snake.
func (st *State) Snake() *Snake {
	return st.snake
}

// Food returns the food.
func (st *State) Food() *Food {
	return st.food
}

// DebugState returns a string representation of the game state.
func (st *State) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Phase: %s\n", st.tick, st.snake.Score(), st.phase)
	fmt.Fprintf(&b, "Snake len: %d/%d, Direction: %s\n", st.snake.Len(), st.snake.Length(), st.snake.Direction())
	fmt.Fprintf(&b, "Head: %s, Food: %s\n", st.snake.Head(), st.food.Position())
	return b.String()
}
