package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/checker-snake/internal/core"
)

func TestNewState(t *testing.T) {
	st := New(core.RuntimeConfig{Seed: 1})

	if st.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", st.Phase())
	}
	if st.Snake().Head() != core.Center() || st.Snake().Len() != 1 {
		t.Errorf("snake should start as one segment at the center, got %v", st.Snake().Body())
	}
	if st.Status().Score != 0 {
		t.Errorf("Score = %d, expected 0", st.Status().Score)
	}
}

func TestInitialDirectionIsRandom(t *testing.T) {
	seen := make(map[core.Direction]bool)
	for seed := int64(0); seed < 200; seed++ {
		seen[New(core.RuntimeConfig{Seed: seed}).Snake().Direction()] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d initial directions over 200 seeds, expected 4", len(seen))
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	cfg := core.RuntimeConfig{Seed: 12345}
	g1 := New(cfg)
	g2 := New(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		switch i % 7 {
		case 2:
			input.Set(core.ActionDown)
		case 5:
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestStepEatsFood(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	food := NewFood(rng)
	food.pos = core.Cell{X: 330, Y: 300}
	st := NewWith(NewSnake(core.Center(), core.Right), food)

	spawns := food.Spawns()
	res := st.Step(core.NewInputFrame())

	if !res.Ate {
		t.Fatal("expected the snake to eat the food")
	}
	if st.Snake().Length() != 2 || res.Status.Score != 1 {
		t.Errorf("Length=%d Score=%d, expected 2 and 1", st.Snake().Length(), res.Status.Score)
	}
	if food.Spawns() != spawns+1 {
		t.Errorf("food should be randomized exactly once, spawns went %d -> %d", spawns, food.Spawns())
	}
}

func TestStepAppliesTurnsInOrder(t *testing.T) {
	food := NewFood(rand.New(rand.NewSource(5)))
	food.pos = core.CellAt(0, 0)
	st := NewWith(NewSnake(core.Center(), core.Right), food)

	// Up is accepted, then Left is no longer a reversal of Up.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionLeft)
	st.Step(input)

	if st.Snake().Direction() != core.Left {
		t.Errorf("Direction() = %v, expected left", st.Snake().Direction())
	}
	if st.Snake().Head() != (core.Cell{X: 270, Y: 300}) {
		t.Errorf("Head() = %v, expected (270,300)", st.Snake().Head())
	}
}

func TestDeathBeatsScoring(t *testing.T) {
	// Food sits on the neck: moving into it kills rather than scores.
	food := NewFood(rand.New(rand.NewSource(8)))
	food.pos = core.Cell{X: 330, Y: 300}
	s := newSnakeWithBody(core.Up, core.Cell{X: 300, Y: 300}, core.Cell{X: 330, Y: 300}, core.Cell{X: 360, Y: 300})
	s.direction = core.Right
	st := NewWith(s, food)
	spawns := food.Spawns()

	res := st.Step(core.NewInputFrame())

	if !res.Died || res.Ate {
		t.Errorf("StepResult = %+v, expected death without eating", res)
	}
	if st.Phase() != PhaseGameOver || !res.Status.GameOver {
		t.Error("game should be over after self collision")
	}
	if res.Status.Score != 0 || food.Spawns() != spawns {
		t.Error("dying must not score or move the food")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	food := NewFood(rand.New(rand.NewSource(8)))
	s := newSnakeWithBody(core.Up, core.Cell{X: 300, Y: 300}, core.Cell{X: 330, Y: 300}, core.Cell{X: 360, Y: 300})
	s.direction = core.Right
	st := NewWith(s, food)
	st.Step(core.NewInputFrame())

	before := st.Snapshot()
	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	for i := 0; i < 10; i++ {
		st.Step(input)
	}

	if st.Snapshot() != before {
		t.Errorf("state changed after game over:\n%+v\n%+v", before, st.Snapshot())
	}
}

func TestBodyNeverExceedsLength(t *testing.T) {
	st := New(core.RuntimeConfig{Seed: 2024})
	rng := rand.New(rand.NewSource(1))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	input := core.NewInputFrame()
	for i := 0; i < 2000 && st.Phase() == PhaseRunning; i++ {
		input.Clear()
		if rng.Intn(3) == 0 {
			input.Set(actions[rng.Intn(len(actions))])
		}
		// Feed the snake often by placing food right ahead of it.
		if i%4 == 0 {
			st.Food().pos = st.Snake().Head().Add(st.Snake().Direction())
		}
		st.Step(input)

		s := st.Snake()
		if s.Len() > s.Length() {
			t.Fatalf("tick %d: Len() = %d exceeds target %d", i, s.Len(), s.Length())
		}
		if s.Score() != s.Length()-1 {
			t.Fatalf("tick %d: Score() = %d, expected Length-1 = %d", i, s.Score(), s.Length()-1)
		}
	}
}
