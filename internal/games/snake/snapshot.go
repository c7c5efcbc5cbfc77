package snake

import "github.com/vovakirdan/checker-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and logs.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	SnakeLen   int
	Length     int
	Head       core.Cell
	Dir        core.Direction
	Food       core.Cell
	FoodSpawns int
}

// Snapshot returns the current game snapshot.
func (st *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:       st.tick,
		Phase:      st.phase,
		Score:      st.snake.Score(),
		SnakeLen:   st.snake.Len(),
		Length:     st.snake.Length(),
		Head:       st.snake.Head(),
		Dir:        st.snake.Direction(),
		Food:       st.food.Position(),
		FoodSpawns: st.food.Spawns(),
	}
}
