package core

import (
	"fmt"
	"time"
)

// Playfield geometry. The board is a fixed 20x20 grid of 30px cells.
const (
	ScreenWidth  = 600
	ScreenHeight = 600
	CellSize     = 30
	GridWidth    = ScreenWidth / CellSize
	GridHeight   = ScreenHeight / CellSize
)

// Loop timing.
const (
	TickRate     = 10 // Game ticks per second
	TickInterval = time.Second / TickRate
	GameOverHold = 2 * time.Second
)

// Cell is the top-left pixel origin of one grid cell.
// Coordinates are multiples of CellSize inside the playfield.
type Cell struct {
	X, Y int
}

// CellAt returns the cell at the given grid column and row, wrapped onto the board.
func CellAt(col, row int) Cell {
	return Cell{X: col * CellSize, Y: row * CellSize}.Wrap()
}

// Center returns the cell at the middle of the board.
func Center() Cell {
	return Cell{X: ScreenWidth / 2, Y: ScreenHeight / 2}
}

// Wrap reduces both axes modulo the playfield size.
func (c Cell) Wrap() Cell {
	return Cell{X: Mod(c.X, ScreenWidth), Y: Mod(c.Y, ScreenHeight)}
}

// Add moves the cell one step in dir, wrapping around the edges.
func (c Cell) Add(dir Direction) Cell {
	return Cell{X: c.X + dir.DX*CellSize, Y: c.Y + dir.DY*CellSize}.Wrap()
}

// Col returns the grid column of the cell.
func (c Cell) Col() int {
	return c.X / CellSize
}

// Row returns the grid row of the cell.
func (c Cell) Row() int {
	return c.Y / CellSize
}

// Rect returns the cell's area in pixels.
func (c Cell) Rect() Rect {
	return NewRect(c.X, c.Y, CellSize, CellSize)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid. Exactly one of DX, DY is non-zero.
type Direction struct {
	DX, DY int
}

// The four headings.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions returns the four headings in a stable order.
func Directions() []Direction {
	return []Direction{Up, Down, Right, Left}
}

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether other is the exact reverse of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}
