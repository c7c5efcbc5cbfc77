package core

import "testing"

func TestGridGeometry(t *testing.T) {
	if GridWidth != 20 || GridHeight != 20 {
		t.Errorf("grid = %dx%d, expected 20x20", GridWidth, GridHeight)
	}
	if TickInterval.Milliseconds() != 100 {
		t.Errorf("TickInterval = %v, expected 100ms", TickInterval)
	}
	if c := Center(); c != (Cell{X: 300, Y: 300}) {
		t.Errorf("Center() = %v, expected (300,300)", c)
	}
}

func TestCellAddWraps(t *testing.T) {
	tests := []struct {
		name     string
		from     Cell
		dir      Direction
		expected Cell
	}{
		{"right inside", Cell{300, 300}, Right, Cell{330, 300}},
		{"right edge", Cell{570, 120}, Right, Cell{0, 120}},
		{"left edge", Cell{0, 120}, Left, Cell{570, 120}},
		{"bottom edge", Cell{90, 570}, Down, Cell{90, 0}},
		{"top edge", Cell{90, 0}, Up, Cell{90, 570}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.from.Add(tc.dir)
			if got != tc.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tc.from, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	c := CellAt(3, 19)
	if c != (Cell{X: 90, Y: 570}) {
		t.Errorf("CellAt(3, 19) = %v, expected (90,570)", c)
	}
	if c.Col() != 3 || c.Row() != 19 {
		t.Errorf("Col/Row = %d/%d, expected 3/19", c.Col(), c.Row())
	}

	// Out-of-range indices wrap onto the board
	if w := CellAt(20, -1); w != (Cell{X: 0, Y: 570}) {
		t.Errorf("CellAt(20, -1) = %v, expected (0,570)", w)
	}

	r := c.Rect()
	if r.W != CellSize || r.H != CellSize || r.X != 90 || r.Y != 570 {
		t.Errorf("Rect() = %+v", r)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Left, Right}}
	for _, p := range pairs {
		if !p[0].IsOpposite(p[1]) || !p[1].IsOpposite(p[0]) {
			t.Errorf("%v and %v should be opposite", p[0], p[1])
		}
	}

	if Up.IsOpposite(Left) {
		t.Error("Up and Left are not opposite")
	}
	if Up.IsOpposite(Up) {
		t.Error("A direction is not its own opposite")
	}

	for _, d := range Directions() {
		if (d.DX == 0) == (d.DY == 0) {
			t.Errorf("%v should have exactly one non-zero component", d)
		}
	}
}
