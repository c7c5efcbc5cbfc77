package core

// FontSize selects one of the two text styles the game draws with.
type FontSize int

const (
	FontScore  FontSize = iota // Score overlay, 30px bold
	FontBanner                 // Game over banner, 60px bold
)

// Points returns the nominal pixel size of the font.
func (f FontSize) Points() float64 {
	if f == FontBanner {
		return 60
	}
	return 30
}

// Canvas is a drawing surface in playfield pixel coordinates.
// The window frontend draws real pixels; terminal frontends map the
// same calls onto a character Screen.
type Canvas interface {
	// FillRect fills r with a solid color.
	FillRect(r Rect, c Color)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y int, text string, size FontSize, c Color)

	// DrawTextCentered draws text horizontally centered on the playfield
	// with its top edge at y.
	DrawTextCentered(y int, text string, size FontSize, c Color)
}

// Character cell footprint of one grid cell on a terminal: two columns
// keep the board roughly square.
const (
	TermCellCols = 2
	TermCellRows = 1

	// BoardCols and BoardRows are the board size in terminal characters.
	BoardCols = GridWidth * TermCellCols
	BoardRows = GridHeight * TermCellRows
)

// ScreenCanvas adapts a character Screen to the Canvas interface.
// The playfield's top-left pixel lands on the screen at (OriginX, OriginY).
type ScreenCanvas struct {
	Screen  *Screen
	OriginX int
	OriginY int
}

// NewScreenCanvas creates a canvas drawing onto s at the given origin.
func NewScreenCanvas(s *Screen, originX, originY int) *ScreenCanvas {
	return &ScreenCanvas{Screen: s, OriginX: originX, OriginY: originY}
}

const (
	pxPerCol = CellSize / TermCellCols
	pxPerRow = CellSize / TermCellRows
)

// col maps a pixel x coordinate to a screen column.
func (c *ScreenCanvas) col(x int) int {
	return c.OriginX + x/pxPerCol
}

// row maps a pixel y coordinate to a screen row.
func (c *ScreenCanvas) row(y int) int {
	return c.OriginY + y/pxPerRow
}

// FillRect paints the background of every character the rectangle covers.
func (c *ScreenCanvas) FillRect(r Rect, clr Color) {
	x0, y0 := c.col(r.X), c.row(r.Y)
	// Round the far edges up so partial characters are covered.
	x1 := c.OriginX + (r.Right()+pxPerCol-1)/pxPerCol
	y1 := c.OriginY + (r.Bottom()+pxPerRow-1)/pxPerRow
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Screen.SetGlyph(x, y, Glyph{Rune: ' ', Bg: clr})
		}
	}
}

// DrawText writes text over the existing background.
func (c *ScreenCanvas) DrawText(x, y int, text string, _ FontSize, clr Color) {
	c.Screen.DrawStyledText(c.col(x), c.row(y), text, clr, true)
}

// DrawTextCentered centers text across the board columns.
func (c *ScreenCanvas) DrawTextCentered(y int, text string, _ FontSize, clr Color) {
	x := c.OriginX + (BoardCols-len([]rune(text)))/2
	c.Screen.DrawStyledText(x, c.row(y), text, clr, true)
}
