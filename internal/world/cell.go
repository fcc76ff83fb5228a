// Package world provides the grid primitives: cells, directions and the boundary wall.
package world

// Display is the drawing surface the game renders onto.
// Coordinates are grid columns (x) and rows (y) with the origin at the top-left.
type Display interface {
	DrawChar(x, y int, glyph rune)
	ClearChar(x, y int)
}

// Cell is a grid coordinate plus the glyph drawn there.
type Cell struct {
	X, Y  int
	Glyph rune
}

// NewCell creates a cell at the given position.
func NewCell(x, y int, glyph rune) Cell {
	return Cell{X: x, Y: y, Glyph: glyph}
}

// Equal reports whether two cells occupy the same coordinate. Glyphs are ignored.
func (c Cell) Equal(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Step returns a copy of the cell moved one step in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy, Glyph: c.Glyph}
}

// Draw renders the cell's glyph.
func (c Cell) Draw(d Display) {
	d.DrawChar(c.X, c.Y, c.Glyph)
}

// Clear erases the cell from the display.
func (c Cell) Clear(d Display) {
	d.ClearChar(c.X, c.Y)
}

// Direction is one of the four axis-aligned headings.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the one-step offset for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}
