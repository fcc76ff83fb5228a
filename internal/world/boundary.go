package world

const (
	// Default playfield dimensions. The drawable region is (Width+1) x (Height+1).
	GridWidth  = 80
	GridHeight = 26

	// WallGlyph is the character used for the boundary.
	WallGlyph = '='
)

type point struct{ x, y int }

// Boundary is the rectangular wall around the playfield.
// It is built and drawn once and never changes afterwards.
type Boundary struct {
	width  int
	height int
	cells  []Cell
	index  map[point]struct{}
}

// NewBoundary builds the perimeter of a width x height rectangle and draws it.
// The top and bottom rows span columns 0..width, the side columns span rows 0..height-1.
func NewBoundary(width, height int, glyph rune, d Display) *Boundary {
	b := &Boundary{
		width:  width,
		height: height,
		cells:  make([]Cell, 0, 2*(width+1)+2*height),
		index:  make(map[point]struct{}, 2*(width+1)+2*height),
	}

	b.horizontal(0, glyph, d)
	b.horizontal(height, glyph, d)
	b.vertical(0, glyph, d)
	b.vertical(width, glyph, d)

	return b
}

func (b *Boundary) horizontal(y int, glyph rune, d Display) {
	for x := 0; x <= b.width; x++ {
		b.add(NewCell(x, y, glyph), d)
	}
}

func (b *Boundary) vertical(x int, glyph rune, d Display) {
	for y := 0; y < b.height; y++ {
		b.add(NewCell(x, y, glyph), d)
	}
}

// add records a wall cell and draws it, skipping coordinates already present.
func (b *Boundary) add(c Cell, d Display) {
	p := point{c.X, c.Y}
	if _, ok := b.index[p]; ok {
		return
	}
	b.index[p] = struct{}{}
	b.cells = append(b.cells, c)
	c.Draw(d)
}

// IsHit returns true if the cell lies on the wall.
func (b *Boundary) IsHit(c Cell) bool {
	_, ok := b.index[point{c.X, c.Y}]
	return ok
}

// Cells returns a copy of the wall cells in drawing order.
func (b *Boundary) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Width returns the playfield width.
func (b *Boundary) Width() int { return b.width }

// Height returns the playfield height.
func (b *Boundary) Height() int { return b.height }
