package entity

import (
	"math/rand"

	"github.com/samdwyer/termsnake/internal/world"
)

// FoodGlyph is the character used for food.
const FoodGlyph = '*'

// foodMargin keeps food this many cells away from the grid origin and far edges.
const foodMargin = 2

// FoodSpawner owns the single piece of food on the board.
type FoodSpawner struct {
	width, height int
	glyph         rune
	food          world.Cell
	placed        bool
	rng           *rand.Rand
	display       world.Display
}

// NewFoodSpawner creates a spawner for a width x height board. No food is placed
// until CreateFood is called.
func NewFoodSpawner(width, height int, glyph rune, rng *rand.Rand, d world.Display) *FoodSpawner {
	return &FoodSpawner{
		width:   width,
		height:  height,
		glyph:   glyph,
		rng:     rng,
		display: d,
	}
}

// CreateFood replaces the current food with a new one at a random position in
// [2, width-2) x [2, height-2) and draws it. The position is not checked
// against the snake or the wall.
func (f *FoodSpawner) CreateFood() world.Cell {
	x := foodMargin + f.rng.Intn(f.width-2*foodMargin)
	y := foodMargin + f.rng.Intn(f.height-2*foodMargin)

	f.food = world.NewCell(x, y, f.glyph)
	f.placed = true
	f.food.Draw(f.display)
	return f.food
}

// Food returns the current food cell.
func (f *FoodSpawner) Food() world.Cell {
	return f.food
}

// HasFood reports whether CreateFood has been called.
func (f *FoodSpawner) HasFood() bool {
	return f.placed
}
