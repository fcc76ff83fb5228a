// Package worldtest provides a recording display for tests.
package worldtest

// Recorder is an in-memory display that remembers what is on screen
// and how often each coordinate was drawn or cleared.
type Recorder struct {
	grid   map[[2]int]rune
	draws  map[[2]int]int
	clears map[[2]int]int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		grid:   make(map[[2]int]rune),
		draws:  make(map[[2]int]int),
		clears: make(map[[2]int]int),
	}
}

// DrawChar records a glyph at the position.
func (r *Recorder) DrawChar(x, y int, glyph rune) {
	r.grid[[2]int{x, y}] = glyph
	r.draws[[2]int{x, y}]++
}

// ClearChar erases the position.
func (r *Recorder) ClearChar(x, y int) {
	delete(r.grid, [2]int{x, y})
	r.clears[[2]int{x, y}]++
}

// At returns the glyph currently shown at the position and whether anything is there.
func (r *Recorder) At(x, y int) (rune, bool) {
	g, ok := r.grid[[2]int{x, y}]
	return g, ok
}

// Draws returns how many times the position was drawn.
func (r *Recorder) Draws(x, y int) int {
	return r.draws[[2]int{x, y}]
}

// Clears returns how many times the position was cleared.
func (r *Recorder) Clears(x, y int) int {
	return r.clears[[2]int{x, y}]
}

// Visible returns the number of occupied positions.
func (r *Recorder) Visible() int {
	return len(r.grid)
}
