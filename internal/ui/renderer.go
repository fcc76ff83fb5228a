package ui

import (
	"github.com/samdwyer/termsnake/internal/gamedata"
)

// Renderer draws single glyphs onto the screen, styled by the palette.
// It satisfies world.Display.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	screen.SetStyle(palette.Base())
	return &Renderer{screen: screen, palette: palette}
}

// DrawChar draws a glyph at (x, y).
func (r *Renderer) DrawChar(x, y int, glyph rune) {
	r.screen.SetContent(x, y, glyph, r.palette.Style(glyph))
}

// ClearChar blanks the cell at (x, y).
func (r *Renderer) ClearChar(x, y int) {
	r.screen.SetContent(x, y, ' ', r.palette.Base())
}

// Clear blanks the whole screen.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Show flushes pending draws to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}
