package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// GlyphDef assigns a colour to a display glyph.
type GlyphDef struct {
	ID    string `json:"id"`    // Role of the glyph (e.g., "wall")
	Glyph string `json:"glyph"` // Single character as drawn (e.g., "=")
	Color string `json:"color"` // Hex color code (e.g., "#8A8A8A")
	Bold  bool   `json:"bold"`
}

// GlyphRune returns the glyph as a rune.
func (g *GlyphDef) GlyphRune() rune {
	if len(g.Glyph) == 0 {
		return '?'
	}
	return rune(g.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (g *GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Background string     `json:"background"`
	Foreground string     `json:"foreground"`
	Glyphs     []GlyphDef `json:"glyphs"`
}

// Palette maps glyphs to terminal styles.
type Palette struct {
	base   tcell.Style
	styles map[rune]tcell.Style
	defs   []GlyphDef
}

// NewPalette builds a palette from loaded definitions.
// Invalid base colours fall back to the terminal defaults.
func NewPalette(file PaletteFile) *Palette {
	base := tcell.StyleDefault
	if bg, err := ParseHexColor(file.Background); err == nil {
		base = base.Background(bg)
	}
	if fg, err := ParseHexColor(file.Foreground); err == nil {
		base = base.Foreground(fg)
	}

	p := &Palette{
		base:   base,
		styles: make(map[rune]tcell.Style, len(file.Glyphs)),
		defs:   file.Glyphs,
	}
	for i := range file.Glyphs {
		def := &file.Glyphs[i]
		p.styles[def.GlyphRune()] = base.Foreground(def.TCellColor()).Bold(def.Bold)
	}
	return p
}

// LoadPalette loads the palette from the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	if len(file.Glyphs) == 0 {
		return nil, errors.New("no glyphs loaded from palette.json")
	}
	return NewPalette(file), nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}

// Style returns the style for a glyph. Unknown glyphs use the base style.
func (p *Palette) Style(r rune) tcell.Style {
	if style, ok := p.styles[r]; ok {
		return style
	}
	return p.base
}

// Base returns the style used for empty cells and unknown glyphs.
func (p *Palette) Base() tcell.Style {
	return p.base
}

// GetByID returns the glyph definition with the given ID, or nil if not found.
func (p *Palette) GetByID(id string) *GlyphDef {
	for i := range p.defs {
		if p.defs[i].ID == id {
			return &p.defs[i]
		}
	}
	return nil
}

// Count returns the number of styled glyphs.
func (p *Palette) Count() int {
	return len(p.defs)
}
