// FILE: internal/render/glyphs.go
package render

import "fencat/internal/core"

// GlyphSet selects how pieces are drawn.
type GlyphSet string

const (
	GlyphsUnicode GlyphSet = "unicode"
	GlyphsASCII   GlyphSet = "ascii"
)

// Glyph maps are keyed by FEN letter, uppercase for white.
var unicodeGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

var asciiGlyphs = map[byte]string{
	'K': "K", 'Q': "Q", 'R': "R", 'B': "B", 'N': "N", 'P': "P",
	'k': "k", 'q': "q", 'r': "r", 'b': "b", 'n': "n", 'p': "p",
}

// Valid reports whether g names a known glyph set.
func (g GlyphSet) Valid() bool {
	return g == GlyphsUnicode || g == GlyphsASCII
}

// GlyphSets lists the known glyph set names for help and error text.
func GlyphSets() []string {
	return []string{string(GlyphsUnicode), string(GlyphsASCII)}
}

// style is the per-square drawing decision: which glyph to print and
// which foreground selector to wrap it in. An empty glyph means the
// square prints as blank padding.
type style struct {
	fg    string
	glyph string
}

func styleFor(p core.Piece, theme Theme, glyphs GlyphSet) style {
	set := unicodeGlyphs
	if glyphs == GlyphsASCII {
		set = asciiGlyphs
	}
	g, ok := set[p.FEN()]
	if !ok {
		return style{}
	}
	pal := palettes[theme]
	fg := pal.whiteFg
	if p.Color == core.ColorBlack {
		fg = pal.blackFg
	}
	return style{fg: fg, glyph: g}
}
