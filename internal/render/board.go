// FILE: internal/render/board.go

// Package render turns a decoded board into styled terminal lines.
package render

import (
	"strings"

	"fencat/internal/core"
	"fencat/internal/fen"
)

// Options select how a board is drawn.
type Options struct {
	Flip     bool
	Theme    Theme
	Glyphs   GlyphSet
	ShowTurn bool
}

// DefaultOptions returns the stock white-perspective setup.
func DefaultOptions() Options {
	return Options{
		Theme:    ThemeClassic,
		Glyphs:   GlyphsUnicode,
		ShowTurn: true,
	}
}

const (
	headerWhite = "   a  b  c  d  e  f  g  h"
	headerBlack = "   h  g  f  e  d  c  b  a"
)

// Cell styles a single square. A cell is always three columns wide:
// background selector, then padding or the colored glyph, then a reset
// so styling never bleeds past the square.
func Cell(sq core.Square, light bool, opts Options) string {
	pal := palettes[opts.Theme]
	bg := pal.darkBg
	if light {
		bg = pal.lightBg
	}
	st := styleFor(sq.Piece, opts.Theme, opts.Glyphs)
	if !sq.Occupied() || st.glyph == "" {
		return bg + "   " + pal.reset
	}
	return bg + st.fg + " " + st.glyph + " " + pal.reset
}

// Format lays out the board as printable lines: a file-label header,
// eight rank rows with numeric labels on both sides, a matching footer,
// and the active color when requested. Shading is computed from the
// absolute rank and file, so flipping moves squares around without
// changing which ones are light.
func Format(b *fen.Board, opts Options) []string {
	header := headerWhite
	if opts.Flip {
		header = headerBlack
	}

	lines := make([]string, 0, 11)
	lines = append(lines, header)

	for row := 0; row < 8; row++ {
		rank := row
		if opts.Flip {
			rank = 7 - row
		}
		label := byte('8' - rank)

		var sb strings.Builder
		sb.WriteByte(label)
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			file := col
			if opts.Flip {
				file = 7 - col
			}
			light := (rank+file)%2 == 0
			sb.WriteString(Cell(b.At(rank, file), light, opts))
		}
		sb.WriteByte(' ')
		sb.WriteByte(label)
		lines = append(lines, sb.String())
	}

	lines = append(lines, header)

	if opts.ShowTurn {
		lines = append(lines, "Active color: "+b.Turn().String())
	}
	return lines
}
