// FILE: internal/fen/fen.go

// Package fen extracts and decodes the piece-placement field of
// Forsyth-Edwards Notation.
package fen

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"fencat/internal/core"
)

// StartingPlacement is the piece placement of the standard initial position.
const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var (
	// ErrNoFEN means the input contains nothing matching the
	// piece-placement grammar.
	ErrNoFEN = errors.New("no FEN found")

	// ErrMalformedRank means a rank inside a matched placement does not
	// decode to exactly eight squares.
	ErrMalformedRank = errors.New("malformed rank")
)

// The placement grammar: eight slash-separated groups over the piece
// letters and the digits 1-8. Digit 9 is outside the alphabet, so a
// rank token like "9" can never match.
var placementRE = regexp.MustCompile(`([rnbqkpRNBQKP1-8]+/){7}[rnbqkpRNBQKP1-8]+`)

// Extract locates the first piece-placement field in input, tolerating
// any garbage before and after it, and independently resolves the
// optional side-to-move token that may follow. Matching is
// case-sensitive and only the first match in the input is used.
func Extract(input string) (string, core.ActiveColor, error) {
	loc := placementRE.FindStringIndex(input)
	if loc == nil {
		return "", core.TurnUnknown, ErrNoFEN
	}
	return input[loc[0]:loc[1]], trailingColor(input[loc[1]:]), nil
}

// trailingColor reads an optional single-character color token after
// the placement. The token only counts when it stands alone: "w junk"
// resolves to White, "wjunk" resolves to nothing.
func trailingColor(rest string) core.ActiveColor {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if rest == "" {
		return core.TurnUnknown
	}
	if next, _ := utf8.DecodeRuneInString(rest[1:]); len(rest) > 1 && !unicode.IsSpace(next) {
		return core.TurnUnknown
	}
	switch rest[0] {
	case 'w':
		return core.TurnWhite
	case 'b':
		return core.TurnBlack
	}
	return core.TurnUnknown
}
