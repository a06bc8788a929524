// FILE: internal/fen/board.go
package fen

import (
	"fmt"
	"strings"

	"fencat/internal/core"
)

// Board is a decoded position: eight ranks of eight squares. Rank
// index 0 holds FEN's first rank (rank 8), file index 0 holds file a.
type Board struct {
	ranks [8][8]core.Square
	turn  core.ActiveColor
}

// At returns the square at the given rank and file index.
func (b *Board) At(rank, file int) core.Square {
	return b.ranks[rank][file]
}

// Turn reports the side to move, TurnUnknown when the input had none.
func (b *Board) Turn() core.ActiveColor {
	return b.turn
}

// DecodeRank expands one run-length-encoded rank token into squares.
// A digit expands to that many empty squares; consecutive digits each
// expand on their own, so "44" yields eight. A piece letter expands to
// one occupied square. Anything else becomes a single empty square.
// The width-8 invariant is not checked here; Build enforces it.
func DecodeRank(token string) []core.Square {
	squares := make([]core.Square, 0, 8)
	for _, ch := range token {
		if ch >= '1' && ch <= '9' {
			for i := 0; i < int(ch-'0'); i++ {
				squares = append(squares, core.Square{})
			}
			continue
		}
		piece, ok := core.PieceFromFEN(ch)
		if !ok {
			squares = append(squares, core.Square{})
			continue
		}
		squares = append(squares, core.Square{Piece: piece})
	}
	return squares
}

// Build assembles a Board from an extracted placement. The first
// slash-separated token becomes rank 8, per FEN convention. Every rank
// must decode to exactly eight squares.
func Build(placement string, turn core.ActiveColor) (*Board, error) {
	tokens := strings.Split(placement, "/")
	if len(tokens) != 8 {
		return nil, fmt.Errorf("%w: placement has %d ranks", ErrNoFEN, len(tokens))
	}

	b := &Board{turn: turn}
	for i, token := range tokens {
		squares := DecodeRank(token)
		if len(squares) != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d squares", ErrMalformedRank, 8-i, len(squares))
		}
		copy(b.ranks[i][:], squares)
	}
	return b, nil
}

// Parse runs the full pipeline on raw input: extract the placement,
// then build the board.
func Parse(input string) (*Board, error) {
	placement, turn, err := Extract(input)
	if err != nil {
		return nil, err
	}
	return Build(placement, turn)
}
