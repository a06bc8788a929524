// FILE: internal/core/core.go
package core

// Color identifies which side a piece belongs to.
type Color byte

const (
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return "Unknown"
	}
}

// PieceKind is the chessman type, stored as its lowercase FEN letter.
type PieceKind byte

const (
	KindNone PieceKind = 0
	Pawn     PieceKind = 'p'
	Knight   PieceKind = 'n'
	Bishop   PieceKind = 'b'
	Rook     PieceKind = 'r'
	Queen    PieceKind = 'q'
	King     PieceKind = 'k'
)

// Piece is one chessman: a side and a kind. The zero Piece is no piece.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// FEN returns the piece letter as it appears in a FEN rank:
// uppercase for White, lowercase for Black.
func (p Piece) FEN() byte {
	if p.Color == ColorWhite {
		return byte(p.Kind) - ('a' - 'A')
	}
	return byte(p.Kind)
}

// PieceFromFEN maps a FEN letter to a piece. Uppercase letters are
// White, lowercase Black. Returns false for anything outside the
// twelve piece letters.
func PieceFromFEN(ch rune) (Piece, bool) {
	color := ColorBlack
	lower := ch
	if ch >= 'A' && ch <= 'Z' {
		color = ColorWhite
		lower = ch + ('a' - 'A')
	}
	// Narrowing to PieceKind is only safe once lower is ASCII; a wider
	// rune would alias whatever its low byte happens to be.
	if lower < 'a' || lower > 'z' {
		return Piece{}, false
	}
	switch k := PieceKind(lower); k {
	case Pawn, Knight, Bishop, Rook, Queen, King:
		return Piece{Color: color, Kind: k}, true
	}
	return Piece{}, false
}

// Square is one board cell. The zero Square is empty.
type Square struct {
	Piece Piece
}

func (s Square) Occupied() bool {
	return s.Piece.Kind != KindNone
}

// ActiveColor is the side to move, when the input carried one.
type ActiveColor int

const (
	TurnUnknown ActiveColor = iota
	TurnWhite
	TurnBlack
)

func (a ActiveColor) String() string {
	switch a {
	case TurnWhite:
		return "White"
	case TurnBlack:
		return "Black"
	default:
		return "Unknown"
	}
}
