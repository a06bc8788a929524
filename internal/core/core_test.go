// FILE: internal/core/core_test.go
package core

import "testing"

func TestPieceFromFEN(t *testing.T) {
	cases := []struct {
		ch   rune
		want Piece
	}{
		{'P', Piece{Color: ColorWhite, Kind: Pawn}},
		{'N', Piece{Color: ColorWhite, Kind: Knight}},
		{'B', Piece{Color: ColorWhite, Kind: Bishop}},
		{'R', Piece{Color: ColorWhite, Kind: Rook}},
		{'Q', Piece{Color: ColorWhite, Kind: Queen}},
		{'K', Piece{Color: ColorWhite, Kind: King}},
		{'p', Piece{Color: ColorBlack, Kind: Pawn}},
		{'n', Piece{Color: ColorBlack, Kind: Knight}},
		{'b', Piece{Color: ColorBlack, Kind: Bishop}},
		{'r', Piece{Color: ColorBlack, Kind: Rook}},
		{'q', Piece{Color: ColorBlack, Kind: Queen}},
		{'k', Piece{Color: ColorBlack, Kind: King}},
	}

	for _, c := range cases {
		t.Run(string(c.ch), func(t *testing.T) {
			got, ok := PieceFromFEN(c.ch)
			if !ok {
				t.Fatalf("PieceFromFEN(%q) not ok", c.ch)
			}
			if got != c.want {
				t.Errorf("want: %+v got: %+v", c.want, got)
			}
			if got.FEN() != byte(c.ch) {
				t.Errorf("FEN() round trip, want: %q got: %q", byte(c.ch), got.FEN())
			}
		})
	}
}

func TestPieceFromFENRejects(t *testing.T) {
	// The last three are multi-byte runes whose low byte is a piece letter.
	for _, ch := range []rune{'x', 'Z', '9', '1', '/', ' ', 'w', 'Ű', 'Ţ', 'ū'} {
		if p, ok := PieceFromFEN(ch); ok {
			t.Errorf("PieceFromFEN(%q) = %+v, want not ok", ch, p)
		}
	}
}

func TestSquareOccupied(t *testing.T) {
	var empty Square
	if empty.Occupied() {
		t.Error("zero Square reports occupied")
	}
	sq := Square{Piece: Piece{Color: ColorWhite, Kind: Queen}}
	if !sq.Occupied() {
		t.Error("queen square reports empty")
	}
}

func TestColorString(t *testing.T) {
	if ColorWhite.String() != "White" || ColorBlack.String() != "Black" {
		t.Error("color names wrong")
	}
	if Color(0).String() != "Unknown" {
		t.Error("zero color should be Unknown")
	}
}

func TestActiveColorString(t *testing.T) {
	cases := []struct {
		turn ActiveColor
		want string
	}{
		{TurnWhite, "White"},
		{TurnBlack, "Black"},
		{TurnUnknown, "Unknown"},
	}
	for _, c := range cases {
		if got := c.turn.String(); got != c.want {
			t.Errorf("want: %q got: %q", c.want, got)
		}
	}
}
