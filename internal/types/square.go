//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import "fmt"

// Square numbers the board 0=a8 .. 63=h1, rank-major with rank 8 first.
// This matches the reference engine's numbering rather than the more
// common 0=a1 layout, so file/rank extraction stays a plain mask/shift.
type Square int

// NoSquare is the sentinel used for "no en-passant target" and similar.
const NoSquare Square = 64

// Named squares, all 64 in numbering order.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// File returns the 0-based file (0=a .. 7=h).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the 0-based rank from the top of the board (0 = rank 8).
func (s Square) Rank() int { return int(s) >> 3 }

// Bb returns the single-bit bitboard for this square.
func (s Square) Bb() Bb { return Bb(1) << uint(s) }

// Valid reports whether s is a real board square.
func (s Square) Valid() bool { return s >= A8 && s <= H1 }

var fileNames = "abcdefgh"

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	rank := 8 - s.Rank()
	return fmt.Sprintf("%c%d", fileNames[s.File()], rank)
}

// SquareFromString parses algebraic notation ("e4") into a Square.
func SquareFromString(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", str)
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '0')
	if file < 0 || file > 7 || rank < 1 || rank > 8 {
		return NoSquare, fmt.Errorf("invalid square %q", str)
	}
	return Square((8-rank)*8 + file), nil
}

// MirrorRank maps a square to its rank-mirror image, used to read white
// piece-square tables from black's perspective.
func (s Square) MirrorRank() Square {
	return Square((7-s.Rank())*8 + s.File())
}
