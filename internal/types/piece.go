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

// Color is white or black.
type Color int

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String renders "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece enumerates the twelve piece kinds, white first then black, each
// in P,N,B,R,Q,K order. This is the same order the engine's move encoding
// and Zobrist piece-key table use.
type Piece int

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	PieceNone Piece = 12
)

var pieceLetters = "PNBRQKpnbrqk"

// String renders a piece as its FEN letter.
func (p Piece) String() string {
	if p < WP || p > BK {
		return "-"
	}
	return string(pieceLetters[p])
}

// PieceFromLetter parses a single FEN piece letter.
func PieceFromLetter(c byte) Piece {
	for i := 0; i < len(pieceLetters); i++ {
		if pieceLetters[i] == c {
			return Piece(i)
		}
	}
	return PieceNone
}

// Color returns the owning side of a piece.
func (p Piece) Color() Color {
	if p >= BP {
		return Black
	}
	return White
}

// PieceType strips color, returning a value in [Pawn..King].
func (p Piece) PieceType() PieceType {
	return PieceType(int(p) % 6)
}

// PieceType is a color-independent kind of piece.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// MakePiece builds a Piece from a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt))
}

// MaterialValue holds the fixed material values used by evaluation and by
// the "material_value(piece)" term of the move-ordering history score.
// Values are for White; Black's are the negation of these.
var MaterialValue = [6]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 350,
	Rook:   500,
	Queen:  1000,
	King:   10000,
}

// Value returns the signed material value of p: positive for white pieces,
// negative for black.
func (p Piece) Value() int {
	if p == PieceNone {
		return 0
	}
	v := MaterialValue[p.PieceType()]
	if p.Color() == Black {
		return -v
	}
	return v
}
