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

// Move packs source, target, piece, promotion and flags into 24 bits:
//
//	bits  0- 5  source square
//	bits  6-11  target square
//	bits 12-15  moving piece
//	bits 16-19  promoted piece (0 if none)
//	bit     20  capture flag
//	bit     21  double pawn push flag
//	bit     22  en-passant capture flag
//	bit     23  castle flag
//
// At most one of {double push, en-passant, castle} is ever set, and a
// nonzero promotion implies the moving piece is a pawn.
type Move uint32

// NoMove is the zero move, never produced by the generator.
const NoMove Move = 0

// NewMove encodes a move from its components.
func NewMove(source, target Square, piece Piece, promoted Piece, capture, double, enpassant, castle bool) Move {
	m := Move(source) | Move(target)<<6 | Move(piece)<<12
	if promoted != PieceNone {
		m |= Move(promoted) << 16
	}
	if capture {
		m |= 1 << 20
	}
	if double {
		m |= 1 << 21
	}
	if enpassant {
		m |= 1 << 22
	}
	if castle {
		m |= 1 << 23
	}
	return m
}

func (m Move) Source() Square   { return Square(m & 0x3f) }
func (m Move) Target() Square   { return Square((m & 0xfc0) >> 6) }
func (m Move) Piece() Piece     { return Piece((m & 0xf000) >> 12) }
func (m Move) IsCapture() bool  { return m&(1<<20) != 0 }
func (m Move) IsDouble() bool   { return m&(1<<21) != 0 }
func (m Move) IsEnPassant() bool { return m&(1<<22) != 0 }
func (m Move) IsCastle() bool   { return m&(1<<23) != 0 }

// Promoted returns the promotion piece, or PieceNone if this isn't a
// promoting move.
func (m Move) Promoted() Piece {
	p := (m & 0xf0000) >> 16
	if p == 0 {
		return PieceNone
	}
	return Piece(p)
}

// String renders a move in long algebraic notation: e2e4, e7e8q.
func (m Move) String() string {
	s := m.Source().String() + m.Target().String()
	if promo := m.Promoted(); promo != PieceNone {
		s += string([]byte{"pnbrqk"[promo.PieceType()]})
	}
	return s
}
