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

package position

import (
	"github.com/arcbound/bitknight/internal/assert"
	"github.com/arcbound/bitknight/internal/types"
	"github.com/arcbound/bitknight/internal/zobrist"
)

// castleRookMove describes the rook relocation implied by a king castling
// move, indexed by the king's target square.
type castleRookMove struct {
	rook                Piece
	from, to            types.Square
}

// Piece is a local alias so the table below reads naturally; it is the
// same type as types.Piece.
type Piece = types.Piece

var castleRookMoves = map[types.Square]castleRookMove{
	types.G1: {rook: types.WR, from: types.H1, to: types.F1},
	types.C1: {rook: types.WR, from: types.A1, to: types.D1},
	types.G8: {rook: types.BR, from: types.H8, to: types.F8},
	types.C8: {rook: types.BR, from: types.A8, to: types.D8},
}

// Make applies m to the position. It returns false if capturesOnly is set
// and m is not a capture (the position is then untouched), or if the move
// is illegal because it leaves the mover's king in check (the move has
// then already been applied, and callers must restore from their own
// saved copy).
//
// Callers implement unmake by saving a copy of the Position before calling
// Make and restoring it afterward; see package doc.
func (p *Position) Make(m types.Move, capturesOnly bool) bool {
	if capturesOnly && !m.IsCapture() {
		return false
	}

	source, target := m.Source(), m.Target()
	piece := m.Piece()
	mover := p.Side

	if piece.PieceType() == types.Pawn || m.IsCapture() {
		p.Halfmove = 0
	} else {
		p.Halfmove++
	}
	if mover == types.Black {
		p.Fullmove++
	}

	p.PieceBb[piece] = p.PieceBb[piece].Clear(source).Set(target)
	p.Hash ^= zobrist.Piece[piece][source] ^ zobrist.Piece[piece][target]

	if m.IsCapture() && !m.IsEnPassant() {
		start, end := types.BP, types.BK
		if mover == types.Black {
			start, end = types.WP, types.WK
		}
		for victim := start; victim <= end; victim++ {
			if p.PieceBb[victim]&target.Bb() != 0 {
				p.PieceBb[victim] = p.PieceBb[victim].Clear(target)
				p.Hash ^= zobrist.Piece[victim][target]
				break
			}
		}
	}

	if promoted := m.Promoted(); promoted != types.PieceNone {
		p.PieceBb[piece] = p.PieceBb[piece].Clear(target)
		p.Hash ^= zobrist.Piece[piece][target]
		p.PieceBb[promoted] = p.PieceBb[promoted].Set(target)
		p.Hash ^= zobrist.Piece[promoted][target]
	}

	if m.IsEnPassant() {
		capSq := target + 8
		capPawn := types.BP
		if mover == types.Black {
			capSq = target - 8
			capPawn = types.WP
		}
		p.PieceBb[capPawn] = p.PieceBb[capPawn].Clear(capSq)
		p.Hash ^= zobrist.Piece[capPawn][capSq]
	}

	if p.Ep != types.NoSquare {
		p.Hash ^= zobrist.EnPassant[p.Ep]
	}
	p.Ep = types.NoSquare

	if m.IsDouble() {
		epSq := types.Square((int(source) + int(target)) / 2)
		p.Ep = epSq
		p.Hash ^= zobrist.EnPassant[epSq]
	}

	if m.IsCastle() {
		rm := castleRookMoves[target]
		p.PieceBb[rm.rook] = p.PieceBb[rm.rook].Clear(rm.from).Set(rm.to)
		p.Hash ^= zobrist.Piece[rm.rook][rm.from] ^ zobrist.Piece[rm.rook][rm.to]
	}

	p.Hash ^= zobrist.Castle[p.Castle]
	p.Castle &= types.CastlingRights[source] & types.CastlingRights[target]
	p.Hash ^= zobrist.Castle[p.Castle]

	p.updateOcc()

	p.Side = p.Side.Other()
	p.Hash ^= zobrist.Side

	if assert.DEBUG {
		assert.Assert(p.Hash == zobrist.KeyFromScratch(p.PieceBb, p.Side, p.Castle, p.Ep),
			"incremental hash diverged from from-scratch Zobrist key after Make(%s)", m.String())
	}

	if p.IsSquareAttacked(p.KingSquare(mover), p.Side) {
		return false
	}
	return true
}
