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

// Package eval computes a static material-plus-piece-square-table score
// for a position, from the side-to-move's perspective. There is no
// tunable configuration: tables are fixed, matching the reference engine
// exactly, with no midgame/endgame taper.
package eval

import (
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/types"
)

var pawnTable = [64]int{
	90, 90, 90, 90, 90, 90, 90, 90,
	30, 30, 30, 40, 40, 30, 30, 30,
	20, 20, 20, 30, 30, 30, 20, 20,
	10, 10, 10, 20, 20, 10, 10, 10,
	5, 5, 10, 20, 20, 5, 5, 5,
	0, 0, 0, 5, 5, 0, 0, 0,
	0, 0, 0, -10, -10, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 10, 10, 0, 0, -5,
	-5, 5, 20, 20, 20, 20, 5, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 5, 20, 10, 10, 20, 5, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, -10, 0, 0, 0, 0, -10, -5,
}

var bishopTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 10, 10, 0, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 10, 0, 0, 0, 0, 10, 0,
	0, 30, 0, 0, 0, 0, 30, 0,
	0, 0, -10, 0, 0, -10, 0, 0,
}

var rookTable = [64]int{
	50, 50, 50, 50, 50, 50, 50, 50,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 0, 20, 20, 0, 0, 0,
}

var kingTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 5, 5, 10, 10, 5, 5, 0,
	0, 5, 10, 20, 20, 10, 5, 0,
	0, 5, 10, 20, 20, 10, 5, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 5, 5, -5, -5, 0, 5, 0,
	0, 0, 5, 0, -15, 0, 10, 0,
}

func pstFor(pt types.PieceType) *[64]int {
	switch pt {
	case types.Pawn:
		return &pawnTable
	case types.Knight:
		return &knightTable
	case types.Bishop:
		return &bishopTable
	case types.Rook:
		return &rookTable
	case types.King:
		return &kingTable
	default:
		return nil // queen has no table, matching the reference engine
	}
}

// pstValue returns the piece-square bonus for piece p standing on sq.
// White reads its own tables directly; black reads the white tables
// mirrored by rank, since all tables above are white-oriented.
func pstValue(p types.Piece, sq types.Square) int {
	table := pstFor(p.PieceType())
	if table == nil {
		return 0
	}
	if p.Color() == types.Black {
		return table[sq.MirrorRank()]
	}
	return table[sq]
}

// Evaluate returns the position's score from the perspective of the side
// to move: positive means that side is better.
func Evaluate(p *position.Position) int {
	var white, black int
	for piece := types.WP; piece <= types.WK; piece++ {
		for bb := p.PieceBb[piece]; bb != 0; {
			sq := bb.PopLsb()
			white += types.MaterialValue[piece.PieceType()] + pstValue(piece, sq)
		}
	}
	for piece := types.BP; piece <= types.BK; piece++ {
		for bb := p.PieceBb[piece]; bb != 0; {
			sq := bb.PopLsb()
			black += types.MaterialValue[piece.PieceType()] + pstValue(piece, sq)
		}
	}
	score := white - black
	if p.Side == types.Black {
		return -score
	}
	return score
}
