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

// Package movegen produces pseudo-legal moves for the side to move.
// Legality (not leaving one's own king in check) is filtered later, by
// position.Position.Make.
package movegen

import (
	"github.com/arcbound/bitknight/internal/attacks"
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/types"
)

// Generate fills list with pseudo-legal moves for p's side to move, in
// the fixed order pawns, castling, knights, bishops, rooks, queens, king.
// When capturesOnly is set, quiet pawn pushes, quiet piece moves and
// castling are skipped; only captures, en-passant and capturing
// promotions are produced.
func Generate(p *position.Position, capturesOnly bool, list *types.MoveList) {
	list.Clear()
	genPawns(p, capturesOnly, list)
	if !capturesOnly {
		genCastling(p, list)
	}
	genKnights(p, capturesOnly, list)
	genSlider(p, types.Bishop, capturesOnly, list)
	genSlider(p, types.Rook, capturesOnly, list)
	genSlider(p, types.Queen, capturesOnly, list)
	genKing(p, capturesOnly, list)
}

var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

func genPawns(p *position.Position, capturesOnly bool, list *types.MoveList) {
	side := p.Side
	pawn := types.MakePiece(side, types.Pawn)
	pawns := p.PieceBb[pawn]
	forward, startRank, promoRank := -8, 6, 0
	if side == types.Black {
		forward, startRank, promoRank = 8, 1, 7
	}

	for bb := pawns; bb != 0; {
		src := bb.PopLsb()

		if !capturesOnly {
			target := types.Square(int(src) + forward)
			if target.Valid() && p.Occ[2]&target.Bb() == 0 {
				if target.Rank() == promoRank {
					for _, pt := range promotionPieces {
						emit(list, src, target, pawn, types.MakePiece(side, pt), false, false, false, false)
					}
				} else {
					emit(list, src, target, pawn, types.PieceNone, false, false, false, false)
					if src.Rank() == startRank {
						target2 := types.Square(int(src) + 2*forward)
						if p.Occ[2]&target2.Bb() == 0 {
							emit(list, src, target2, pawn, types.PieceNone, false, true, false, false)
						}
					}
				}
			}
		}

		captures := attacks.PawnAtt[side][src] & p.Occ[side.Other()]
		for c := captures; c != 0; {
			target := c.PopLsb()
			if target.Rank() == promoRank {
				for _, pt := range promotionPieces {
					emit(list, src, target, pawn, types.MakePiece(side, pt), true, false, false, false)
				}
			} else {
				emit(list, src, target, pawn, types.PieceNone, true, false, false, false)
			}
		}

		if p.Ep != types.NoSquare && attacks.PawnAtt[side][src].Has(p.Ep) {
			emit(list, src, p.Ep, pawn, types.PieceNone, true, false, true, false)
		}
	}
}

func genCastling(p *position.Position, list *types.MoveList) {
	occ := p.Occ[2]
	if p.Side == types.White {
		if p.Castle&types.CastleWK != 0 &&
			occ&(types.F1.Bb()|types.G1.Bb()) == 0 &&
			!p.IsSquareAttacked(types.E1, types.Black) && !p.IsSquareAttacked(types.F1, types.Black) {
			emit(list, types.E1, types.G1, types.WK, types.PieceNone, false, false, false, true)
		}
		if p.Castle&types.CastleWQ != 0 &&
			occ&(types.D1.Bb()|types.C1.Bb()|types.B1.Bb()) == 0 &&
			!p.IsSquareAttacked(types.E1, types.Black) && !p.IsSquareAttacked(types.D1, types.Black) {
			emit(list, types.E1, types.C1, types.WK, types.PieceNone, false, false, false, true)
		}
	} else {
		if p.Castle&types.CastleBK != 0 &&
			occ&(types.F8.Bb()|types.G8.Bb()) == 0 &&
			!p.IsSquareAttacked(types.E8, types.White) && !p.IsSquareAttacked(types.F8, types.White) {
			emit(list, types.E8, types.G8, types.BK, types.PieceNone, false, false, false, true)
		}
		if p.Castle&types.CastleBQ != 0 &&
			occ&(types.D8.Bb()|types.C8.Bb()|types.B8.Bb()) == 0 &&
			!p.IsSquareAttacked(types.E8, types.White) && !p.IsSquareAttacked(types.D8, types.White) {
			emit(list, types.E8, types.C8, types.BK, types.PieceNone, false, false, false, true)
		}
	}
}

func genKnights(p *position.Position, capturesOnly bool, list *types.MoveList) {
	piece := types.MakePiece(p.Side, types.Knight)
	own := p.Occ[p.Side]
	enemy := p.Occ[p.Side.Other()]
	for bb := p.PieceBb[piece]; bb != 0; {
		src := bb.PopLsb()
		targets := attacks.KnightAtt[src] &^ own
		genTargets(list, src, piece, targets, enemy, capturesOnly)
	}
}

func genKing(p *position.Position, capturesOnly bool, list *types.MoveList) {
	piece := types.MakePiece(p.Side, types.King)
	own := p.Occ[p.Side]
	enemy := p.Occ[p.Side.Other()]
	src := p.PieceBb[piece].LsbIndex()
	targets := attacks.KingAtt[src] &^ own
	genTargets(list, src, piece, targets, enemy, capturesOnly)
}

func genSlider(p *position.Position, pt types.PieceType, capturesOnly bool, list *types.MoveList) {
	piece := types.MakePiece(p.Side, pt)
	own := p.Occ[p.Side]
	enemy := p.Occ[p.Side.Other()]
	for bb := p.PieceBb[piece]; bb != 0; {
		src := bb.PopLsb()
		var att types.Bb
		switch pt {
		case types.Bishop:
			att = attacks.BishopAttacks(src, p.Occ[2])
		case types.Rook:
			att = attacks.RookAttacks(src, p.Occ[2])
		case types.Queen:
			att = attacks.QueenAttacks(src, p.Occ[2])
		}
		genTargets(list, src, piece, att&^own, enemy, capturesOnly)
	}
}

func genTargets(list *types.MoveList, src types.Square, piece types.Piece, targets, enemy types.Bb, capturesOnly bool) {
	for bb := targets; bb != 0; {
		target := bb.PopLsb()
		isCapture := enemy.Has(target)
		if capturesOnly && !isCapture {
			continue
		}
		emit(list, src, target, piece, types.PieceNone, isCapture, false, false, false)
	}
}

func emit(list *types.MoveList, src, target types.Square, piece, promoted types.Piece, capture, double, ep, castle bool) {
	list.Add(types.NewMove(src, target, piece, promoted, capture, double, ep, castle))
}
