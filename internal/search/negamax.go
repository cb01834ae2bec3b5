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

package search

import (
	"github.com/arcbound/bitknight/internal/config"
	"github.com/arcbound/bitknight/internal/eval"
	"github.com/arcbound/bitknight/internal/movegen"
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/tt"
	"github.com/arcbound/bitknight/internal/types"
	"github.com/arcbound/bitknight/internal/zobrist"
)

// quiescence resolves tactical noise (captures only) to a stable
// static-evaluation horizon, so negamax never has to evaluate a position
// with a hanging capture sitting on the board.
func (e *Engine) quiescence(pos *position.Position, alpha, beta, ply int) int {
	e.nodes++
	e.pollIfDue()

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list types.MoveList
	movegen.Generate(pos, true, &list)
	armed := false
	e.order.Score(&list, pos, ply, types.NoMove, &armed)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		snapshot := *pos
		if !pos.Make(m, true) {
			*pos = snapshot
			continue
		}
		score := -e.quiescence(pos, -beta, -alpha, ply+1)
		*pos = snapshot
		if e.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// negamax searches to depth plies from the current node, returning a
// score from the side-to-move's perspective.
func (e *Engine) negamax(pos *position.Position, alpha, beta, depth, ply int) int {
	e.pvLength[ply] = ply

	if depth <= 0 {
		return e.quiescence(pos, alpha, beta, ply)
	}
	if ply >= types.MaxPly-1 {
		return eval.Evaluate(pos)
	}

	e.nodes++
	e.pollIfDue()

	inCheck := pos.InCheck()
	if inCheck {
		depth++
	}

	cfg := config.Settings.Search

	if cfg.UseTT && ply > 0 {
		if score, ok := e.tt.Probe(pos.Hash, alpha, beta, depth); ok {
			return score
		}
	}

	if cfg.UseNullMove && depth >= cfg.NullMoveDepth && !inCheck && ply > 0 {
		snapshot := *pos
		pos.Side = pos.Side.Other()
		if pos.Ep != types.NoSquare {
			pos.Hash ^= zobrist.EnPassant[pos.Ep]
			pos.Ep = types.NoSquare
		}
		pos.Hash ^= zobrist.Side
		score := -e.negamax(pos, -beta, -beta+1, depth-1-cfg.NullMoveReduction, ply+1)
		*pos = snapshot
		if e.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	var list types.MoveList
	movegen.Generate(pos, false, &list)

	pvMove := types.NoMove
	if e.pvFollow {
		found := false
		for i := 0; i < list.Len(); i++ {
			if list.At(i) == e.pv[0][ply] {
				pvMove = e.pv[0][ply]
				e.pvScore = true
				found = true
				break
			}
		}
		if !found {
			e.pvFollow = false
		}
	}
	e.order.Score(&list, pos, ply, pvMove, &e.pvScore)

	alphaOrig := alpha
	legalMoves := 0
	movesSearched := 0

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		snapshot := *pos
		if !pos.Make(m, false) {
			*pos = snapshot
			continue
		}
		legalMoves++

		var score int
		if movesSearched == 0 {
			score = -e.negamax(pos, -beta, -alpha, depth-1, ply+1)
		} else {
			reducedOk := alpha + 1
			if cfg.UseLMR && movesSearched >= cfg.LMRMinMoveSearched && depth >= cfg.LMRMinDepth &&
				!inCheck && !m.IsCapture() && m.Promoted() == types.PieceNone {
				reducedOk = -e.negamax(pos, -alpha-1, -alpha, depth-2, ply+1)
			}
			score = reducedOk
			if score > alpha {
				score = -e.negamax(pos, -alpha-1, -alpha, depth-1, ply+1)
				if score > alpha && score < beta {
					score = -e.negamax(pos, -beta, -alpha, depth-1, ply+1)
				}
			}
		}
		movesSearched++
		*pos = snapshot

		if e.stopped {
			return 0
		}

		if score >= beta {
			e.order.RecordBetaCutoff(ply, m)
			if cfg.UseTT {
				e.tt.Store(pos.Hash, depth, tt.Beta, beta)
			}
			return beta
		}
		if score > alpha {
			alpha = score
			e.order.RecordImprovement(m, depth)
			e.pv[ply][ply] = m
			copy(e.pv[ply][ply+1:e.pvLength[ply+1]], e.pv[ply+1][ply+1:e.pvLength[ply+1]])
			e.pvLength[ply] = e.pvLength[ply+1]
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -types.MateScore + ply
		}
		return 0
	}

	flag := tt.Alpha
	if alpha > alphaOrig {
		flag = tt.Exact
	}
	if cfg.UseTT {
		e.tt.Store(pos.Hash, depth, flag, alpha)
	}
	return alpha
}
