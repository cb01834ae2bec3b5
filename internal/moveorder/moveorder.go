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

// Package moveorder scores pseudo-legal moves before a node searches them:
// the principal variation move first, then captures by MVV-LVA, then
// killers, then quiet moves by history score plus the moving piece's
// signed material value (so a white king's quiet moves, at 10000, sort
// ahead of the killers). Killer and history
// tables are per-search state owned by the caller (package search) and
// passed in by reference so a fresh search starts with empty tables.
package moveorder

import (
	"github.com/arcbound/bitknight/internal/config"
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/types"
)

// Score values for the non-capture, non-history tiers; captures and
// history scores are added on top of material so everything sorts on one
// scale.
const (
	pvScore      = 20000
	captureBase  = 10000
	killer1Score = 9000
	killer2Score = 8000
)

// MvvLva[attacker][victim] is the fixed Most-Valuable-Victim /
// Least-Valuable-Attacker table, indexed by piece type (0=Pawn..5=King)
// independent of color.
var MvvLva = [6][6]int{
	{105, 205, 305, 405, 505, 605},
	{104, 204, 304, 404, 504, 604},
	{103, 203, 303, 403, 503, 603},
	{102, 202, 302, 402, 502, 602},
	{101, 201, 301, 401, 501, 601},
	{100, 200, 300, 400, 500, 600},
}

// Killers holds, per ply, the two most recent quiet moves that caused a
// beta cutoff.
type Killers [2][types.MaxPly]types.Move

// History holds, per (piece, target square), a counter incremented on
// alpha-raising quiet moves.
type History [12][64]int

// Tables bundles the per-search move-ordering state. The zero value is
// ready to use (an empty search history).
type Tables struct {
	Killer  Killers
	History History
}

// RecordBetaCutoff shifts killers for ply when a quiet move causes a beta
// cutoff. Captures are never recorded as killers; they already sort
// ahead of quiet moves via MVV-LVA.
func (t *Tables) RecordBetaCutoff(ply int, m types.Move) {
	if m.IsCapture() || !config.Settings.Search.UseKiller {
		return
	}
	if t.Killer[0][ply] != m {
		t.Killer[1][ply] = t.Killer[0][ply]
		t.Killer[0][ply] = m
	}
}

// RecordImprovement bumps the history score of a quiet move that raised
// alpha without causing a cutoff.
func (t *Tables) RecordImprovement(m types.Move, depth int) {
	if !m.IsCapture() && config.Settings.Search.UseHistory {
		t.History[m.Piece()][m.Target()] += depth
	}
}

// victimAt returns the piece type of whatever p has on sq, used to look
// up the MVV-LVA table for a capture.
func victimAt(p *position.Position, sq types.Square) types.PieceType {
	bit := sq.Bb()
	for pc := types.WP; pc <= types.BK; pc++ {
		if p.PieceBb[pc]&bit != 0 {
			return pc.PieceType()
		}
	}
	return types.Pawn
}

// Score assigns an ordering score to every move in list. pvMove is
// pv[0][ply] when pvFollow is armed; on a match PV-scoring fires once.
func (t *Tables) Score(list *types.MoveList, p *position.Position, ply int, pvMove types.Move, pvScoringArmed *bool) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		switch {
		case *pvScoringArmed && m == pvMove:
			list.SetScore(i, pvScore)
			*pvScoringArmed = false
		case m.IsCapture():
			attacker := m.Piece().PieceType()
			var victim types.PieceType
			if m.IsEnPassant() {
				victim = types.Pawn
			} else {
				victim = victimAt(p, m.Target())
			}
			list.SetScore(i, MvvLva[attacker][victim]+captureBase)
		case m == t.Killer[0][ply]:
			list.SetScore(i, killer1Score)
		case m == t.Killer[1][ply]:
			list.SetScore(i, killer2Score)
		default:
			list.SetScore(i, t.History[m.Piece()][m.Target()]+m.Piece().Value())
		}
	}
	list.Sort()
}
