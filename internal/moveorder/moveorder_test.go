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

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcbound/bitknight/internal/movegen"
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/types"
)

// A white pawn on e4 facing a black pawn on d5: one capture (exd5) among
// quiet pawn and king moves.
const captureFEN = "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"

func TestCapturesSortBeforeQuietMoves(t *testing.T) {
	p, err := position.FromFEN(captureFEN)
	assert.NoError(t, err)
	var list types.MoveList
	movegen.Generate(p, false, &list)

	var tables Tables
	armed := false
	tables.Score(&list, p, 0, types.NoMove, &armed)

	first := list.At(0)
	assert.True(t, first.IsCapture())
	assert.Equal(t, types.E4, first.Source())
	assert.Equal(t, types.D5, first.Target())
}

func TestPVMoveSortsFirstAndDisarms(t *testing.T) {
	p, err := position.FromFEN(captureFEN)
	assert.NoError(t, err)
	var list types.MoveList
	movegen.Generate(p, false, &list)

	// Pick a quiet king move as the "PV move"; armed PV scoring must put
	// it ahead of even the capture, then disarm itself.
	pvMove := types.NewMove(types.E1, types.D1, types.WK, types.PieceNone, false, false, false, false)
	var tables Tables
	armed := true
	tables.Score(&list, p, 0, pvMove, &armed)

	assert.Equal(t, pvMove, list.At(0))
	assert.False(t, armed)
}

func TestKillersSortBetweenCapturesAndQuiets(t *testing.T) {
	p, err := position.FromFEN(captureFEN)
	assert.NoError(t, err)
	var list types.MoveList
	movegen.Generate(p, false, &list)

	killer := types.NewMove(types.E1, types.F1, types.WK, types.PieceNone, false, false, false, false)
	var tables Tables
	tables.RecordBetaCutoff(3, killer)
	armed := false
	tables.Score(&list, p, 3, types.NoMove, &armed)

	// exd5 scores 10105; the four other king steps score 10000 (history 0
	// plus the king's material value) and so precede the killer (9000);
	// the quiet pawn push e5 (100) follows it.
	assert.True(t, list.At(0).IsCapture())
	assert.Equal(t, killer, list.At(5))
}

func TestRecordBetaCutoffIgnoresCaptures(t *testing.T) {
	capture := types.NewMove(types.E4, types.D5, types.WP, types.PieceNone, true, false, false, false)
	var tables Tables
	tables.RecordBetaCutoff(0, capture)
	assert.Equal(t, types.NoMove, tables.Killer[0][0])
}

func TestRecordBetaCutoffShiftsKillers(t *testing.T) {
	m1 := types.NewMove(types.G1, types.F3, types.WN, types.PieceNone, false, false, false, false)
	m2 := types.NewMove(types.B1, types.C3, types.WN, types.PieceNone, false, false, false, false)
	var tables Tables
	tables.RecordBetaCutoff(0, m1)
	tables.RecordBetaCutoff(0, m2)
	assert.Equal(t, m2, tables.Killer[0][0])
	assert.Equal(t, m1, tables.Killer[1][0])
}

func TestRecordImprovementBumpsHistoryByDepth(t *testing.T) {
	quiet := types.NewMove(types.G1, types.F3, types.WN, types.PieceNone, false, false, false, false)
	var tables Tables
	tables.RecordImprovement(quiet, 5)
	tables.RecordImprovement(quiet, 3)
	assert.Equal(t, 8, tables.History[types.WN][types.F3])
}

func TestMvvLvaPrefersValuableVictims(t *testing.T) {
	// Pawn takes queen must outrank queen takes pawn.
	assert.Greater(t, MvvLva[types.Pawn][types.Queen], MvvLva[types.Queen][types.Pawn])
}
