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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcbound/bitknight/internal/eval"
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/types"
)

func TestSearchStartPositionReturnsLegalLookingMove(t *testing.T) {
	e := NewEngine()
	pos := position.New()
	m := e.Search(pos, Limits{Depth: 3}, nil, nil)
	assert.NotEqual(t, types.NoMove, m)
	assert.True(t, m.Source().Valid())
	assert.True(t, m.Target().Valid())
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Back-rank mate: the black king is boxed in by its own pawns, and
	// Re1-e8 is the only mating move.
	p, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	assert.NoError(t, err)
	e := NewEngine()
	e.Search(p, Limits{Depth: 2}, nil, nil)
	pv := e.collectPV()
	assert.NotEmpty(t, pv)
	mate := pv[0]
	assert.Equal(t, types.E1, mate.Source())
	assert.Equal(t, types.E8, mate.Target())
}

func TestSearchRespectsExplicitDepthLimit(t *testing.T) {
	e := NewEngine()
	pos := position.New()
	var lastDepth int
	e.Search(pos, Limits{Depth: 2}, nil, func(i Info) {
		lastDepth = i.Depth
	})
	assert.Equal(t, 2, lastDepth)
}

func TestNegamaxScoresStalemateAsDraw(t *testing.T) {
	// Black to move has no legal moves and is not in check.
	p, err := position.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	e := NewEngine()
	assert.Zero(t, e.negamax(p, -infinity, infinity, 1, 0))
}

func TestNegamaxScoresMateRelativeToPly(t *testing.T) {
	// Black to move is checkmated on the spot.
	p, err := position.FromFEN("R5k1/5ppp/8/8/8/8/8/7K b - - 0 1")
	assert.NoError(t, err)
	e := NewEngine()
	score := e.negamax(p, -infinity, infinity, 1, 0)
	assert.LessOrEqual(t, score, -types.MateScore+types.MaxPly)
}

func TestQuiescenceNeverReturnsWorseThanStandPat(t *testing.T) {
	e := NewEngine()
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.NoError(t, err)
	score := e.quiescence(p, -50000, 50000, 0)
	assert.GreaterOrEqual(t, score, eval.Evaluate(p))
}
