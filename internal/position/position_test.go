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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcbound/bitknight/internal/types"
	"github.com/arcbound/bitknight/internal/zobrist"
)

func (p *Position) assertInvariants(t *testing.T) {
	t.Helper()
	assert.Zero(t, p.Occ[types.White]&p.Occ[types.Black])
	assert.Equal(t, p.Occ[types.White]|p.Occ[types.Black], p.Occ[2])
	fresh := zobrist.KeyFromScratch(p.PieceBb, p.Side, p.Castle, p.Ep)
	assert.Equal(t, fresh, p.Hash)
}

func TestStartPositionFEN(t *testing.T) {
	p := New()
	p.assertInvariants(t)
	assert.Equal(t, StartFEN, p.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := FromFEN(fen)
	assert.NoError(t, err)
	p.assertInvariants(t)
	assert.Equal(t, fen, p.FEN())
}

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	p := New()
	before := *p
	m := types.NewMove(types.E2, types.E4, types.WP, types.PieceNone, false, true, false, false)
	ok := p.Make(m, false)
	assert.True(t, ok)
	p.assertInvariants(t)
	assert.NotEqual(t, before, *p)
	*p = before
	assert.Equal(t, before, *p)
}

func TestEnPassantCapture(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	m := types.NewMove(types.E5, types.D6, types.WP, types.PieceNone, true, false, true, false)
	ok := p.Make(m, false)
	assert.True(t, ok)
	p.assertInvariants(t)
	assert.False(t, p.PieceBb[types.BP].Has(types.D5))
	assert.True(t, p.PieceBb[types.WP].Has(types.D6))
}

func TestCastlingMovesRook(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	m := types.NewMove(types.E1, types.G1, types.WK, types.PieceNone, false, false, false, true)
	ok := p.Make(m, false)
	assert.True(t, ok)
	p.assertInvariants(t)
	assert.True(t, p.PieceBb[types.WR].Has(types.F1))
	assert.False(t, p.PieceBb[types.WR].Has(types.H1))
}

func TestIllegalMoveLeavingKingInCheckIsRejected(t *testing.T) {
	p, err := FromFEN("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	// The king is in check along the open e-file; stepping to e2 stays on
	// that file and remains in check, so Make must reject it.
	m := types.NewMove(types.E1, types.E2, types.WK, types.PieceNone, false, false, false, false)
	snapshot := *p
	ok := p.Make(m, false)
	if !ok {
		*p = snapshot
	}
	assert.False(t, ok)
}
