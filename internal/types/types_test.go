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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopLsbWalksBitsLowToHigh(t *testing.T) {
	b := A1.Bb() | E4.Bb() | H8.Bb()
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, H8, b.PopLsb())
	assert.Equal(t, E4, b.PopLsb())
	assert.Equal(t, A1, b.PopLsb())
	assert.Equal(t, Empty, b)
}

func TestSquareNumberingIsRankMajorFromA8(t *testing.T) {
	assert.Equal(t, Square(0), A8)
	assert.Equal(t, Square(63), H1)
	assert.Equal(t, "e4", E4.String())
	sq, err := SquareFromString("e4")
	assert.NoError(t, err)
	assert.Equal(t, E4, sq)
	_, err = SquareFromString("i9")
	assert.Error(t, err)
}

func TestMirrorRankFlipsBoardVertically(t *testing.T) {
	assert.Equal(t, A1, A8.MirrorRank())
	assert.Equal(t, E5, E4.MirrorRank())
}

func TestMoveEncodesAllFields(t *testing.T) {
	m := NewMove(E7, E8, WP, WQ, true, false, false, false)
	assert.Equal(t, E7, m.Source())
	assert.Equal(t, E8, m.Target())
	assert.Equal(t, WP, m.Piece())
	assert.Equal(t, WQ, m.Promoted())
	assert.True(t, m.IsCapture())
	assert.False(t, m.IsDouble())
	assert.Equal(t, "e7e8q", m.String())
}

func TestMoveWithoutPromotionReportsPieceNone(t *testing.T) {
	m := NewMove(G1, F3, WN, PieceNone, false, false, false, false)
	assert.Equal(t, PieceNone, m.Promoted())
	assert.Equal(t, "g1f3", m.String())
}

func TestMoveListSortsDescendingByScore(t *testing.T) {
	var l MoveList
	a := NewMove(E2, E4, WP, PieceNone, false, true, false, false)
	b := NewMove(D2, D4, WP, PieceNone, false, true, false, false)
	c := NewMove(G1, F3, WN, PieceNone, false, false, false, false)
	l.Add(a)
	l.Add(b)
	l.Add(c)
	l.SetScore(0, 10)
	l.SetScore(1, 30)
	l.SetScore(2, 20)
	l.Sort()
	assert.Equal(t, b, l.At(0))
	assert.Equal(t, c, l.At(1))
	assert.Equal(t, a, l.At(2))
}

func TestPieceValueIsSignedByColor(t *testing.T) {
	assert.Equal(t, 100, WP.Value())
	assert.Equal(t, -100, BP.Value())
	assert.Equal(t, 1000, WQ.Value())
	assert.Equal(t, Black, BQ.Color())
	assert.Equal(t, Queen, BQ.PieceType())
	assert.Equal(t, BQ, MakePiece(Black, Queen))
}
