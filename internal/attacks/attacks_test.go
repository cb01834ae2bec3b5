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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcbound/bitknight/internal/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	// a8 knight attacks only b6 and c7.
	att := KnightAtt[types.A8]
	assert.EqualValues(t, 2, att.PopCount())
	assert.True(t, att.Has(types.B6))
	assert.True(t, att.Has(types.C7))
}

func TestKingAttacksCenter(t *testing.T) {
	att := KingAtt[types.E4]
	assert.EqualValues(t, 8, att.PopCount())
}

func TestPawnAttacksDirection(t *testing.T) {
	// white pawn on e4 attacks d5 and f5 (toward rank 8, i.e. lower index).
	att := PawnAtt[types.White][types.E4]
	assert.True(t, att.Has(types.D5))
	assert.True(t, att.Has(types.F5))
	// black pawn on e5 attacks d4 and f4.
	att = PawnAtt[types.Black][types.E5]
	assert.True(t, att.Has(types.D4))
	assert.True(t, att.Has(types.F4))
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	att := RookAttacks(types.A1, types.Empty)
	assert.EqualValues(t, 14, att.PopCount())
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	att := BishopAttacks(types.D4, types.Empty)
	assert.EqualValues(t, 13, att.PopCount())
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := types.D4.Bb() | types.D6.Bb()
	att := RookAttacks(types.D4, occ)
	assert.True(t, att.Has(types.D5))
	assert.True(t, att.Has(types.D6))
	assert.False(t, att.Has(types.D7))
}

func TestQueenAttacksIsUnion(t *testing.T) {
	occ := types.Empty
	q := QueenAttacks(types.D4, occ)
	b := BishopAttacks(types.D4, occ)
	r := RookAttacks(types.D4, occ)
	assert.Equal(t, b|r, q)
}
