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

// Package attacks precomputes every attack lookup the move generator and
// search need: leaper tables for pawns, knights and kings, and
// magic-bitboard tables for bishops and rooks. Everything here is
// immutable and safe for concurrent readers once package init has run.
package attacks

import (
	"fmt"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/arcbound/bitknight/internal/types"
)

// Leaper attack tables, indexed [color][square] for pawns and [square] for
// knights and kings.
var (
	PawnAtt   [2][64]types.Bb
	KnightAtt [64]types.Bb
	KingAtt   [64]types.Bb
)

// RelevantBitsRook and RelevantBitsBishop give, per square, the number of
// bits in the relevant-occupancy mask for that slider.
var RelevantBitsRook = [64]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var RelevantBitsBishop = [64]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var (
	bishopMask  [64]types.Bb
	rookMask    [64]types.Bb
	bishopMagic [64]uint64
	rookMagic   [64]uint64
	bishopTable [64][]types.Bb
	rookTable   [64][]types.Bb
)

func maskPawnAttacks(side types.Color, sq types.Square) types.Bb {
	b := sq.Bb()
	var att types.Bb
	if side == types.White {
		if (b>>7)&types.NotFileA != 0 {
			att |= b >> 7
		}
		if (b>>9)&types.NotFileH != 0 {
			att |= b >> 9
		}
	} else {
		if (b<<7)&types.NotFileH != 0 {
			att |= b << 7
		}
		if (b<<9)&types.NotFileA != 0 {
			att |= b << 9
		}
	}
	return att
}

func maskKnightAttacks(sq types.Square) types.Bb {
	b := sq.Bb()
	var att types.Bb
	if (b>>17)&types.NotFileH != 0 {
		att |= b >> 17
	}
	if (b>>15)&types.NotFileA != 0 {
		att |= b >> 15
	}
	if (b>>10)&types.NotFileGH != 0 {
		att |= b >> 10
	}
	if (b>>6)&types.NotFileAB != 0 {
		att |= b >> 6
	}
	if (b<<17)&types.NotFileA != 0 {
		att |= b << 17
	}
	if (b<<15)&types.NotFileH != 0 {
		att |= b << 15
	}
	if (b<<10)&types.NotFileAB != 0 {
		att |= b << 10
	}
	if (b<<6)&types.NotFileGH != 0 {
		att |= b << 6
	}
	return att
}

func maskKingAttacks(sq types.Square) types.Bb {
	b := sq.Bb()
	var att types.Bb
	if b>>8 != 0 {
		att |= b >> 8
	}
	if (b>>9)&types.NotFileH != 0 {
		att |= b >> 9
	}
	if (b>>7)&types.NotFileA != 0 {
		att |= b >> 7
	}
	if (b>>1)&types.NotFileH != 0 {
		att |= b >> 1
	}
	if b<<8 != 0 {
		att |= b << 8
	}
	if (b<<9)&types.NotFileA != 0 {
		att |= b << 9
	}
	if (b<<7)&types.NotFileH != 0 {
		att |= b << 7
	}
	if (b<<1)&types.NotFileA != 0 {
		att |= b << 1
	}
	return att
}

func maskBishopAttacks(sq types.Square) types.Bb {
	var att types.Bb
	tr, tf := sq.Rank(), sq.File()
	for r, f := tr+1, tf+1; r <= 6 && f <= 6; r, f = r+1, f+1 {
		att |= types.Bb(1) << uint(r*8+f)
	}
	for r, f := tr-1, tf+1; r >= 1 && f <= 6; r, f = r-1, f+1 {
		att |= types.Bb(1) << uint(r*8+f)
	}
	for r, f := tr+1, tf-1; r <= 6 && f >= 1; r, f = r+1, f-1 {
		att |= types.Bb(1) << uint(r*8+f)
	}
	for r, f := tr-1, tf-1; r >= 1 && f >= 1; r, f = r-1, f-1 {
		att |= types.Bb(1) << uint(r*8+f)
	}
	return att
}

func maskRookAttacks(sq types.Square) types.Bb {
	var att types.Bb
	tr, tf := sq.Rank(), sq.File()
	for r := tr + 1; r <= 6; r++ {
		att |= types.Bb(1) << uint(r*8+tf)
	}
	for r := tr - 1; r >= 1; r-- {
		att |= types.Bb(1) << uint(r*8+tf)
	}
	for f := tf + 1; f <= 6; f++ {
		att |= types.Bb(1) << uint(tr*8+f)
	}
	for f := tf - 1; f >= 1; f-- {
		att |= types.Bb(1) << uint(tr*8+f)
	}
	return att
}

func bishopAttacksOnTheFly(sq types.Square, block types.Bb) types.Bb {
	var att types.Bb
	tr, tf := sq.Rank(), sq.File()
	for r, f := tr+1, tf+1; r <= 7 && f <= 7; r, f = r+1, f+1 {
		bit := types.Bb(1) << uint(r*8+f)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	for r, f := tr-1, tf+1; r >= 0 && f <= 7; r, f = r-1, f+1 {
		bit := types.Bb(1) << uint(r*8+f)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	for r, f := tr+1, tf-1; r <= 7 && f >= 0; r, f = r+1, f-1 {
		bit := types.Bb(1) << uint(r*8+f)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	for r, f := tr-1, tf-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
		bit := types.Bb(1) << uint(r*8+f)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	return att
}

func rookAttacksOnTheFly(sq types.Square, block types.Bb) types.Bb {
	var att types.Bb
	tr, tf := sq.Rank(), sq.File()
	for r := tr + 1; r <= 7; r++ {
		bit := types.Bb(1) << uint(r*8+tf)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	for r := tr - 1; r >= 0; r-- {
		bit := types.Bb(1) << uint(r*8+tf)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	for f := tf + 1; f <= 7; f++ {
		bit := types.Bb(1) << uint(tr*8+f)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	for f := tf - 1; f >= 0; f-- {
		bit := types.Bb(1) << uint(tr*8+f)
		att |= bit
		if bit&block != 0 {
			break
		}
	}
	return att
}

// setOccupancy reconstructs the index-th subset of the bits in mask.
func setOccupancy(index, bitsInMask int, mask types.Bb) types.Bb {
	var occ types.Bb
	for count := 0; count < bitsInMask; count++ {
		sq := mask.LsbIndex()
		mask &= mask - 1
		if index&(1<<uint(count)) != 0 {
			occ |= sq.Bb()
		}
	}
	return occ
}

// magicRandom is an independent xorshift32 stream seeded identically to
// the Zobrist key generator (same documented seed, different purpose), so
// magic-number search is reproducible run to run without needing to share
// state with package zobrist.
type magicRandom struct{ state uint32 }

func newMagicRandom() *magicRandom { return &magicRandom{state: 1804289383} }

func (r *magicRandom) next32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *magicRandom) next64() uint64 {
	n1 := uint64(r.next32()) & 0xFFFF
	n2 := uint64(r.next32()) & 0xFFFF
	n3 := uint64(r.next32()) & 0xFFFF
	n4 := uint64(r.next32()) & 0xFFFF
	return n1 | n2<<16 | n3<<32 | n4<<48
}

func (r *magicRandom) candidate() uint64 {
	return r.next64() & r.next64() & r.next64()
}

// findMagicNumber searches for a magic multiplier that hashes every
// occupancy subset of mask to a distinct slot without collision, trying
// up to 10^8 candidates as the reference generator does.
func findMagicNumber(sq types.Square, relevantBits int, bishop bool) uint64 {
	mask := bishopMask[sq]
	if !bishop {
		mask = rookMask[sq]
	}
	occIndices := 1 << uint(relevantBits)
	occupancies := make([]types.Bb, occIndices)
	attacksOf := make([]types.Bb, occIndices)
	for i := 0; i < occIndices; i++ {
		occupancies[i] = setOccupancy(i, relevantBits, mask)
		if bishop {
			attacksOf[i] = bishopAttacksOnTheFly(sq, occupancies[i])
		} else {
			attacksOf[i] = rookAttacksOnTheFly(sq, occupancies[i])
		}
	}

	rnd := newMagicRandom()
	used := make([]types.Bb, occIndices)
	for try := 0; try < 100_000_000; try++ {
		magic := rnd.candidate()
		if bits.OnesCount64(uint64(mask)*magic&0xFF00000000000000) < 6 {
			continue
		}
		for i := range used {
			used[i] = 0
		}
		fail := false
		for i := 0; i < occIndices && !fail; i++ {
			idx := (occupancies[i] * types.Bb(magic)) >> uint(64-relevantBits)
			if used[idx] == 0 {
				used[idx] = attacksOf[i]
			} else if used[idx] != attacksOf[i] {
				fail = true
			}
		}
		if !fail {
			return magic
		}
	}
	panic(fmt.Sprintf("attacks: no magic number found for square %d (bishop=%v)", sq, bishop))
}

// buildSliderTable computes the magic number and full attack table for one
// square of one slider kind.
func buildSliderTable(sq types.Square, bishop bool) (uint64, []types.Bb) {
	relevantBits := RelevantBitsRook[sq]
	if bishop {
		relevantBits = RelevantBitsBishop[sq]
	}
	magic := findMagicNumber(sq, relevantBits, bishop)
	occIndices := 1 << uint(relevantBits)
	table := make([]types.Bb, occIndices)
	mask := rookMask[sq]
	if bishop {
		mask = bishopMask[sq]
	}
	for i := 0; i < occIndices; i++ {
		occ := setOccupancy(i, relevantBits, mask)
		idx := (occ * types.Bb(magic)) >> uint(64-relevantBits)
		if bishop {
			table[idx] = bishopAttacksOnTheFly(sq, occ)
		} else {
			table[idx] = rookAttacksOnTheFly(sq, occ)
		}
	}
	return magic, table
}

func init() {
	for sq := types.Square(0); sq < 64; sq++ {
		PawnAtt[types.White][sq] = maskPawnAttacks(types.White, sq)
		PawnAtt[types.Black][sq] = maskPawnAttacks(types.Black, sq)
		KnightAtt[sq] = maskKnightAttacks(sq)
		KingAtt[sq] = maskKingAttacks(sq)
		bishopMask[sq] = maskBishopAttacks(sq)
		rookMask[sq] = maskRookAttacks(sq)
	}

	// Magic-number search is independent per square and per slider kind,
	// so the 128 searches run concurrently; this finishes before any
	// other package can observe the tables.
	g := new(errgroup.Group)
	for sq := types.Square(0); sq < 64; sq++ {
		sq := sq
		g.Go(func() error {
			magic, table := buildSliderTable(sq, true)
			bishopMagic[sq] = magic
			bishopTable[sq] = table
			return nil
		})
		g.Go(func() error {
			magic, table := buildSliderTable(sq, false)
			rookMagic[sq] = magic
			rookTable[sq] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}

// BishopAttacks returns the bishop's attack set from sq given occupancy.
func BishopAttacks(sq types.Square, occ types.Bb) types.Bb {
	o := occ & bishopMask[sq]
	idx := (o * types.Bb(bishopMagic[sq])) >> uint(64-RelevantBitsBishop[sq])
	return bishopTable[sq][idx]
}

// RookAttacks returns the rook's attack set from sq given occupancy.
func RookAttacks(sq types.Square, occ types.Bb) types.Bb {
	o := occ & rookMask[sq]
	idx := (o * types.Bb(rookMagic[sq])) >> uint(64-RelevantBitsRook[sq])
	return rookTable[sq][idx]
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func QueenAttacks(sq types.Square, occ types.Bb) types.Bb {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}
