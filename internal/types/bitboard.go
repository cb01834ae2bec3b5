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

// Package types holds the shared board representation types: bitboards,
// squares, pieces, and packed moves. Nothing here depends on search or
// move generation so it is safe to import from anywhere in the engine.
package types

import "math/bits"

// Bb is a 64-bit bitboard; bit s represents square s.
type Bb uint64

// Empty and AllSquares are the two trivial bitboards.
const (
	Empty      Bb = 0
	AllSquares Bb = 0xFFFFFFFFFFFFFFFF
)

// FileA..FileH are the eight file masks, FileA being the a-file.
const (
	FileA Bb = 0x0101010101010101
	FileB Bb = FileA << 1
	FileC Bb = FileA << 2
	FileD Bb = FileA << 3
	FileE Bb = FileA << 4
	FileF Bb = FileA << 5
	FileG Bb = FileA << 6
	FileH Bb = FileA << 7
)

// NotFileA etc. are used to mask off wraparound when shifting leaper attacks.
const (
	NotFileA  = ^FileA
	NotFileH  = ^FileH
	NotFileAB = ^(FileA | FileB)
	NotFileGH = ^(FileG | FileH)
)

// Rank8..Rank1 are the eight rank masks in square-numbering order (rank 8 first).
const (
	Rank8 Bb = 0xFF
	Rank7 Bb = Rank8 << 8
	Rank6 Bb = Rank8 << 16
	Rank5 Bb = Rank8 << 24
	Rank4 Bb = Rank8 << 32
	Rank3 Bb = Rank8 << 40
	Rank2 Bb = Rank8 << 48
	Rank1 Bb = Rank8 << 56
)

// PopCount returns the number of set bits.
func (b Bb) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LsbIndex returns the index of the least significant set bit.
// The result is undefined if b == 0; callers must test for that first.
func (b Bb) LsbIndex() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's index.
func (b *Bb) PopLsb() Square {
	s := b.LsbIndex()
	*b &= *b - 1
	return s
}

// Has reports whether the bit for sq is set.
func (b Bb) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with the bit for sq set.
func (b Bb) Set(sq Square) Bb {
	return b | sq.Bb()
}

// Clear returns b with the bit for sq cleared.
func (b Bb) Clear(sq Square) Bb {
	return b &^ sq.Bb()
}
