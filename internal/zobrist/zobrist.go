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

// Package zobrist holds the position-fingerprint keys: one per
// piece-square, one per en-passant square, one per castling mask, and one
// for side to move. Keys are generated once at process start from a fixed
// seed so every build produces byte-identical keys.
package zobrist

import "github.com/arcbound/bitknight/internal/types"

// Key is a 64-bit Zobrist fingerprint.
type Key uint64

// Piece holds the 12x64 piece-square keys.
var Piece [12][64]Key

// EnPassant holds the 64 en-passant-square keys.
var EnPassant [64]Key

// Castle holds the 16 castling-rights-mask keys.
var Castle [16]Key

// Side is XORed in whenever it is black to move.
var Side Key

// seed is the xorshift32 state, reset at the start of Init so repeated
// calls (e.g. from tests) are reproducible.
var seed uint32

func nextRandom32() uint32 {
	x := seed
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	seed = x
	return x
}

// nextRandom64 assembles a 64-bit key from four 16-bit slices of the
// xorshift32 stream, the same construction the reference engine uses for
// its magic numbers and Zobrist keys.
func nextRandom64() Key {
	n1 := uint64(nextRandom32()) & 0xFFFF
	n2 := uint64(nextRandom32()) & 0xFFFF
	n3 := uint64(nextRandom32()) & 0xFFFF
	n4 := uint64(nextRandom32()) & 0xFFFF
	return Key(n1 | n2<<16 | n3<<32 | n4<<48)
}

func init() {
	Init()
}

// Init (re-)generates all key tables from the fixed seed 1804289383, in
// order: piece keys, en-passant keys, the side key, then castling keys.
// It runs automatically at package load; exported so tests can call it
// explicitly after exercising the shared PRNG state for other purposes.
func Init() {
	seed = 1804289383
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			Piece[p][sq] = nextRandom64()
		}
	}
	for sq := 0; sq < 64; sq++ {
		EnPassant[sq] = nextRandom64()
	}
	Side = nextRandom64()
	for i := 0; i < 16; i++ {
		Castle[i] = nextRandom64()
	}
}

// KeyFromScratch recomputes the Zobrist key of a position from its raw
// fields, with no incremental bookkeeping. Used by debug-mode invariant
// checks and by FEN loading.
func KeyFromScratch(pieceBb [12]types.Bb, side types.Color, castle int, ep types.Square) Key {
	var k Key
	for p := 0; p < 12; p++ {
		bb := pieceBb[p]
		for bb != 0 {
			sq := bb.PopLsb()
			k ^= Piece[p][sq]
		}
	}
	if ep != types.NoSquare {
		k ^= EnPassant[ep]
	}
	k ^= Castle[castle]
	if side == types.Black {
		k ^= Side
	}
	return k
}
