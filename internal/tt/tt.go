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

// Package tt implements a fixed-size, direct-mapped, always-replace
// transposition table keyed by Zobrist hash.
package tt

import "github.com/arcbound/bitknight/internal/zobrist"

// Flag records how a stored score relates to the search window that
// produced it.
type Flag int

const (
	Exact Flag = iota
	Alpha
	Beta
)

type entry struct {
	key   zobrist.Key
	depth int
	flag  Flag
	score int
	valid bool
}

// Table is a fixed-size direct-mapped transposition table. The zero value
// is not usable; construct one with New.
type Table struct {
	entries []entry
	mask    uint64
}

// New creates a table with size entries, rounded up to the next power of
// two as the reference engine's default (0x400000) already is.
func New(size int) *Table {
	n := 1
	for n < size {
		n <<= 1
	}
	return &Table{entries: make([]entry, n), mask: uint64(n - 1)}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Clear empties every slot, used by ucinewgame.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
}

// MissScore is returned, together with ok=false, when Probe cannot
// resolve a usable bound or exact score from the window given.
const MissScore = 0

// Probe looks up key and, if a sufficiently deep entry within alpha/beta
// resolves the search window, returns the score to use and ok=true.
func (t *Table) Probe(key zobrist.Key, alpha, beta, depth int) (int, bool) {
	e := &t.entries[t.index(key)]
	if !e.valid || e.key != key || e.depth < depth {
		return MissScore, false
	}
	switch e.flag {
	case Exact:
		return e.score, true
	case Alpha:
		if e.score <= alpha {
			return alpha, true
		}
	case Beta:
		if e.score >= beta {
			return beta, true
		}
	}
	return MissScore, false
}

// Store always overwrites whatever previously occupied key's slot.
func (t *Table) Store(key zobrist.Key, depth int, flag Flag, score int) {
	t.entries[t.index(key)] = entry{key: key, depth: depth, flag: flag, score: score, valid: true}
}
