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

// MaxMoves bounds the number of pseudo-legal moves any reachable chess
// position can produce; the generator never exceeds it.
const MaxMoves = 256

// MoveList is a fixed-capacity, append-only list of moves together with a
// parallel score slice used for move ordering. Overflowing Add is a
// programming error, not a runtime condition to recover from.
type MoveList struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]int
	len    int
}

// Clear empties the list for reuse without reallocating.
func (l *MoveList) Clear() {
	l.len = 0
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int {
	return l.len
}

// Add appends a move with an initial score of zero.
func (l *MoveList) Add(m Move) {
	if l.len >= MaxMoves {
		panic("movelist overflow: more than MaxMoves pseudo-legal moves generated")
	}
	l.moves[l.len] = m
	l.scores[l.len] = 0
	l.len++
}

// At returns the move at index i.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// SetScore assigns the ordering score for the move at index i.
func (l *MoveList) SetScore(i, score int) {
	l.scores[i] = score
}

// Score returns the ordering score for the move at index i.
func (l *MoveList) Score(i int) int {
	return l.scores[i]
}

// Sort orders the moves descending by score with a simple selection sort.
// Quadratic behaviour is acceptable: lists never exceed MaxMoves entries.
func (l *MoveList) Sort() {
	for i := 0; i < l.len-1; i++ {
		best := i
		for j := i + 1; j < l.len; j++ {
			if l.scores[j] > l.scores[best] {
				best = j
			}
		}
		if best != i {
			l.moves[i], l.moves[best] = l.moves[best], l.moves[i]
			l.scores[i], l.scores[best] = l.scores[best], l.scores[i]
		}
	}
}
