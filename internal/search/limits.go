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
	"time"

	"github.com/arcbound/bitknight/internal/types"
)

// Limits mirrors the subset of "go" parameters this engine understands.
type Limits struct {
	WTime, BTime     int // milliseconds remaining
	WInc, BInc       int // milliseconds increment per move
	MovesToGo        int
	MoveTime         int // milliseconds, a bare deadline for this move only
	Depth            int // 0 means "no explicit depth limit"
	Infinite         bool
}

// MaxSearchDepth bounds iterative deepening; it is distinct from MaxPly,
// which bounds recursion including quiescence and extensions.
const MaxSearchDepth = 64

// deadline computes the absolute time by which the search must stop, and
// whether any deadline applies at all. Given time_remaining and
// moves_to_go for the side to move: allocated = time/movesToGo - 50ms +
// increment. A bare movetime sets movesToGo=1. infinite or missing time
// means no deadline.
func (l Limits) deadline(side types.Color, start time.Time) (time.Time, bool) {
	if l.Infinite {
		return time.Time{}, false
	}
	remaining, inc := l.WTime, l.WInc
	if side == types.Black {
		remaining, inc = l.BTime, l.BInc
	}
	movesToGo := l.MovesToGo
	if l.MoveTime > 0 {
		remaining, movesToGo = l.MoveTime, 1
	}
	if remaining <= 0 {
		return time.Time{}, false
	}
	// With no movestogo hint, assume 30 more moves in the game, the
	// reference engine's default.
	if movesToGo <= 0 {
		movesToGo = 30
	}
	allocatedMs := remaining/movesToGo - 50 + inc
	if allocatedMs < 1 {
		allocatedMs = 1
	}
	return start.Add(time.Duration(allocatedMs) * time.Millisecond), true
}
