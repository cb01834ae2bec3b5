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

package movegen

import (
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/types"
)

// Perft counts leaf nodes at the given depth by exhaustively applying
// every pseudo-legal move and discarding illegal ones. It exists to
// validate the move generator and make/unmake against known node counts;
// it does no ordering, pruning or evaluation.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list types.MoveList
	Generate(p, false, &list)
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		snapshot := *p
		if !p.Make(list.At(i), false) {
			*p = snapshot
			continue
		}
		nodes += Perft(p, depth-1)
		*p = snapshot
	}
	return nodes
}
