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

	"github.com/arcbound/bitknight/internal/config"
	"github.com/arcbound/bitknight/internal/moveorder"
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/types"
)

const (
	infinity           = 50000
	aspirationFallback = 50000
)

// Search runs iterative deepening from pos until limits, the transport's
// stop/quit signal on input, or MaxSearchDepth is reached, then returns
// the best move found. info is called once per completed iteration; it
// may be nil.
func (e *Engine) Search(pos *position.Position, limits Limits, input <-chan string, info func(Info)) types.Move {
	start := time.Now()

	e.pv = [types.MaxPly][types.MaxPly]types.Move{}
	e.pvLength = [types.MaxPly]int{}
	e.order = moveorder.Tables{}
	e.nodes = 0
	e.stopped = false
	e.input = input

	deadline, hasDeadline := limits.deadline(pos.Side, start)
	e.deadline = deadline
	e.hasDeadline = hasDeadline

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxSearchDepth {
		maxDepth = MaxSearchDepth
	}

	slog.Debugf("search started: max depth %d, deadline armed %v", maxDepth, hasDeadline)

	alpha, beta := -infinity, infinity
	var bestMove types.Move
	var lastPV []types.Move

	for depth := 1; depth <= maxDepth; depth++ {
		e.pvFollow = true
		e.pvScore = false

		score := e.negamax(pos, alpha, beta, depth, 0)

		if e.stopped {
			break
		}

		if score <= alpha || score >= beta {
			alpha, beta = -aspirationFallback, aspirationFallback
			score = e.negamax(pos, alpha, beta, depth, 0)
			if e.stopped {
				break
			}
		}
		alpha, beta = score-config.Settings.Search.AspirationWindow, score+config.Settings.Search.AspirationWindow

		pv := e.collectPV()
		if len(pv) > 0 {
			bestMove = pv[0]
			lastPV = pv
		}

		if info != nil {
			info(Info{
				Depth: depth,
				Score: score,
				Nodes: e.nodes,
				Time:  time.Since(start),
				PV:    lastPV,
			})
		}
	}

	slog.Debugf("search finished: best %s, %d nodes in %v", bestMove, e.nodes, time.Since(start))
	return bestMove
}
