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

// Package search implements iterative-deepening negamax with quiescence,
// a triangular PV table, null-move pruning, late move reductions,
// principal-variation search and aspiration windows, backed by a
// transposition table and the move-ordering heuristics of package
// moveorder. The design is single-threaded and cooperative: a search
// owns the position it is given exclusively until it returns, and checks
// a stop flag after every recursive call rather than being preempted.
package search

import (
	"time"

	"github.com/arcbound/bitknight/internal/config"
	"github.com/arcbound/bitknight/internal/logging"
	"github.com/arcbound/bitknight/internal/moveorder"
	"github.com/arcbound/bitknight/internal/tt"
	"github.com/arcbound/bitknight/internal/types"
)

var slog = logging.GetSearchLog()

// Info is emitted once per completed iterative-deepening iteration and
// once more, implicitly, as the final bestmove.
type Info struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []types.Move
}

// Engine owns everything that lives only for the duration of searches
// from a single engine instance: the transposition table, which persists
// across "go" commands within the same game (cleared on ucinewgame), plus
// the transient per-search state (PV table, killer and history tables,
// counters and flags) that Search rebuilds from scratch every call.
type Engine struct {
	tt    *tt.Table
	order moveorder.Tables

	pv       [types.MaxPly][types.MaxPly]types.Move
	pvLength [types.MaxPly]int

	pvFollow bool
	pvScore  bool

	nodes   uint64
	stopped bool
	quit    bool

	deadline    time.Time
	hasDeadline bool
	input       <-chan string

	pollInterval uint64
}

// NewEngine constructs an engine with a transposition table sized from
// configuration.
func NewEngine() *Engine {
	return &Engine{
		tt:           tt.New(config.Settings.Search.TTSize),
		pollInterval: config.Settings.Search.NodePollInterval,
	}
}

// NewGame resets all state that must not leak between distinct games:
// the transposition table and move-ordering history.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.order = moveorder.Tables{}
}

// QuitRequested reports whether a "quit" line arrived during the last
// search; the UCI loop checks this after Search returns to decide whether
// to terminate the process.
func (e *Engine) QuitRequested() bool {
	return e.quit
}

// communicate is polled every pollInterval nodes: it checks the deadline
// and non-blockingly drains any pending input line.
func (e *Engine) communicate() {
	if e.hasDeadline && !time.Now().Before(e.deadline) {
		e.stopped = true
	}
	select {
	case line, ok := <-e.input:
		if !ok {
			return
		}
		switch line {
		case "stop":
			e.stopped = true
		case "quit":
			e.stopped = true
			e.quit = true
		}
	default:
	}
}

func (e *Engine) pollIfDue() {
	if e.pollInterval == 0 {
		return
	}
	if e.nodes%e.pollInterval == 0 {
		e.communicate()
	}
}

// collectPV returns the PV line stored for the root, up to its recorded
// length.
func (e *Engine) collectPV() []types.Move {
	n := e.pvLength[0]
	out := make([]types.Move, n)
	copy(out, e.pv[0][:n])
	return out
}
