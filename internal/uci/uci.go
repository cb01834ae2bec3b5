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

// Package uci translates between the UCI text protocol and the search
// engine's public operations. It owns stdin/stdout, the current
// position, and the one Engine instance; it never calls evaluation
// directly, uses move generation only to resolve move strings and for
// perft, and it never blocks a running search from hearing "stop".
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/arcbound/bitknight/internal/logging"
	"github.com/arcbound/bitknight/internal/movegen"
	"github.com/arcbound/bitknight/internal/position"
	"github.com/arcbound/bitknight/internal/search"
	"github.com/arcbound/bitknight/internal/types"
	"github.com/arcbound/bitknight/internal/util"
	"github.com/arcbound/bitknight/internal/zobrist"
)

const (
	engineName   = "bitknight"
	engineAuthor = "arcbound"
)

var log *logging.Logger

// Handler reads UCI commands from In and writes UCI responses to Out.
type Handler struct {
	In  *bufio.Scanner
	Out io.Writer

	pos    *position.Position
	engine *search.Engine
}

// NewHandler creates a Handler reading from in and writing to out.
func NewHandler(in io.Reader, out io.Writer) *Handler {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Handler{
		In:     bufio.NewScanner(in),
		Out:    out,
		pos:    position.New(),
		engine: search.NewEngine(),
	}
}

// Loop reads commands from stdin until "quit" or EOF. A background
// goroutine does the blocking stdin reads so that, while a search
// runs, "stop" and "quit" lines can still reach it: the main select
// forwards every line to the active search's input channel instead of
// dispatching it as a new command until that search reports done.
func (h *Handler) Loop() {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for h.In.Scan() {
			lines <- h.In.Text()
		}
	}()

	var searchDone chan struct{}
	var searchInput chan string

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if searchDone != nil {
				select {
				case searchInput <- line:
				default:
				}
				continue
			}
			quit, done, input := h.dispatch(line)
			if quit {
				return
			}
			if done != nil {
				searchDone, searchInput = done, input
			}
		case <-searchDone:
			searchDone, searchInput = nil, nil
			if h.engine.QuitRequested() {
				return
			}
		}
	}
}

// dispatch handles one command line. For "go" it starts the search in
// a goroutine and returns the channels Loop needs to keep routing
// input to it; for everything else it runs synchronously.
func (h *Handler) dispatch(line string) (quit bool, done chan struct{}, input chan string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit":
		return true, nil, nil
	case "uci":
		h.send("id name %s", engineName)
		h.send("id author %s", engineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.New()
		h.engine.NewGame()
	case "position":
		h.positionCommand(fields)
	case "go":
		done, input := h.goCommand(fields)
		return false, done, input
	case "stop":
		// no search running: nothing to stop, ignored per the
		// "illegal UCI input is ignored" rule.
	case "debug":
		h.debugCommand()
	case "perft":
		h.perftCommand(fields)
	default:
		log.Warningf("unknown command: %s", line)
	}
	return false, nil, nil
}

func (h *Handler) positionCommand(fields []string) {
	if len(fields) < 2 {
		return
	}
	i := 1
	var p *position.Position
	switch fields[i] {
	case "startpos":
		p = position.New()
		i++
	case "fen":
		i++
		start := i
		for i < len(fields) && fields[i] != "moves" {
			i++
		}
		fen := strings.Join(fields[start:i], " ")
		parsed, err := position.FromFEN(fen)
		if err != nil {
			log.Warningf("malformed position command, fen %q: %v", fen, err)
			return
		}
		p = parsed
	default:
		log.Warningf("malformed position command: %v", fields)
		return
	}

	if i < len(fields) && fields[i] == "moves" {
		i++
		for ; i < len(fields); i++ {
			m, ok := parseUciMove(p, fields[i])
			if !ok {
				log.Warningf("malformed move in position command: %s", fields[i])
				break
			}
			snapshot := *p
			if !p.Make(m, false) {
				*p = snapshot
				log.Warningf("illegal move in position command: %s", fields[i])
				break
			}
		}
	}

	h.pos = p
}

// parseUciMove resolves a long-algebraic move string against the
// pseudo-legal moves generated from p, since the move string alone
// does not encode the piece/capture/flag bits the Move type needs.
func parseUciMove(p *position.Position, s string) (types.Move, bool) {
	if len(s) < 4 || len(s) > 5 {
		return types.NoMove, false
	}
	source, err := types.SquareFromString(s[0:2])
	if err != nil {
		return types.NoMove, false
	}
	target, err := types.SquareFromString(s[2:4])
	if err != nil {
		return types.NoMove, false
	}
	var promo byte
	if len(s) == 5 {
		promo = s[4]
	}

	var list types.MoveList
	movegen.Generate(p, false, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Source() != source || m.Target() != target {
			continue
		}
		if m.Promoted() == types.PieceNone {
			if promo == 0 {
				return m, true
			}
			continue
		}
		if promo != 0 && strings.EqualFold(m.Promoted().String(), string(promo)) {
			return m, true
		}
	}
	return types.NoMove, false
}

func (h *Handler) goCommand(fields []string) (chan struct{}, chan string) {
	limits := search.Limits{}
	i := 1
	for i < len(fields) {
		switch fields[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "wtime":
			i++
			limits.WTime = atoiOr(fields, i)
			i++
		case "btime":
			i++
			limits.BTime = atoiOr(fields, i)
			i++
		case "winc":
			i++
			limits.WInc = atoiOr(fields, i)
			i++
		case "binc":
			i++
			limits.BInc = atoiOr(fields, i)
			i++
		case "movestogo":
			i++
			limits.MovesToGo = atoiOr(fields, i)
			i++
		case "movetime":
			i++
			limits.MoveTime = atoiOr(fields, i)
			i++
		case "depth":
			i++
			limits.Depth = atoiOr(fields, i)
			i++
		default:
			i++
		}
	}

	input := make(chan string, 16)
	done := make(chan struct{})
	pos := h.pos
	go func() {
		defer close(done)
		best := h.engine.Search(pos, limits, input, func(info search.Info) {
			h.send("info score cp %d depth %d nodes %d time %d nps %d pv %s",
				info.Score, info.Depth, info.Nodes, info.Time.Milliseconds(), util.Nps(info.Nodes, info.Time), pvString(info.PV))
		})
		h.send("bestmove %s", best.String())
	}()
	return done, input
}

// debugCommand dumps the board plus the hash-invariant check: the
// incrementally maintained hash must equal one computed from scratch.
func (h *Handler) debugCommand() {
	h.send("info string %s", h.pos)
	fromScratch := zobrist.KeyFromScratch(h.pos.PieceBb, h.pos.Side, h.pos.Castle, h.pos.Ep)
	h.send("info string hash invariant: %v", fromScratch == h.pos.Hash)
}

// perftCommand runs the node-counting harness against the current
// position to the requested depth (default 4) and reports per-depth
// counts, mirroring the BBC reference's interactive perft test.
func (h *Handler) perftCommand(fields []string) {
	depth := 4
	if len(fields) > 1 {
		if d, err := strconv.Atoi(fields[1]); err == nil {
			depth = d
		}
	}
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(h.pos, d)
		h.send("info string perft %d: %d nodes", d, nodes)
	}
}

func pvString(pv []types.Move) string {
	var b strings.Builder
	for i, m := range pv {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.String())
	}
	return b.String()
}

func atoiOr(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	v, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0
	}
	return v
}

func (h *Handler) send(format string, a ...interface{}) {
	line := fmt.Sprintf(format, a...)
	log.Debugf(">> %s", line)
	fmt.Fprintln(h.Out, line)
}
