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

package uci

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arcbound/bitknight/internal/types"
)

func TestUciCommandEmitsIdAndUciOk(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	quit, done, _ := h.dispatch("uci")
	assert.False(t, quit)
	assert.Nil(t, done)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "id name bitknight", lines[0])
	assert.Equal(t, "id author arcbound", lines[1])
	assert.Equal(t, "uciok", lines[2])
}

func TestIsReadyEmitsReadyOk(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	h.dispatch("isready")
	assert.Equal(t, "readyok", strings.TrimSpace(out.String()))
}

func TestPositionStartposThenMoves(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	h.dispatch("position startpos moves e2e4 e7e5")
	e4, _ := types.SquareFromString("e4")
	e5, _ := types.SquareFromString("e5")
	assert.True(t, h.pos.PieceBb[types.WP].Has(e4))
	assert.True(t, h.pos.PieceBb[types.BP].Has(e5))
}

func TestPositionFen(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	h.dispatch("position fen " + fen)
	assert.Equal(t, fen, h.pos.FEN())
}

func TestQuitStopsLoop(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	quit, _, _ := h.dispatch("quit")
	assert.True(t, quit)
}

func TestGoMovetimeProducesBestMovePromptly(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	start := time.Now()
	_, done, _ := h.dispatch("go movetime 100")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("search ignored its movetime deadline")
	}
	assert.Less(t, time.Since(start), time.Second)
	assert.Contains(t, out.String(), "bestmove")
}

func TestGoDepthProducesBestMove(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(""), &out)
	_, done, _ := h.dispatch("go depth 2")
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("search did not complete")
	}
	assert.Contains(t, out.String(), "bestmove")
}
