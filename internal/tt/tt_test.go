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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcbound/bitknight/internal/zobrist"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(1024)
	_, ok := table.Probe(zobrist.Key(42), -1000, 1000, 4)
	assert.False(t, ok)
}

func TestStoreThenProbeExact(t *testing.T) {
	table := New(1024)
	key := zobrist.Key(7)
	table.Store(key, 5, Exact, 123)
	score, ok := table.Probe(key, -1000, 1000, 3)
	assert.True(t, ok)
	assert.Equal(t, 123, score)
}

func TestProbeRejectsShallowerEntry(t *testing.T) {
	table := New(1024)
	key := zobrist.Key(7)
	table.Store(key, 2, Exact, 123)
	_, ok := table.Probe(key, -1000, 1000, 5)
	assert.False(t, ok)
}

func TestAlphaFlagOnlyCutsWhenBelowAlpha(t *testing.T) {
	table := New(1024)
	key := zobrist.Key(9)
	table.Store(key, 4, Alpha, -50)
	score, ok := table.Probe(key, -40, 1000, 4)
	assert.True(t, ok)
	assert.Equal(t, -40, score)

	score, ok = table.Probe(key, -60, 1000, 4)
	assert.False(t, ok)
	_ = score
}

func TestStoreOverwritesPreviousEntry(t *testing.T) {
	table := New(1024)
	key := zobrist.Key(9)
	table.Store(key, 2, Alpha, -50)
	table.Store(key, 6, Beta, 300)
	score, ok := table.Probe(key, -1000, 250, 6)
	assert.True(t, ok)
	assert.Equal(t, 250, score)
}

func TestClearRemovesEntries(t *testing.T) {
	table := New(1024)
	key := zobrist.Key(3)
	table.Store(key, 4, Exact, 1)
	table.Clear()
	_, ok := table.Probe(key, -1000, 1000, 1)
	assert.False(t, ok)
}
