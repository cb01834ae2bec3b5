/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search. Kept intentionally small: opening books, pondering,
// SEE and internal iterative deepening are out of scope for this engine.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int // number of entries, power of two

	// Move ordering
	UseKiller  bool
	UseHistory bool

	// Null-move pruning
	UseNullMove       bool
	NullMoveDepth     int
	NullMoveReduction int

	// Late move reductions
	UseLMR             bool
	LMRMinDepth        int
	LMRMinMoveSearched int

	// Aspiration windows around the previous iteration's score
	AspirationWindow int

	// how often (in visited nodes) to poll time/input
	NodePollInterval uint64
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 1 << 22 // 0x400000 entries

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveDepth = 3
	Settings.Search.NullMoveReduction = 2

	Settings.Search.UseLMR = true
	Settings.Search.LMRMinDepth = 3
	Settings.Search.LMRMinMoveSearched = 4

	Settings.Search.AspirationWindow = 50

	Settings.Search.NodePollInterval = 2048
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
}
