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

// Package position holds the board representation and the make/unmake
// logic that keeps it, and its Zobrist hash, consistent. A Position is a
// plain value type: every field is an array or a scalar, so copying a Position is a
// full, independent snapshot. Search uses that to implement unmake by
// simply restoring a saved copy rather than tracking reverse deltas.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcbound/bitknight/internal/attacks"
	"github.com/arcbound/bitknight/internal/types"
	"github.com/arcbound/bitknight/internal/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the complete, make/unmake-mutated state of a board.
type Position struct {
	PieceBb [12]types.Bb
	Occ     [3]types.Bb // [White], [Black], [both]
	Side    types.Color
	Castle  int
	Ep      types.Square
	Hash    zobrist.Key

	// Halfmove and Fullmove are carried only for FEN round-tripping; the
	// search itself never reads them.
	Halfmove int
	Fullmove int
}

// New returns the standard starting position.
func New() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// FromFEN parses Forsyth-Edwards notation into a Position.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: FEN %q has too few fields", fen)
	}
	p := &Position{Ep: types.NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: FEN %q does not have 8 ranks", fen)
	}
	sq := 0
	for _, rank := range ranks {
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				sq += int(c - '0')
			default:
				piece := types.PieceFromLetter(byte(c))
				if piece == types.PieceNone {
					return nil, fmt.Errorf("position: FEN %q has invalid piece %q", fen, c)
				}
				if sq > 63 {
					return nil, fmt.Errorf("position: FEN %q overflows the board", fen)
				}
				p.PieceBb[piece] = p.PieceBb[piece].Set(types.Square(sq))
				sq++
			}
		}
	}

	switch fields[1] {
	case "w":
		p.Side = types.White
	case "b":
		p.Side = types.Black
	default:
		return nil, fmt.Errorf("position: FEN %q has invalid side %q", fen, fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.Castle |= types.CastleWK
		case 'Q':
			p.Castle |= types.CastleWQ
		case 'k':
			p.Castle |= types.CastleBK
		case 'q':
			p.Castle |= types.CastleBQ
		case '-':
		default:
			return nil, fmt.Errorf("position: FEN %q has invalid castling field %q", fen, fields[2])
		}
	}

	if fields[3] == "-" {
		p.Ep = types.NoSquare
	} else {
		epSq, err := types.SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("position: FEN %q has invalid en-passant field: %w", fen, err)
		}
		p.Ep = epSq
	}

	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.Halfmove = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.Fullmove = n
		}
	}

	p.updateOcc()
	p.Hash = zobrist.KeyFromScratch(p.PieceBb, p.Side, p.Castle, p.Ep)
	return p, nil
}

// FEN renders the position back to Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var b strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := types.Square(rank*8 + file)
			pc := p.pieceAt(sq)
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&b, "%d", empty)
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
		}
		if rank != 7 {
			b.WriteByte('/')
		}
	}
	if p.Side == types.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}
	castle := ""
	if p.Castle&types.CastleWK != 0 {
		castle += "K"
	}
	if p.Castle&types.CastleWQ != 0 {
		castle += "Q"
	}
	if p.Castle&types.CastleBK != 0 {
		castle += "k"
	}
	if p.Castle&types.CastleBQ != 0 {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}
	b.WriteString(castle)
	b.WriteByte(' ')
	b.WriteString(p.Ep.String())
	fmt.Fprintf(&b, " %d %d", p.Halfmove, p.Fullmove)
	return b.String()
}

// String renders an 8x8 ASCII board with rank/file labels, for debug and
// log output, in the BBC reference's print_board layout (ranks 8 down to
// 1, files a through h, dots for empty squares).
func (p *Position) String() string {
	var b strings.Builder
	b.WriteByte('\n')
	for rank := 0; rank < 8; rank++ {
		fmt.Fprintf(&b, "  %d ", 8-rank)
		for file := 0; file < 8; file++ {
			pc := p.pieceAt(types.Square(rank*8 + file))
			if pc == types.PieceNone {
				b.WriteString(" .")
			} else {
				b.WriteByte(' ')
				b.WriteString(pc.String())
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n     a b c d e f g h\n")
	fmt.Fprintf(&b, "  side to move: %s  castle: %04b  ep: %s  hash: %016x\n",
		p.Side, p.Castle, p.Ep, uint64(p.Hash))
	return b.String()
}

func (p *Position) pieceAt(sq types.Square) types.Piece {
	bit := sq.Bb()
	for pc := types.WP; pc <= types.BK; pc++ {
		if p.PieceBb[pc]&bit != 0 {
			return pc
		}
	}
	return types.PieceNone
}

func (p *Position) updateOcc() {
	var white, black types.Bb
	for pc := types.WP; pc <= types.WK; pc++ {
		white |= p.PieceBb[pc]
	}
	for pc := types.BP; pc <= types.BK; pc++ {
		black |= p.PieceBb[pc]
	}
	p.Occ[types.White] = white
	p.Occ[types.Black] = black
	p.Occ[2] = white | black
}

// IsSquareAttacked reports whether sq is attacked by any piece of bySide.
func (p *Position) IsSquareAttacked(sq types.Square, bySide types.Color) bool {
	if attacks.PawnAtt[bySide.Other()][sq]&p.PieceBb[types.MakePiece(bySide, types.Pawn)] != 0 {
		return true
	}
	if attacks.KnightAtt[sq]&p.PieceBb[types.MakePiece(bySide, types.Knight)] != 0 {
		return true
	}
	if attacks.KingAtt[sq]&p.PieceBb[types.MakePiece(bySide, types.King)] != 0 {
		return true
	}
	bishopsQueens := p.PieceBb[types.MakePiece(bySide, types.Bishop)] | p.PieceBb[types.MakePiece(bySide, types.Queen)]
	if attacks.BishopAttacks(sq, p.Occ[2])&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.PieceBb[types.MakePiece(bySide, types.Rook)] | p.PieceBb[types.MakePiece(bySide, types.Queen)]
	if attacks.RookAttacks(sq, p.Occ[2])&rooksQueens != 0 {
		return true
	}
	return false
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.PieceBb[types.MakePiece(c, types.King)].LsbIndex()
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare(p.Side), p.Side.Other())
}
