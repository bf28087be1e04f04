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

package types

import (
	"fmt"
	"strings"

	"github.com/frankkopp/FrankyGo/assert"
)

// MoveType distinguishes the four kinds of move a Move can encode.
type MoveType uint8

//noinspection GoUnusedConst
const (
	Normal    MoveType = 0
	Promotion MoveType = 1
	EnPassant MoveType = 2
	Castling  MoveType = 3
)

// IsValid checks if t is one of the four defined move types.
func (t MoveType) IsValid() bool {
	return t <= Castling
}

// String returns a short label for the move type.
func (t MoveType) String() string {
	switch t {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		return "?"
	}
}

// Move is a 32-bit unsigned int encoding a chess move as a primitive value.
// The low 16 bits encode the move itself, the high 16 bits an ordering value
// used by the move generator and search to sort candidate moves.
//
//  BITMAP 32-bit
//  |-order value ------------------|-Move -------------------------|
//  3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------|--------------------------------
//                                  |                     1 1 1 1 1 1  to
//                                  |         1 1 1 1 1 1              from
//                                  |     1 1                          promotion piece type (pt-3 > 0-3)
//                                  | 1 1                              move type
//  1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 |                                  order value
type Move uint32

// MoveNone is the zero value of Move and is never a valid move.
const MoveNone Move = 0

const (
	fromShift     uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14
	valueShift    uint = 16

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
	moveMask     Move = 0xFFFF
	orderMask    Move = 0xFFFF << valueShift
)

// orderBias shifts the signed ordering value used by the move generator
// into the unsigned 16-bit field reserved for it. It is independent of the
// search's Value.Mate range: move ordering scores only ever span roughly
// material-difference magnitudes.
const orderBias Value = 20_000

// CreateMove returns an encoded Move instance without an ordering value.
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	// promType is reduced to 2 bits (4 values: Knight, Bishop, Rook, Queen) by
	// subtracting the Knight value, giving a value between 0 and 3.
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// CreateMoveValue returns an encoded Move instance including an ordering value.
func CreateMoveValue(from Square, to Square, t MoveType, promType PieceType, value Value) Move {
	m := CreateMove(from, to, t, promType)
	m.SetValue(value)
	return m
}

// MoveType returns the type of the move: Normal, Promotion, EnPassant or Castling.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the PieceType considered for promotion when the move
// type is Promotion. Must be ignored otherwise.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the to-Square of the move.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the from-Square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf returns the move without any ordering value (the low 16 bits).
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the ordering value encoded in the move.
func (m Move) ValueOf() Value {
	return Value((m&orderMask)>>valueShift) - orderBias
}

// SetValue encodes the given ordering value into the high 16 bits of the move.
func (m *Move) SetValue(v Value) {
	if assert.DEBUG {
		assert.Assert(v+orderBias >= 0 && v+orderBias <= 0xFFFF, "move order value out of range: %d", v)
	}
	if *m == MoveNone {
		return
	}
	*m = *m&moveMask | Move(v+orderBias)<<valueShift
}

// IsValid checks if the move has valid squares, promotion type and move type.
// MoveNone is never valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid()
}

// Str returns a UCI compatible string representation of the move (e.g. e2e4, a7a8q).
func (m Move) Str() string {
	if m == MoveNone {
		return "-"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

// StringUci returns a UCI compatible string representation of the move,
// same as Str(). Kept as a separate name for callers that format whole
// move lists in UCI notation (movearray.MoveArray.StringUci).
func (m Move) StringUci() string {
	return m.Str()
}

// String returns a verbose, human readable representation of a move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-6s type:%1s prom:%1s value:%-6d (%d) }",
		m.Str(), m.MoveType().String(), m.PromotionType().Char(), m.ValueOf(), Move(m))
}

// StrBits returns a string with the bit-level details of a Move, useful when
// debugging the encoding itself.
func (m Move) StrBits() string {
	return fmt.Sprintf(
		"Move { From[%06b](%s) To[%06b](%s) Prom[%02b](%s) Type[%02b](%s) value[%016b](%d) (%d) }",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		(m&promTypeMask)>>promTypeShift, m.PromotionType().Char(),
		(m&moveTypeMask)>>typeShift, m.MoveType().String(),
		(m&orderMask)>>valueShift, m.ValueOf(),
		m)
}
