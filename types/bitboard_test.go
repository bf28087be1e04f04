/*
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPop(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLsbMsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())
	b := SqA1.Bitboard() | SqH8.Bitboard()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqB1.Bitboard() | SqD3.Bitboard() | SqH8.Bitboard()
	assert.Equal(t, SqB1, b.PopLsb())
	assert.Equal(t, SqD3, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, BbZero, b)
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestBitboardPopCount(t *testing.T) {
	b := SqA1.Bitboard() | SqB1.Bitboard() | SqC1.Bitboard()
	assert.Equal(t, 3, b.PopCount())
}

func TestBitboardShift(t *testing.T) {
	b := SqE4.Bitboard()
	assert.Equal(t, SqE5.Bitboard(), ShiftBitboard(b, North))
	assert.Equal(t, SqE3.Bitboard(), ShiftBitboard(b, South))
	assert.Equal(t, SqF4.Bitboard(), ShiftBitboard(b, East))
	assert.Equal(t, SqD4.Bitboard(), ShiftBitboard(b, West))
	// shifting off the board edge must not wrap around
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bitboard(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bitboard(), West))
}

func TestFileRankDistance(t *testing.T) {
	assert.Equal(t, 7, FileDistance(FileA, FileH))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}

func TestRookAttacksOpenBoard(t *testing.T) {
	attacks := RookAttacks(SqA1, BbZero)
	assert.True(t, attacks.Has(SqA8))
	assert.True(t, attacks.Has(SqH1))
	assert.False(t, attacks.Has(SqB2))
}

func TestRookAttacksBlocked(t *testing.T) {
	occupied := SqA4.Bitboard()
	attacks := RookAttacks(SqA1, occupied)
	assert.True(t, attacks.Has(SqA4), "blocker itself is attacked (capturable)")
	assert.False(t, attacks.Has(SqA5), "nothing beyond the first blocker is attacked")
	assert.True(t, attacks.Has(SqA2))
	assert.True(t, attacks.Has(SqA3))
}

func TestBishopAttacksBlocked(t *testing.T) {
	occupied := SqD4.Bitboard()
	attacks := BishopAttacks(SqA1, occupied)
	assert.True(t, attacks.Has(SqD4))
	assert.False(t, attacks.Has(SqE5))
}

func TestQueenAttacksCombinesRookAndBishop(t *testing.T) {
	attacks := QueenAttacks(SqD4, BbZero)
	assert.Equal(t, RookAttacks(SqD4, BbZero)|BishopAttacks(SqD4, BbZero), attacks)
}

func TestKnightAttacks(t *testing.T) {
	attacks := AttacksBb(Knight, SqD4, BbZero)
	assert.True(t, attacks.Has(SqB3))
	assert.True(t, attacks.Has(SqF5))
	assert.Equal(t, 8, attacks.PopCount())
}

func TestKingAttacks(t *testing.T) {
	attacks := AttacksBb(King, SqA1, BbZero)
	assert.Equal(t, 3, attacks.PopCount())
	attacks = AttacksBb(King, SqD4, BbZero)
	assert.Equal(t, 8, attacks.PopCount())
}

func TestPawnAttacks(t *testing.T) {
	white := PawnAttacks(White, SqE4)
	assert.True(t, white.Has(SqD5))
	assert.True(t, white.Has(SqF5))
	assert.Equal(t, 2, white.PopCount())

	black := PawnAttacks(Black, SqE4)
	assert.True(t, black.Has(SqD3))
	assert.True(t, black.Has(SqF3))
}

func TestIntermediate(t *testing.T) {
	assert.Equal(t, SqB1.Bitboard(), Intermediate(SqA1, SqC1))
	assert.Equal(t, BbZero, Intermediate(SqA1, SqC2), "not aligned on rank, file or diagonal")
	assert.Equal(t, (SqB2.Bitboard() | SqC3.Bitboard() | SqD4.Bitboard() | SqE5.Bitboard() | SqF6.Bitboard() | SqG7.Bitboard()),
		Intermediate(SqA1, SqH8))
}
