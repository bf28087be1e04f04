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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/movearray"
	"github.com/frankkopp/FrankyGo/position"
	. "github.com/frankkopp/FrankyGo/types"
)

func TestOrderMoves(t *testing.T) {
	ma := movearray.New(4)
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqD2, SqD4, Normal, PtNone)
	m3 := CreateMove(SqG1, SqF3, Normal, PtNone)
	ma.PushBack(m1)
	ma.PushBack(m2)
	ma.PushBack(m3)

	orderMoves(&ma, m3)
	assert.EqualValues(t, m3, ma.At(0))
	assert.EqualValues(t, m1, ma.At(1))
	assert.EqualValues(t, m2, ma.At(2))

	// ttMove not in the list: order is left untouched
	orderMoves(&ma, MoveNone)
	assert.EqualValues(t, m3, ma.At(0))
}

func TestValueToFromTT(t *testing.T) {
	// non-mate values are passed through unchanged
	assert.EqualValues(t, Value(37), valueToTT(Value(37), 5))
	assert.EqualValues(t, Value(37), valueFromTT(Value(37), 5))

	// mate scores are rebased by ply and back
	mateIn2FromRoot := Mate - 2
	stored := valueToTT(mateIn2FromRoot, 3)
	assert.EqualValues(t, mateIn2FromRoot+3, stored)
	assert.EqualValues(t, mateIn2FromRoot, valueFromTT(stored, 3))

	matedIn2FromRoot := -Mate + 2
	stored = valueToTT(matedIn2FromRoot, 3)
	assert.EqualValues(t, matedIn2FromRoot-3, stored)
	assert.EqualValues(t, matedIn2FromRoot, valueFromTT(stored, 3))
}

func TestRootSearchMateInOne(t *testing.T) {
	s := NewSearch()
	s.initialize()
	p := position.NewPositionFen("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")

	value, move := s.rootSearch(p, 1, -ValueInf, ValueInf)
	assert.True(t, value.IsCheckMateValue())
	assert.True(t, value > 0)
	assert.EqualValues(t, SqA1, move.From())
	assert.EqualValues(t, SqA8, move.To())
}

func TestSearchStalemate(t *testing.T) {
	s := NewSearch()
	s.initialize()
	p := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	value := s.search(p, 1, 0, -ValueInf, ValueInf)
	assert.EqualValues(t, ValueZero, value)
}

func TestQuiescenceStandPat(t *testing.T) {
	s := NewSearch()
	s.initialize()
	p := position.NewPosition()

	value := s.quiescence(p, 0, 0, -ValueInf, ValueInf)
	assert.True(t, value > -ValueInf && value < ValueInf)
}
