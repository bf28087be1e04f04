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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/position"
	. "github.com/frankkopp/FrankyGo/types"
)

func TestNewSearch(t *testing.T) {
	s := NewSearch()
	assert.False(t, s.IsSearching())
	assert.NotNil(t, s.mg)
}

func TestStartStopSearch(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewLimits()
	sl.Depth = 4

	s.StartSearch(*p, *sl)
	assert.True(t, s.IsSearching())
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())

	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.EqualValues(t, 4, result.SearchDepth)
}

func TestStopSearchEarly(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewLimits()
	sl.MoveTime = 500 * time.Millisecond

	start := time.Now()
	s.StartSearch(*p, *sl)
	s.StopSearch()
	elapsed := time.Since(start)

	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Less(t, elapsed.Milliseconds(), int64(500))
}

func TestSearchMateAtRoot(t *testing.T) {
	s := NewSearch()
	p := position.NewPositionFen("R5k1/5ppp/8/8/8/8/8/4K3 b - - 1 1")
	// black to move and already checkmated by the rook on a8: no legal move at the root
	sl := NewLimits()
	sl.Depth = 1
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.NotNil(t, result)
}

func TestNewGameClearsState(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewLimits()
	sl.Depth = 3
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()

	s.NewGame()
	assert.EqualValues(t, MoveNone, s.lastBestMove)
	assert.Nil(t, s.lastSearchResult)
}
