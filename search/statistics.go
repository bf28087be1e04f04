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

import . "github.com/frankkopp/FrankyGo/types"

// //////////////////////////////////////////////////////
// Statistics
// //////////////////////////////////////////////////////

// Statistics holds extra data and counters not essential for a functioning
// search. None of these values feed back into search decisions, they only
// help judge move ordering quality and TT effectiveness between iterations.
type Statistics struct {
	CurrentSearchDepth      int
	CurrentExtraSearchDepth int
	CurrentRootMove         Move
	CurrentRootMoveIndex    int
	BestMoveChanges         int

	NodesVisited           uint64
	LeafPositionsEvaluated uint64
	CheckCounter           uint64
	CheckMateCounter       uint64
	StalemateCounter       uint64

	// counter for cut offs to measure quality of move ordering
	BetaCutoffs    uint64
	BetaCutoffs1st uint64

	TTHits  uint64
	TTMiss  uint64
	TTCuts  uint64
	TTStore uint64
}
