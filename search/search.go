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

// Package search implements negamax alpha-beta search with a transposition
// table and a quiescence extension on captures, driven by iterative
// deepening. The engine itself runs single-threaded; StartSearch/StopSearch
// keep a goroutine-and-semaphore shaped API so callers can treat a search
// as cancellable background work without the search logic itself needing
// any concurrency.
package search

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/FrankyGo/config"
	"github.com/frankkopp/FrankyGo/evaluator"
	"github.com/frankkopp/FrankyGo/logging"
	"github.com/frankkopp/FrankyGo/movegen"
	"github.com/frankkopp/FrankyGo/position"
	"github.com/frankkopp/FrankyGo/transpositiontable"
	. "github.com/frankkopp/FrankyGo/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetSearchLog()

// Search represents the data structure for a chess engine search.
// Create new instance with NewSearch()
type Search struct {
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	eval *evaluator.Evaluator
	tt   *transpositiontable.TtTable

	// one move generator instance per ply, so a recursive search call at
	// ply n+1 never clobbers the move buffer its caller at ply n is still
	// iterating over.
	mg []movegen.Movegen

	// previous search
	lastSearchResult *Result
	lastBestMove     Move

	// current search
	stopFlag        bool
	startTime       time.Time
	hasResult       bool
	currentPosition *position.Position
	searchLimits    *Limits
	timeLimit       time.Duration

	statistics Statistics
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance.
func NewSearch() *Search {
	s := &Search{
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
	}
	mgCount := MaxDepth + config.Settings.Search.QuiescenceMaxDepth + 2
	s.mg = make([]movegen.Movegen, mgCount)
	for i := range s.mg {
		s.mg[i] = movegen.New()
	}
	return s
}

// NewGame resets the search to be ready for a different game, clearing any
// transposition table state accumulated during the previous game.
func (s *Search) NewGame() {
	s.lastBestMove = MoveNone
	s.lastSearchResult = nil
	if s.tt != nil {
		s.tt.Clear()
	}
}

// StartSearch starts the search on the given position with the given search
// limits. Search can be stopped with StopSearch(). Search status can be
// checked with IsSearching(). This takes a copy of the position and the
// search limits.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.searchLimits = &sl
	s.currentPosition = &p
	go s.run(&p, &sl)
	// wait until search is running and initialization is done before
	// returning
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible. The search
// completes the move it is currently evaluating and returns the best move
// found so far.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching checks if search is running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching checks if search is running and blocks until search
// has stopped.
func (s *Search) WaitWhileSearching() {
	// get and release semaphore. Will block if search is running
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is called by StartSearch() in a separate goroutine. It runs the
// actual search until a search limit is reached or the search has been
// stopped by StopSearch().
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.initialize()
	s.hasResult = false
	s.stopFlag = false
	s.statistics = Statistics{}

	s.setupSearchLimits(sl)
	var timerWg sync.WaitGroup
	if s.timeLimit > 0 {
		timerWg.Add(1)
		go s.startTimer(&timerWg)
	}

	if s.tt != nil {
		log.Debugf("Transposition Table: Using TT (%s)", s.tt.String())
		s.tt.AgeEntries()
	} else {
		log.Debug("Transposition Table: Not using TT")
	}

	// release the init phase lock to signal the calling goroutine waiting
	// in StartSearch() to return
	s.initSemaphore.Release(1)

	searchResult := s.iterativeDeepening(p)
	s.stopFlag = true
	timerWg.Wait()

	searchResult.SearchTime = time.Since(s.startTime)
	s.lastSearchResult = searchResult
	s.lastBestMove = searchResult.BestMove
	s.hasResult = true

	log.Info(out.Sprintf("Search finished after %d ms, depth %d, %d nodes visited. NPS = %d nps",
		searchResult.SearchTime.Milliseconds(), searchResult.SearchDepth, s.statistics.NodesVisited,
		(int64(s.statistics.NodesVisited)*time.Second.Nanoseconds())/(1+searchResult.SearchTime.Nanoseconds())))
	log.Infof("Search result: %s", searchResult.String())
}

// iterativeDeepening runs search(p, depth, ...) for depth 1..maxDepth,
// keeping the best move of the deepest *completed* iteration. If the
// deadline or node limit expires mid-iteration, the partial result of that
// iteration is discarded and the previous iteration's result stands. If the
// search is stopped before depth 1 completes, the root's first legal move
// is returned so a best move is always available.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	maxDepth := s.searchLimits.Depth
	if maxDepth <= 0 {
		maxDepth = config.Settings.Search.MaxDepth
	}

	rootMoves := s.mg[0].GenerateLegalMoves(p, movegen.GenAll)
	if rootMoves.Len() == 0 {
		// game already over at the root: no move to return
		value := ValueZero
		if p.HasCheck() {
			value = -Mate
		}
		return &Result{BestMove: MoveNone, BestValue: value, SearchDepth: 0}
	}
	result := &Result{BestMove: rootMoves.At(0), BestValue: ValueNA, SearchDepth: 0}

	for depth := 1; depth <= maxDepth; depth++ {
		if s.stopConditions() {
			break
		}
		s.statistics.CurrentSearchDepth = depth

		value, bestMove := s.rootSearch(p, depth, -ValueInf, ValueInf)

		if s.stopFlag {
			// the iteration was cut short; its partial result is unreliable.
			// The previous iteration's result (or, at depth 1, the root's
			// first legal move set up before the loop) stands instead.
			break
		}

		result.BestMove = bestMove
		result.BestValue = value
		result.SearchDepth = depth
		s.lastBestMove = bestMove

		if value.IsCheckMateValue() {
			break
		}
	}

	return result
}

// initialize sets up the transposition table. Can be called several times
// without repeating the work once it is done.
func (s *Search) initialize() {
	if s.eval == nil {
		s.eval = evaluator.NewEvaluator()
	}
	if config.Settings.Search.UseTT {
		if s.tt == nil {
			sizeInMByte := config.Settings.Search.TTSize
			if sizeInMByte == 0 {
				sizeInMByte = 64
			}
			s.tt = transpositiontable.NewTtTable(sizeInMByte)
		}
	} else {
		log.Info("Transposition Table is disabled in configuration")
	}
}

// stopConditions reports whether the search should stop as soon as
// possible: an explicit stop request, a node limit, or a wall-clock
// deadline.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && int64(s.statistics.NodesVisited) >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	if s.timeLimit > 0 && time.Since(s.startTime) >= s.timeLimit {
		s.stopFlag = true
	}
	return s.stopFlag
}

func (s *Search) setupSearchLimits(sl *Limits) {
	s.timeLimit = sl.MoveTime
	if sl.Depth > 0 {
		log.Debugf("Search mode: Depth limited  : %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		log.Debugf("Search mode: Nodes limited  : %d", sl.Nodes)
	}
	if s.timeLimit > 0 {
		log.Debugf("Search mode: Time limited   : %d ms", s.timeLimit.Milliseconds())
	}
}

// startTimer stops the search once the configured time budget has elapsed.
// It is only started when a MoveTime budget was given.
func (s *Search) startTimer(wg *sync.WaitGroup) {
	defer wg.Done()
	for time.Since(s.startTime) < s.timeLimit && !s.stopFlag {
		time.Sleep(2 * time.Millisecond)
	}
	s.stopFlag = true
}

// //////////////////////////////////////////////////////
// Getter and Setter
// //////////////////////////////////////////////////////

// LastSearchResult returns a copy of the last search result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// LastStatistics returns a copy of the statistics gathered during the last
// search run, e.g. for a caller that wants node counts or TT hit rates.
func (s *Search) LastStatistics() Statistics {
	return s.statistics
}
