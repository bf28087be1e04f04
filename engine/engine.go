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

// Package engine is the public façade over position, movegen, evaluator and
// search. It owns a single Position and is the one boundary where a bad FEN,
// a bad move string or an empty undo stack turns into an Error value instead
// of a panic.
package engine

import (
	"regexp"

	"github.com/frankkopp/FrankyGo/evaluator"
	"github.com/frankkopp/FrankyGo/logging"
	"github.com/frankkopp/FrankyGo/movegen"
	"github.com/frankkopp/FrankyGo/position"
	"github.com/frankkopp/FrankyGo/search"
	. "github.com/frankkopp/FrankyGo/types"
)

var log = logging.GetLog()

// moveTextPattern matches coordinate notation: file+rank, file+rank, and an
// optional promotion letter (e.g. "e2e4", "a7a8q").
var moveTextPattern = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// State is the richer, internal game-over classification. Result collapses
// this down to the four outcomes a façade caller actually needs.
type State int

const (
	Active State = iota
	CheckmateWhite
	CheckmateBlack
	Stalemate
	DrawByFiftyMove
	DrawByInsufficientMaterial
	DrawByRepetition
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case CheckmateWhite:
		return "CheckmateWhite"
	case CheckmateBlack:
		return "CheckmateBlack"
	case Stalemate:
		return "Stalemate"
	case DrawByFiftyMove:
		return "DrawByFiftyMove"
	case DrawByInsufficientMaterial:
		return "DrawByInsufficientMaterial"
	case DrawByRepetition:
		return "DrawByRepetition"
	default:
		return "Unknown"
	}
}

// Result is the façade-level game outcome.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case Ongoing:
		return "Ongoing"
	case WhiteWins:
		return "WhiteWins"
	case BlackWins:
		return "BlackWins"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// SearchInfo reports on the most recently finished PlayMove search.
type SearchInfo struct {
	Nodes  uint64
	TTHits uint64
	Depth  int
	TimeMs int64
}

// Engine owns one Position, one Evaluator and one Search (which in turn
// owns the transposition table), wiring them together behind a single
// error-returning surface.
type Engine struct {
	pos    *position.Position
	eval   *evaluator.Evaluator
	search *search.Search
	mg     movegen.Movegen
}

// New creates a ready-to-use Engine, set up at the standard starting
// position.
func New() *Engine {
	return &Engine{
		pos:    position.NewPosition(),
		eval:   evaluator.NewEvaluator(),
		search: search.NewSearch(),
		mg:     movegen.New(),
	}
}

// Reset returns the engine to the standard starting position and clears any
// search state left over from a previous game (transposition table, last
// best move).
func (e *Engine) Reset() {
	e.pos = position.NewPosition()
	e.search.NewGame()
}

// SetPosition replaces the current position with the one described by fen.
// A syntactically broken fen yields InputSyntax; a fen that parses but
// violates a basic chess invariant (more than one king of either color,
// the side not to move in check) yields IllegalPosition. On error the
// engine keeps its previous position untouched.
func (e *Engine) SetPosition(fen string) error {
	p, err := position.NewPositionFenChecked(fen)
	if err != nil {
		log.Debugf("rejected fen %q: %s", fen, err)
		return newError(InputSyntax, "invalid fen %q: %s", fen, err)
	}
	if err := checkBasicInvariants(p); err != nil {
		log.Debugf("rejected fen %q: %s", fen, err)
		return err
	}
	e.pos = p
	e.search.NewGame()
	return nil
}

// checkBasicInvariants rejects positions that parse as valid fen but are
// not valid chess positions: a missing or duplicated king for either
// color, or the side not on move already standing in check (which could
// only have been reached by an illegal move).
func checkBasicInvariants(p *position.Position) error {
	if p.PiecesBb(White, King).PopCount() != 1 {
		return newError(IllegalPosition, "white must have exactly one king")
	}
	if p.PiecesBb(Black, King).PopCount() != 1 {
		return newError(IllegalPosition, "black must have exactly one king")
	}
	opponent := p.NextPlayer().Flip()
	if p.IsAttacked(p.KingSquare(opponent), p.NextPlayer()) {
		return newError(IllegalPosition, "side not to move is in check")
	}
	return nil
}

// GetFen returns the current position as a FEN string.
func (e *Engine) GetFen() string {
	return e.pos.StringFen()
}

// LegalMoves returns every legal move in the current position, in
// coordinate notation (e.g. "e2e4", "a7a8q").
func (e *Engine) LegalMoves() []string {
	moves := e.mg.GenerateLegalMovesInOrder(e.pos)
	out := make([]string, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		out[i] = moves.At(i).StringUci()
	}
	return out
}

// ApplyMove parses text as coordinate notation, checks it against the
// legal move list of the current position, and if found plays it. The
// position is left unmodified if text is malformed or illegal.
func (e *Engine) ApplyMove(text string) error {
	if !moveTextPattern.MatchString(text) {
		return newError(InputSyntax, "malformed move text %q", text)
	}
	moves := e.mg.GenerateLegalMovesInOrder(e.pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == text {
			e.pos.DoMove(m)
			return nil
		}
	}
	return newError(IllegalMove, "%q is not a legal move in the current position", text)
}

// UndoMove reverts the most recent ApplyMove. NoHistory is returned, and
// the position left untouched, if there is nothing to undo.
func (e *Engine) UndoMove() error {
	if e.pos.MoveCount() == 0 {
		return newError(NoHistory, "no move to undo")
	}
	e.pos.UndoMove()
	return nil
}

// Evaluate scores the current position from White's perspective.
func (e *Engine) Evaluate() Value {
	return e.eval.Evaluate(e.pos)
}

// GameState classifies the current position in full, distinguishing
// checkmate's winner and the three optional draw rules.
func (e *Engine) GameState() State {
	if !e.mg.HasLegalMove(e.pos) {
		if e.pos.HasCheck() {
			if e.pos.NextPlayer() == White {
				return CheckmateWhite
			}
			return CheckmateBlack
		}
		return Stalemate
	}
	if e.pos.HalfMoveClock() >= 100 {
		return DrawByFiftyMove
	}
	if e.pos.HasInsufficientMaterial() {
		return DrawByInsufficientMaterial
	}
	if e.pos.CheckRepetitions(2) {
		return DrawByRepetition
	}
	return Active
}

// IsGameOver reports whether GameState is anything other than Active.
func (e *Engine) IsGameOver() bool {
	return e.GameState() != Active
}

// Result collapses GameState down to the outcome a caller usually wants:
// who won, or that it was a draw, or that play continues.
func (e *Engine) Result() Result {
	switch e.GameState() {
	case CheckmateWhite:
		return BlackWins
	case CheckmateBlack:
		return WhiteWins
	case Stalemate, DrawByFiftyMove, DrawByInsufficientMaterial, DrawByRepetition:
		return Draw
	default:
		return Ongoing
	}
}

// PlayMove runs a search bounded by limits, plays the move it returns, and
// reports that move's coordinate text. If the position is already game
// over, IllegalPosition is returned and nothing is played.
func (e *Engine) PlayMove(limits search.Limits) (string, error) {
	if e.IsGameOver() {
		return "", newError(IllegalPosition, "no legal move: game is over (%s)", e.GameState())
	}
	e.search.StartSearch(*e.pos, limits)
	e.search.WaitWhileSearching()
	result := e.search.LastSearchResult()
	if result.BestMove == MoveNone {
		return "", newError(Internal, "search returned no move in a position with legal moves")
	}
	e.pos.DoMove(result.BestMove)
	return result.BestMove.StringUci(), nil
}

// LastSearchInfo reports statistics from the most recently finished
// PlayMove search.
func (e *Engine) LastSearchInfo() SearchInfo {
	result := e.search.LastSearchResult()
	stats := e.search.LastStatistics()
	return SearchInfo{
		Nodes:  stats.NodesVisited,
		TTHits: stats.TTHits,
		Depth:  result.SearchDepth,
		TimeMs: result.SearchTime.Milliseconds(),
	}
}
