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
	"github.com/frankkopp/FrankyGo/config"
	"github.com/frankkopp/FrankyGo/movearray"
	"github.com/frankkopp/FrankyGo/movegen"
	"github.com/frankkopp/FrankyGo/position"
	. "github.com/frankkopp/FrankyGo/types"
)

// rootSearch runs one depth of the iterative deepening loop for the root
// position. Root moves are searched like any other node but the best move
// found is additionally returned to the caller so iterativeDeepening can
// keep it even if the next depth gets cancelled mid-iteration.
func (s *Search) rootSearch(p *position.Position, depth int, alpha Value, beta Value) (Value, Move) {
	moves := s.mg[0].GenerateLegalMoves(p, movegen.GenAll)
	if moves.Len() == 0 {
		if p.HasCheck() {
			return -Mate, MoveNone
		}
		return ValueZero, MoveNone
	}

	orderMoves(moves, s.lastBestMove)

	bestMove := moves.At(0)
	bestValue := -ValueInf
	for i := 0; i < moves.Len(); i++ {
		if i > 0 && s.stopConditions() {
			break
		}
		move := moves.At(i)
		s.statistics.CurrentRootMove = move
		s.statistics.CurrentRootMoveIndex = i

		p.DoMove(move)
		value := -s.search(p, depth-1, 1, -beta, -alpha)
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = move
			if value > alpha {
				alpha = value
			}
		}
		if alpha >= beta {
			s.statistics.BetaCutoffs++
			if i == 0 {
				s.statistics.BetaCutoffs1st++
			}
			break
		}
	}

	if s.tt != nil {
		s.tt.Put(p.ZobristKey(), bestMove, valueToTT(bestValue, 0), int8(depth), ValueExact, false, true)
		s.statistics.TTStore++
	}

	return bestValue, bestMove
}

// search is the negamax alpha-beta recursion used below the root. ply counts
// plies from the search root and feeds both the mate-distance TT adjustment
// and the returned mate score.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value) Value {
	s.statistics.NodesVisited++

	if s.stopConditions() {
		return ValueZero
	}

	alphaOrig := alpha
	ttMove := MoveNone

	if s.tt != nil {
		if entry := s.tt.Probe(p.ZobristKey()); entry != nil {
			s.statistics.TTHits++
			ttMove = entry.Move
			if int(entry.Depth) >= depth {
				ttValue := valueFromTT(entry.Value, ply)
				switch entry.Type {
				case ValueExact:
					s.statistics.TTCuts++
					return ttValue
				case ValueBeta:
					if ttValue >= beta {
						s.statistics.TTCuts++
						return ttValue
					}
				case ValueAlpha:
					if ttValue <= alpha {
						s.statistics.TTCuts++
						return ttValue
					}
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	if depth == 0 {
		if p.HasCheck() && !s.mg[ply].HasLegalMove(p) {
			s.statistics.CheckMateCounter++
			return -Mate + Value(ply)
		}
		return s.quiescence(p, ply, 0, alpha, beta)
	}

	moves := s.mg[ply].GenerateLegalMoves(p, movegen.GenAll)
	if moves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.CheckMateCounter++
			return -Mate + Value(ply)
		}
		s.statistics.StalemateCounter++
		return ValueZero
	}

	orderMoves(moves, ttMove)

	bestMove := MoveNone
	bestValue := -ValueInf
	for i := 0; i < moves.Len(); i++ {
		if i > 0 && s.stopConditions() {
			break
		}
		move := moves.At(i)

		p.DoMove(move)
		value := -s.search(p, depth-1, ply+1, -beta, -alpha)
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = move
			if value > alpha {
				alpha = value
			}
		}
		if alpha >= beta {
			s.statistics.BetaCutoffs++
			if i == 0 {
				s.statistics.BetaCutoffs1st++
			}
			break
		}
	}

	if s.tt != nil && bestMove != MoveNone {
		var vt ValueType
		switch {
		case bestValue <= alphaOrig:
			vt = ValueAlpha
		case bestValue >= beta:
			vt = ValueBeta
		default:
			vt = ValueExact
		}
		s.tt.Put(p.ZobristKey(), bestMove, valueToTT(bestValue, ply), int8(depth), vt, false, false)
		s.statistics.TTStore++
	}

	return bestValue
}

// quiescence extends the search along captures only, to avoid the horizon
// effect of cutting off the search mid-exchange. qDepth counts plies since
// entering quiescence and bounds the recursion independently of the
// negamax depth, which has already reached zero by the time quiescence
// starts.
func (s *Search) quiescence(p *position.Position, ply int, qDepth int, alpha Value, beta Value) Value {
	s.statistics.NodesVisited++
	s.statistics.LeafPositionsEvaluated++

	standPat := s.eval.EvaluateFromStm(p)

	if !config.Settings.Search.UseQuiescence || qDepth >= config.Settings.Search.QuiescenceMaxDepth {
		return standPat
	}

	if config.Settings.Search.UseQSStandpat {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	moves := s.mg[ply].GenerateLegalMoves(p, movegen.GenCap)
	for i := 0; i < moves.Len(); i++ {
		move := moves.At(i)
		if p.GetPiece(move.To()).TypeOf() == King {
			continue // capturing the king means an illegal position slipped through
		}

		p.DoMove(move)
		value := -s.quiescence(p, ply+1, qDepth+1, -beta, -alpha)
		p.UndoMove()

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}

// orderMoves moves ttMove to the front of an already MVV-LVA/positionally
// sorted move list, without disturbing the relative order of the rest.
func orderMoves(moves *movearray.MoveArray, ttMove Move) {
	if ttMove == MoveNone {
		return
	}
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i) == ttMove {
			for j := i; j > 0; j-- {
				moves.Set(j, moves.At(j-1))
			}
			moves.Set(0, ttMove)
			return
		}
	}
}

// valueToTT converts a search value into the form stored in the
// transposition table: mate scores are rebased from "plies from here" to
// "plies from the position in which they are stored" by adding/subtracting
// the current ply, so a mate score stays valid no matter how far from the
// search root the TT entry is later retrieved.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT is the inverse of valueToTT, rebasing a stored mate score back
// to "plies from the current search root" before it is used as a cutoff or
// returned.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}
