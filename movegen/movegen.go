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

// Package movegen contains functionality to create moves on a
// chess position. It implements a pseudo legal move list, a legal
// move list (value sorted for search, or in natural reading order)
// and a check for whether any legal move exists.
package movegen

import (
	"github.com/frankkopp/FrankyGo/assert"
	"github.com/frankkopp/FrankyGo/movearray"
	"github.com/frankkopp/FrankyGo/position"
	. "github.com/frankkopp/FrankyGo/types"
)

// Movegen is an exported alias for the move generator type, so that callers
// needing one instance per ply (e.g. a recursive search) can declare a
// slice of them without reaching into package internals.
type Movegen = movegen

type movegen struct {
	pseudoLegalMoves   movearray.MoveArray
	legalMoves         movearray.MoveArray
	orderedMoves       movearray.MoveArray
	onDemandMoves      movearray.MoveArray
	killerMoves        movearray.MoveArray
	pvMove             Move
	currentODStage     int
	currentIteratorKey position.Key
	maxNumberOfKiller  int
}

// States for the on demand move generator
const (
	odNew = iota
	odPv  = iota
	od1   = iota
	od2   = iota
	od3   = iota
	od4   = iota
	od5   = iota
	od6   = iota
	od7   = iota
	od8   = iota
	odEnd = iota
)

// //////////////////////////////////////////////////////
// // Public functions
// //////////////////////////////////////////////////////

// GenMode generation modes for on demand move generation
type GenMode int

// GenMode generation modes for on demand move generation
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// New creates a new instance of a move generator
func New() movegen {
	tmpMg := movegen{
		pseudoLegalMoves:   movearray.New(MaxMoves),
		legalMoves:         movearray.New(MaxMoves),
		orderedMoves:       movearray.New(MaxMoves),
		onDemandMoves:      movearray.New(MaxMoves),
		killerMoves:        movearray.New(4),
		pvMove:             MoveNone,
		currentODStage:     odNew,
		currentIteratorKey: 0,
		maxNumberOfKiller:  2, // default
	}
	// tmpMg.pseudoLegalMoves.SetMinCapacity(6)
	// tmpMg.legalMoves.SetMinCapacity(6)
	// tmpMg.onDemandMoves.SetMinCapacity(6)
	return tmpMg
}

// GeneratePseudoLegalMoves generates pseudo moves for the next player. Does not check if
// king is left in check or passes an attacked square when castling or has been in check
// before castling. Disregards PV moves and Killer moves. They need to be handled after
// the returned MoveList.
func (mg *movegen) GeneratePseudoLegalMoves(position *position.Position, mode GenMode) *movearray.MoveArray {
	mg.pseudoLegalMoves.Clear()
	if mode&GenCap != 0 {
		mg.generatePawnMoves(position, GenCap, &mg.pseudoLegalMoves)
		mg.generateCastling(position, GenCap, &mg.pseudoLegalMoves)
		mg.generateKingMoves(position, GenCap, &mg.pseudoLegalMoves)
		mg.generateMoves(position, GenCap, &mg.pseudoLegalMoves)
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(position, GenNonCap, &mg.pseudoLegalMoves)
		mg.generateCastling(position, GenNonCap, &mg.pseudoLegalMoves)
		mg.generateKingMoves(position, GenNonCap, &mg.pseudoLegalMoves)
		mg.generateMoves(position, GenNonCap, &mg.pseudoLegalMoves)
	}
	// sort.Stable(&mg.pseudoLegalMoves)
	mg.pseudoLegalMoves.Sort()
	// remove internal sort value
	mg.pseudoLegalMoves.ForEach(func(i int) {
		mg.pseudoLegalMoves.Set(i, mg.pseudoLegalMoves.At(i).MoveOf())
	})
	return &mg.pseudoLegalMoves
}

// GenerateLegalMoves generates all legal moves for the next player by generating
// pseudo legal moves first and then filtering out moves which leave the mover's
// king in check (including moves castling through or out of check).
func (mg *movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *movearray.MoveArray {
	mg.legalMoves.Clear()
	pseudo := mg.GeneratePseudoLegalMoves(p, mode)
	pseudo.ForEach(func(i int) {
		if p.IsLegalMove(pseudo.At(i)) {
			mg.legalMoves.PushBack(pseudo.At(i))
		}
	})
	return &mg.legalMoves
}

// moveCategory ranks a move the way a human reading a move list expects:
// pawn pushes, then pawn captures, then piece moves in ascending piece
// value, then castling last.
func moveCategory(p *position.Position, m Move) int {
	if m.MoveType() == Castling {
		return 7
	}
	switch p.GetPiece(m.From()).TypeOf() {
	case Pawn:
		if p.IsCapturingMove(m) {
			return 1
		}
		return 0
	case Knight:
		return 2
	case Bishop:
		return 3
	case Rook:
		return 4
	case Queen:
		return 5
	case King:
		return 6
	default:
		return 8
	}
}

// GenerateLegalMovesInOrder generates all legal moves for the next player in
// natural chess reading order: pawn pushes, pawn captures, knight, bishop,
// rook, queen, king, then castling, each group ascending by origin square
// and then destination square. This is the order a caller listing moves for
// a human (or comparing a move list against a fixed expectation) wants; it
// is unrelated to the MVV-LVA/positional value GenerateLegalMoves embeds for
// search ordering, and generating it never touches that value-sorted path.
func (mg *movegen) GenerateLegalMovesInOrder(p *position.Position) *movearray.MoveArray {
	mg.orderedMoves.Clear()
	legal := mg.GenerateLegalMoves(p, GenAll)
	legal.ForEach(func(i int) {
		mg.orderedMoves.PushBack(legal.At(i))
	})
	// insertion sort, same technique as movearray.MoveArray.Sort, but by
	// category/from/to instead of the embedded search ordering value
	l := mg.orderedMoves.Len()
	for i := 1; i < l; i++ {
		tmp := mg.orderedMoves.At(i)
		j := i
		for j > 0 && lessMove(p, tmp, mg.orderedMoves.At(j-1)) {
			mg.orderedMoves.Set(j, mg.orderedMoves.At(j-1))
			j--
		}
		mg.orderedMoves.Set(j, tmp)
	}
	return &mg.orderedMoves
}

// lessMove reports whether a must be emitted before b in natural chess
// reading order.
func lessMove(p *position.Position, a, b Move) bool {
	ca, cb := moveCategory(p, a), moveCategory(p, b)
	if ca != cb {
		return ca < cb
	}
	if a.From() != b.From() {
		return a.From() < b.From()
	}
	return a.To() < b.To()
}

// HasLegalMove determines if the next player has at least one legal move. It
// generates the pseudo legal moves and stops at the first one that is legal,
// so the legality check is not run for the whole list. This is used to detect
// checkmate and stalemate.
func (mg *movegen) HasLegalMove(p *position.Position) bool {
	pseudo := mg.GeneratePseudoLegalMoves(p, GenAll)
	for i := 0; i < pseudo.Len(); i++ {
		if p.IsLegalMove(pseudo.At(i)) {
			return true
		}
	}
	return false
}

func (mg *movegen) String() string {
	return "movegen instance"
}

// //////////////////////////////////////////////////////
// // Private functions
// //////////////////////////////////////////////////////

func (mg *movegen) generatePawnMoves(position *position.Position, mode GenMode, ml *movearray.MoveArray) {

	nextPlayer := position.NextPlayer()
	myPawns := position.PiecesBb(nextPlayer, Pawn)
	oppPieces := position.OccupiedBb(nextPlayer.Flip())
	gamePhase := position.GamePhase()
	piece := MakePiece(nextPlayer, Pawn)

	// captures
	if mode&GenCap != 0 {

		// This algorithm shifts the own pawn bitboard in the direction of pawn captures
		// and ANDs it with the opponents pieces. With this we get all possible captures
		// and can easily create the moves by using a loop over all captures and using
		// the backward shift for the from-Square.
		// All moves get stable_sort values so that stable_sort order should be:
		//   captures: most value victim least value attacker - promotion piece value
		//   non captures: killer (TBD), promotions, castling, normal moves (position value)
		// Values for sorting are descending - the most valuable move has the highest value
		// values are not compatible to position evaluation values.

		var tmpCaptures, promCaptures Bitboard

		for _, dir := range []Direction{West, East} {
			// normal pawn captures - promotions first
			tmpCaptures = ShiftBitboard(myPawns, Direction(nextPlayer.MoveDirection())*North+dir) & oppPieces
			promCaptures = tmpCaptures & nextPlayer.PromotionRankBb()
			// promotion captures
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(Direction(nextPlayer.Flip().MoveDirection())*North - dir)
				// value is the delta of values from the two pieces involved plus the positional value
				value := position.GetPiece(toSquare).ValueOf() - position.GetPiece(fromSquare).ValueOf() +
					PosValue(piece, toSquare, gamePhase)
				// add the possible promotion moves to the move list and also add value of the promoted piece type
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Queen, value+Queen.ValueOf()))
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Knight, value+Knight.ValueOf()))
				// rook and bishops are usually redundant to queen promotion (except in stale mate situations)
				// therefore we give them lower sort order
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Rook, value+Rook.ValueOf()-Value(2000)))
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Bishop, value+Bishop.ValueOf()-Value(2000)))
			}
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(Direction(nextPlayer.Flip().MoveDirection())*North - dir)
				// value is the delta of values from the two pieces involved plus the positional value
				value := position.GetPiece(toSquare).ValueOf() - position.GetPiece(fromSquare).ValueOf() +
					PosValue(piece, toSquare, gamePhase)
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
			}
		}

		// en passant captures
		enPassantSquare := position.GetEnPassantSquare()
		if enPassantSquare != SqNone {
			for _, dir := range []Direction{West, East} {
				tmpCaptures = ShiftBitboard(enPassantSquare.Bb(),
					Direction(nextPlayer.Flip().MoveDirection())*North+dir) & myPawns
				if tmpCaptures != 0 {
					fromSquare := tmpCaptures.PopLsb()
					toSquare := fromSquare.To(Direction(nextPlayer.MoveDirection())*North - dir)
					// value is the positional value of the piece at this game phase
					value := PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, EnPassant, PtNone, value))
				}
			}
		}
	}

	// non captures
	if mode&GenNonCap != 0 {

		//  Move my pawns forward one step and keep all on not occupied squares
		//  Move pawns now on rank 3 (rank 6) another square forward to check for pawn doubles.
		//  Loop over pawns remaining on unoccupied squares and add moves.

		// pawns - check step one to unoccupied squares
		tmpMoves := ShiftBitboard(myPawns, Direction(nextPlayer.MoveDirection())*North) & ^position.OccupiedAll()
		// pawns double - check step two to unoccupied squares
		tmpMovesDouble := ShiftBitboard(tmpMoves&nextPlayer.PawnDoubleRank(), Direction(nextPlayer.MoveDirection())*North) & ^position.OccupiedAll()

		// single pawn steps - promotions first
		promMoves := tmpMoves & nextPlayer.PromotionRankBb()
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(Direction(nextPlayer.Flip().MoveDirection()) * North)
			// value for non captures is lowered by 10k
			value := Value(-10_000)
			// add the possible promotion moves to the move list and also add value of the promoted piece type
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Queen, value+Queen.ValueOf()))
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Knight, value+Knight.ValueOf()))
			// rook and bishops are usually redundant to queen promotion (except in stale mate situations)
			// therefore we give them lower sort order
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Rook, value+Rook.ValueOf()-Value(2000)))
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Bishop, value+Bishop.ValueOf()-Value(2000)))
		}
		// double pawn steps
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.To(Direction(nextPlayer.Flip().MoveDirection()) * North).
				To(Direction(nextPlayer.Flip().MoveDirection()) * North)
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
		// normal single pawn steps
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(Direction(nextPlayer.Flip().MoveDirection()) * North)
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
	}
}

func (mg *movegen) generateCastling(position *position.Position, mode GenMode, ml *movearray.MoveArray) {
	nextPlayer := position.NextPlayer()
	occupiedBB := position.OccupiedAll()

	// castling - pseudo castling - we will not check if we are in check after the move
	// or if we have passed an attacked square with the king or if the king has been in check

	if mode&GenNonCap != 0 && position.CastlingRights() != CastlingNone {
		cr := position.CastlingRights()
		if nextPlayer == White { // white
			if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupiedBB == 0 {
				if assert.DEBUG {
					assert.Assert(position.KingSquare(White) == SqE1, "MoveGen Castling: White King not on e1")
					assert.Assert(position.GetPiece(SqH1) == WhiteRook, "MoveGen Castling: White Rook not on h1")
				}
				ml.PushBack(CreateMoveValue(SqE1, SqG1, Castling, PtNone, Value(-5000)))
			}
			if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupiedBB == 0 {
				if assert.DEBUG {
					assert.Assert(position.KingSquare(White) == SqE1, "MoveGen Castling: White King not on e1")
					assert.Assert(position.GetPiece(SqA1) == WhiteRook, "MoveGen Castling: White Rook not on a1")
				}
				ml.PushBack(CreateMoveValue(SqE1, SqC1, Castling, PtNone, Value(-5000)))
			}
		} else { // black
			if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupiedBB == 0 {
				if assert.DEBUG {
					assert.Assert(position.KingSquare(Black) == SqE8, "MoveGen Castling: Black King not on e8")
					assert.Assert(position.GetPiece(SqH8) == BlackRook, "MoveGen Castling: Black Rook not on h8")
				}
				ml.PushBack(CreateMoveValue(SqE8, SqG8, Castling, PtNone, Value(-5000)))
			}
			if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupiedBB == 0 {
				if assert.DEBUG {
					assert.Assert(position.KingSquare(Black) == SqE8, "MoveGen Castling: Black King not on e8")
					assert.Assert(position.GetPiece(SqA8) == BlackRook, "MoveGen Castling: Black Rook not on a8")
				}
				ml.PushBack(CreateMoveValue(SqE8, SqC8, Castling, PtNone, Value(-5000)))
			}
		}
	}
}

func (mg *movegen) generateKingMoves(position *position.Position, mode GenMode, ml *movearray.MoveArray) {
	nextPlayer := position.NextPlayer()
	piece := MakePiece(nextPlayer, King)
	gamePhase := position.GamePhase()
	kingSquareBb := position.PiecesBb(nextPlayer, King)
	if assert.DEBUG {
		assert.Assert(kingSquareBb.PopCount() == 1,
			"Chess always needs exactly one king. Found=%d ", kingSquareBb.PopCount())
	}
	fromSquare := kingSquareBb.PopLsb()

	// pseudo attacks include all moves no matter if the king would be in check
	pseudoMoves := AttacksBb(King, fromSquare, BbZero)

	// captures
	if mode&GenCap != 0 {
		captures := pseudoMoves & position.OccupiedBb(nextPlayer.Flip())
		for captures != 0 {
			toSquare := captures.PopLsb()
			value := position.GetPiece(toSquare).ValueOf() - position.GetPiece(fromSquare).ValueOf() +
				PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
	}

	// non captures
	if mode&GenNonCap != 0 {
		nonCaptures := pseudoMoves &^ position.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
	}
}

func (mg *movegen) generateMoves(position *position.Position, mode GenMode, ml *movearray.MoveArray) {
	nextPlayer := position.NextPlayer()
	gamePhase := position.GamePhase()
	occupiedBb := position.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := position.PiecesBb(nextPlayer, pt)
		piece := MakePiece(nextPlayer, pt)

		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			pseudoMoves := AttacksBb(pt, fromSquare, BbZero)

			// captures
			if mode&GenCap != 0 {
				captures := pseudoMoves & position.OccupiedBb(nextPlayer.Flip())
				for captures != 0 {
					toSquare := captures.PopLsb()
					if pt > Knight { // sliding pieces
						if Intermediate(fromSquare, toSquare)&occupiedBb == 0 {
							value := position.GetPiece(toSquare).ValueOf() - position.GetPiece(fromSquare).ValueOf() +
								PosValue(piece, toSquare, gamePhase)
							ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
						}
					} else { // king and knight cannot be blocked
						value := position.GetPiece(toSquare).ValueOf() - position.GetPiece(fromSquare).ValueOf() +
							PosValue(piece, toSquare, gamePhase)
						ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
					}
				}
			}

			// non captures
			if mode&GenNonCap != 0 {
				nonCaptures := pseudoMoves &^ occupiedBb
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					if pt > Knight { // sliding pieces
						if Intermediate(fromSquare, toSquare)&occupiedBb == 0 {
							value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
							ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
						}
					} else { // king and knight cannot be blocked
						value := Value(-10_000) + PosValue(piece, toSquare, gamePhase)
						ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
					}
				}
			}
		}
	}
}
