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

package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/FrankyGo/assert"
	. "github.com/frankkopp/FrankyGo/types"
)

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution
type Key uint64

// Position
// This struct represents the chess board and its position.
// It uses a 8x8 piece board and bitboards, a stack for undo moves, zobrist keys
// for transposition tables, piece lists, material and positional value counter.
//
// Needs to be created with NewPosition() or NewPositionFen(fen string)
type Position struct {

	// The zobrist key to use as a hash key in transposition tables
	// The zobrist key will be updated incrementally every time one of the the
	// state variables change.
	zobristKey Key

	// Board State
	// unique chess position (exception is 3-fold repetition
	// which is also not represented in a FEN string)
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// Extended Board State
	// not necessary for a unique position
	// special for king squares
	kingSquare [ColorLength]Square
	// half move number - the actual half move number to determine the full move number
	nextHalfMoveNumber int
	// piece bitboards
	piecesBb [ColorLength][PtLength]Bitboard
	// occupied bitboards, one per color
	occupiedBb [ColorLength]Bitboard
	// history information for undo and repetition detection
	historyCounter int
	history        [maxHistory]historyState

	// Calculated by doMove/undoMove

	// Material value will always be up to date
	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value
	// Positional value will always be up to date
	psqMidValue [ColorLength]Value
	psqEndValue [ColorLength]Value
	// Game phase value
	gamePhase int

	// caches a hasCheck Flag for the current position. Will be set
	// after a call to hasCheck() and reset to TBD every time a move is made or
	// unmade.
	hasCheckFlag int
}

type historyState struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enpassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
}

const maxHistory int = MaxMoves

// state flag for cached values
const (
	flagTBD   int = 0
	flagFalse int = 1
	flagTrue  int = 2
)

var initialized = false

// StartFen is the fen of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// //////////////////////////////////////////////////////
// // Public functions
// //////////////////////////////////////////////////////

// NewPosition creates a new position with Start Fen as default
func NewPosition() *Position {
	return NewPositionFen(StartFen)
}

// NewPositionFen creates a new position with the given fen string
// as board position. Panics if fen is invalid; callers that need to
// report a bad FEN to a user (rather than crash) should use
// NewPositionFenChecked instead.
func NewPositionFen(fen string) *Position {
	p, e := NewPositionFenChecked(fen)
	if e != nil {
		panic(fmt.Sprintf("fen for position setup not valid and position can't be created: %s", e))
	}
	return p
}

// NewPositionFenChecked creates a new position from the given fen string,
// returning an error instead of panicking if the fen is malformed.
func NewPositionFenChecked(fen string) (*Position, error) {
	if !initialized {
		initZobrist()
		initialized = true
	}
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		return nil, e
	}
	return p, nil
}

// DoMove commits a move to the board. Due to performance there is no check if this
// move is legal on the current position. Legal check needs to be done
// beforehand. Usually the move will be generated by a MoveGenerator and
// therefore the move will be assumed legal anyway.
func (p *Position) DoMove(m Move) {
	assert.Assert(m.IsValid(), "Position DoMove: Invalid move %s", m.String())
	moveType := m.MoveType()
	fromSq := m.From()
	fromPc := p.board[fromSq]
	assert.Assert(fromPc != PieceNone, "Position DoMove: No piece on %s", fromPc.String())
	fromPt := fromPc.TypeOf()
	myColor := fromPc.ColorOf()
	assert.Assert(myColor == p.nextPlayer, "Position DoMove: Piece to move does not belong to next player %s", fromPc.String())
	toSq := m.To()
	targetPc := p.board[toSq]
	promPt := m.PromotionType()

	p.history[p.historyCounter] = historyState{
		p.zobristKey,
		m,
		fromPc,
		targetPc,
		p.castlingRights,
		p.enPassantSquare,
		p.halfMoveClock,
		p.hasCheckFlag}
	p.historyCounter++
	assert.Assert(p.historyCounter < MaxMoves, "Position DoMove: Can't have more moves than MaxMoves=%d", MaxMoves)

	switch moveType {
	case Normal:
		if p.castlingRights != CastlingNone && (CastlingMask.Has(fromSq) || CastlingMask.Has(toSq)) {
			p.invalidateCastlingRights(fromSq, toSq)
		}
		p.clearEnPassant()
		if targetPc != PieceNone { // capture
			p.removePiece(toSq)
			p.halfMoveClock = 0 // reset half move clock because of capture
		} else if fromPt == Pawn {
			p.halfMoveClock = 0                    // reset half move clock because of pawn move
			if SquareDistance(fromSq, toSq) == 2 { // pawn double - set en passant
				// set new en passant target field - always one "behind" the toSquare
				p.enPassantSquare = toSq.To(Direction(myColor.Flip().MoveDirection()) * North)
				p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()] // in
			}
		} else {
			p.halfMoveClock++
		}
		p.movePiece(fromSq, toSq)
	case Promotion:
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type promotion but From piece not pawn")
		assert.Assert(toSq.RankOf() == myColor.PromotionRank(), "Position DoMove: Promotion move but wrong Rank")
		if targetPc != PieceNone { // capture
			p.removePiece(toSq)
		}
		if p.castlingRights != CastlingNone && (CastlingMask.Has(fromSq) || CastlingMask.Has(toSq)) {
			p.invalidateCastlingRights(fromSq, toSq)
		}
		p.removePiece(fromSq)
		p.putPiece(MakePiece(myColor, promPt), toSq)
		p.clearEnPassant()
		p.halfMoveClock = 0 // reset half move clock because of pawn move
	case EnPassant:
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type en passant but from piece not pawn")
		assert.Assert(p.enPassantSquare != SqNone, "Position DoMove: EnPassant move type without en passant")
		capSq := toSq.To(Direction(myColor.Flip().MoveDirection()) * North)
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "Position DoMove: Captured en passant piece invalid")
		p.removePiece(capSq)
		p.movePiece(fromSq, toSq)
		p.clearEnPassant()
		p.halfMoveClock = 0 // reset half move clock because of pawn move
	case Castling:
		assert.Assert(fromPc == MakePiece(myColor, King), "Position DoMove: Move type castling but from piece not king")
		switch toSq {
		case SqG1:
			assert.Assert(p.castlingRights.Has(CastlingWhiteOO), "Position DoMove: White king side castling not available")
			assert.Assert(fromSq == SqE1, "Position DoMove: Castling from square not correct")
			assert.Assert(p.board[SqE1] == WhiteKing, "Position DoMove: SqE1 has no king for castling")
			assert.Assert(p.board[SqH1] == WhiteRook, "Position DoMove: SqH1 has no rook for castling")
			assert.Assert(p.getOccupied()&Intermediate(SqE1, SqH1) == 0, "Position DoMove: Castling king side blocked")

			p.movePiece(fromSq, toSq)                                    // King
			p.movePiece(SqH1, SqF1)                                      // Rook
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingWhite)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in;
		case SqC1:
			assert.Assert(p.castlingRights.Has(CastlingWhiteOOO), "Position DoMove: White queen side castling not available")
			assert.Assert(fromSq == SqE1, "Position DoMove: Castling from square not correct")
			assert.Assert(p.board[SqE1] == WhiteKing, "Position DoMove: SqE1 has no king for castling")
			assert.Assert(p.board[SqA1] == WhiteRook, "Position DoMove: SqA1 has no rook for castling")
			assert.Assert(p.getOccupied()&Intermediate(SqE1, SqA1) == 0, "Position DoMove: Castling queen side blocked")

			p.movePiece(fromSq, toSq)                                    // King
			p.movePiece(SqA1, SqD1)                                      // Rook
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingWhite)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		case SqG8:
			assert.Assert(p.castlingRights.Has(CastlingBlackOO), "Position DoMove: Black king side castling not available")
			assert.Assert(fromSq == SqE8, "Position DoMove: Castling from square not correct")
			assert.Assert(p.board[SqE8] == BlackKing, "Position DoMove: SqE8 has no king for castling")
			assert.Assert(p.board[SqH8] == BlackRook, "Position DoMove: SqH8 has no rook for castling")
			assert.Assert(p.getOccupied()&Intermediate(SqE8, SqH8) == 0, "Position DoMove: Castling king side blocked")

			p.movePiece(fromSq, toSq)                                    // King
			p.movePiece(SqH8, SqF8)                                      // Rook
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingBlack)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		case SqC8:
			assert.Assert(p.castlingRights.Has(CastlingBlackOOO), "Position DoMove: Black queen side castling not available")
			assert.Assert(fromSq == SqE8, "Position DoMove: Castling from square not correct")
			assert.Assert(p.board[SqE8] == BlackKing, "Position DoMove: SqE8 has no king for castling")
			assert.Assert(p.board[SqA8] == BlackRook, "Position DoMove: SqA8 has no rook for castling")
			assert.Assert(p.getOccupied()&Intermediate(SqE8, SqA8) == 0, "Position DoMove: Castling queen side blocked")

			p.movePiece(fromSq, toSq)                                    // King
			p.movePiece(SqA8, SqD8)                                      // Rook
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingBlack)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
			break
		default:
			panic("Invalid castle move!")
		}
		p.clearEnPassant()
		p.halfMoveClock++
	}

	p.hasCheckFlag = flagTBD
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoMove resets the position to a state before the last move has been made
func (p *Position) UndoMove() {
	assert.Assert(p.historyCounter > 0, "Position UndoMove: Cannot undo initial position")

	// Restore state part 1
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	move := p.history[p.historyCounter].move

	// undo piece move / restore board
	switch move.MoveType() {

	case Normal:
		p.movePiece(move.To(), move.From())
		if p.history[p.historyCounter].capturedPiece != PieceNone {
			p.putPiece(p.history[p.historyCounter].capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if p.history[p.historyCounter].capturedPiece != PieceNone {
			p.putPiece(p.history[p.historyCounter].capturedPiece, move.To())
		}
	case EnPassant:
		// ignore Zobrist Key as it will be restored via history
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(Direction(p.nextPlayer.Flip().MoveDirection())*North))
		break

	case Castling:
		// ignore Zobrist Key as it will be restored via history
		// castling rights are restored via history
		p.movePiece(move.To(), move.From()) // King
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1) // Rook
		case SqC1:
			p.movePiece(SqD1, SqA1) // Rook
		case SqG8:
			p.movePiece(SqF8, SqH8) // Rook
		case SqC8:
			p.movePiece(SqD8, SqA8) // Rook
		default:
			panic("Invalid castle move!")
		}
	}

	// restore state part 2
	p.castlingRights = p.history[p.historyCounter].castlingRights
	p.enPassantSquare = p.history[p.historyCounter].enpassantSquare
	p.halfMoveClock = p.history[p.historyCounter].halfMoveClock
	p.hasCheckFlag = p.history[p.historyCounter].hasCheckFlag
	p.zobristKey = p.history[p.historyCounter].zobristKey
}

// String returns a string representing the board instance. This
// includes the fen, a board matrix, game phase, material and pos values.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Next Player    : %s", p.nextPlayer.String()))
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Game Phase     : %d", p.gamePhase))
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Material White : %d", p.material[White]))
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Material Black : %d", p.material[Black]))
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Pos Value White: %d/%d", p.psqMidValue[White], p.psqEndValue[White]))
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Pos Value Black: %d/%d", p.psqMidValue[Black], p.psqEndValue[Black]))
	os.WriteString("\n")
	return os.String()
}

// StringFen returns a string with the FEN of the current position
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, Rank8-r)].Char())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// IsAttacked checks if the given square is attacked by a piece of the
// given color on the current position.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// non sliding
	if (PawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(AttacksBb(Knight, sq, 0)&p.piecesBb[by][Knight] != 0) ||
		(AttacksBb(King, sq, 0)&p.piecesBb[by][King] != 0) {
		return true
	}

	// sliding: reverse attack from sq, if it hits a slider of the
	// attacking color then that slider also attacks sq
	occupied := p.getOccupied()
	if AttacksBb(Bishop, sq, occupied)&p.piecesBb[by][Bishop] != 0 ||
		AttacksBb(Rook, sq, occupied)&p.piecesBb[by][Rook] != 0 ||
		AttacksBb(Queen, sq, occupied)&p.piecesBb[by][Queen] != 0 {
		return true
	}

	// en passant
	if p.enPassantSquare != SqNone {
		switch by {
		case White:
			if p.board[p.enPassantSquare.To(South)] == BlackPawn &&
				p.enPassantSquare.To(South) == sq {
				if p.board[sq.To(West)] == WhitePawn {
					return true
				}
				return p.board[sq.To(East)] == WhitePawn
			}
		case Black:
			if p.board[p.enPassantSquare.To(North)] == WhitePawn &&
				p.enPassantSquare.To(North) == sq {
				if p.board[sq.To(West)] == BlackPawn {
					return true
				}
				return p.board[sq.To(East)] == BlackPawn
			}
		}
	}
	return false
}

// IsLegalMove tests a move if it is legal on the current position.
// Basically tests if the king would be left in check after the move
// or if the king crosses an attacked square during castling.
func (p *Position) IsLegalMove(move Move) bool {
	if move.MoveType() == Castling {
		if p.IsAttacked(move.From(), p.nextPlayer.Flip()) {
			return false
		}
		switch move.To() {
		case SqG1:
			if p.IsAttacked(SqF1, p.nextPlayer.Flip()) {
				return false
			}
		case SqC1:
			if p.IsAttacked(SqD1, p.nextPlayer.Flip()) {
				return false
			}
		case SqG8:
			if p.IsAttacked(SqF8, p.nextPlayer.Flip()) {
				return false
			}
		case SqC8:
			if p.IsAttacked(SqD8, p.nextPlayer.Flip()) {
				return false
			}
		}
	}
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
	p.UndoMove()
	return legal
}

// WasLegalMove tests if the last move made on the position was legal.
func (p *Position) WasLegalMove() bool {
	if p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return false
	}
	if p.historyCounter > 0 {
		move := p.history[p.historyCounter-1].move
		if move.MoveType() == Castling {
			if p.IsAttacked(move.From(), p.nextPlayer) {
				return false
			}
			switch move.To() {
			case SqG1:
				if p.IsAttacked(SqF1, p.nextPlayer) {
					return false
				}
			case SqC1:
				if p.IsAttacked(SqD1, p.nextPlayer) {
					return false
				}
			case SqG8:
				if p.IsAttacked(SqF8, p.nextPlayer) {
					return false
				}
			case SqC8:
				if p.IsAttacked(SqD8, p.nextPlayer) {
					return false
				}
			}
		}
	}
	return true
}

// HasCheck returns true if the next player is in check. Cached per
// position and reset to TBD whenever a move is made or unmade.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCapturingMove determines if a move on this position is a capturing
// move including en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// CheckRepetitions returns true if the current position has occurred
// reps times before in the game history. A position occurring twice
// before (reps=2) signals a 3-fold repetition draw claim.
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	i := p.historyCounter - 2
	lastHalfMove := p.halfMoveClock
	for i >= 0 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
		}
		if counter >= reps {
			return true
		}
		i -= 2
	}
	return false
}

// HasInsufficientMaterial returns true if no side has enough material
// to force a mate.
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn].PopCount() == 0 && p.piecesBb[Black][Pawn].PopCount() == 0 {
		if p.materialNonPawn[White] < 400 && p.materialNonPawn[Black] < 400 {
			return true
		}
		if (p.materialNonPawn[White] == 2*Knight.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Knight.ValueOf() && p.materialNonPawn[White] <= Bishop.ValueOf()) {
			return true
		}
		if (p.materialNonPawn[White] == 2*Bishop.ValueOf() && p.materialNonPawn[Black] == Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Bishop.ValueOf() && p.materialNonPawn[White] == Bishop.ValueOf()) {
			return true
		}
		if p.materialNonPawn[White] == 2*Bishop.ValueOf() || p.materialNonPawn[Black] == 2*Bishop.ValueOf() {
			return false
		}
		if (p.materialNonPawn[White] < 2*Bishop.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[White] <= Bishop.ValueOf() && p.materialNonPawn[Black] < 2*Bishop.ValueOf()) {
			return true
		}
	}
	return false
}

// //////////////////////////////////////////////////////
// // Getters
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist hash key of the position.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// NextPlayer returns the color to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square, or PieceNone if empty.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the Bitboard for the given piece type of the given color.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns a Bitboard of all pieces currently on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.getOccupied()
}

// OccupiedBb returns a Bitboard of all pieces of color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// GamePhase returns the current game phase value, 24 at game start
// and decreasing as officers leave the board.
func (p *Position) GamePhase() int {
	return p.gamePhase
}

// GamePhaseFactor returns a factor between 0 and 1 reflecting the ratio
// between the current game phase and the maximum game phase.
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.gamePhase) / GamePhaseMax
}

// GetEnPassantSquare returns the en passant square or SqNone if not set.
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the castling rights of the position.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the current square of the king of color c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the position's half move clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Material returns the material value for the given color.
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// MaterialNonPawn returns the non pawn material value for the given color.
func (p *Position) MaterialNonPawn(c Color) Value {
	return p.materialNonPawn[c]
}

// PsqMidValue returns the positional value for the given color in the
// early game phase.
func (p *Position) PsqMidValue(c Color) Value {
	return p.psqMidValue[c]
}

// PsqEndValue returns the positional value for the given color in the
// late game phase.
func (p *Position) PsqEndValue(c Color) Value {
	return p.psqEndValue[c]
}

// MoveCount returns the number of moves played so far on this position,
// i.e. how many times UndoMove can be called before the history is empty.
func (p *Position) MoveCount() int {
	return p.historyCounter
}

// LastMove returns the last move made on the position, or MoveNone if
// the position has no history.
func (p *Position) LastMove() Move {
	if p.historyCounter <= 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the last move, or
// PieceNone if the last move was non-capturing or there is no history.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter <= 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// WasCapturingMove returns true if the last move made was a capturing move.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}

// //////////////////////////////////////////////////////
// // Private functions
// //////////////////////////////////////////////////////

func (p *Position) movePiece(fromSq Square, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	assert.Assert(p.board[square] == PieceNone, "tried to put piece on an occupied square: %s", square.String())
	assert.Assert(!p.piecesBb[color][pieceType].Has(square), "tried to set bit on pieceBb which is already set: %s", square.String())
	assert.Assert(!p.occupiedBb[color].Has(square), "tried to set bit on occupiedBb which is already set: %s", square.String())

	// update board
	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	// update bitboards
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	// zobrist
	p.zobristKey ^= zobristBase.pieces[piece][square]
	// game phase
	p.gamePhase += pieceType.GamePhaseValue()
	// material
	p.material[color] += pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] += pieceType.ValueOf()
	}
	// position value
	p.psqMidValue[color] += PosMidValue(piece, square)
	p.psqEndValue[color] += PosEndValue(piece, square)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	assert.Assert(p.board[square] != PieceNone, "tried to remove piece from an empty square: %s", square.String())
	assert.Assert(p.piecesBb[color][pieceType].Has(square), "tried to clear bit from pieceBb which is not set: %s", square.String())
	assert.Assert(p.occupiedBb[color].Has(square), "tried to clear bit from occupiedBb which is not set: %s", square.String())

	// update board
	p.board[square] = PieceNone
	// update bitboards
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	// zobrist
	p.zobristKey ^= zobristBase.pieces[removed][square]
	// game phase
	p.gamePhase -= pieceType.GamePhaseValue()
	// material
	p.material[color] -= pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] -= pieceType.ValueOf()
	}
	// position value
	p.psqMidValue[color] -= PosMidValue(removed, square)
	p.psqEndValue[color] -= PosEndValue(removed, square)
	return removed
}

func (p *Position) invalidateCastlingRights(from Square, to Square) {
	// check for castling rights invalidation
	if p.castlingRights&CastlingWhite != 0 {
		if from == SqE1 || to == SqE1 {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingWhite)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
		if p.castlingRights == CastlingWhiteOO && (from == SqH1 || to == SqH1) {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingWhiteOO)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
		if p.castlingRights == CastlingWhiteOOO && (from == SqA1 || to == SqA1) {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingWhiteOOO)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
	}
	if p.castlingRights&CastlingBlack != 0 {
		if from == SqE8 || to == SqE8 {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingBlack)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
		if p.castlingRights == CastlingBlackOOO && (from == SqA8 || to == SqA8) {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingBlackOOO)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
		if p.castlingRights == CastlingBlackOO && (from == SqH8 || to == SqH8) {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(CastlingBlackOO)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
	}
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey = p.zobristKey ^ zobristBase.enPassantFile[p.enPassantSquare.FileOf()] // out
		p.enPassantSquare = SqNone
	}
}

func (p *Position) getOccupied() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

func (p *Position) fen() string {
	var fen strings.Builder
	// pieces
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	// next player
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	// castling
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	// en passant
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	// half move clock
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	// full move number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))

	return fen.String()
}

// setupBoard sets up a board based on a fen. This is basically
// the only way to get a valid Position instance. Internal state
// will be setup as well as all struct data is initialized to 0.
func (p *Position) setupBoard(fen string) error {

	// we will analyse the fen and only require the initial board layout part
	// All other parts will have defaults. E.g. next player is white, no castling, etc.
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 {
		err := errors.New("fen must not be empty")
		return err
	}

	// make sure only valid chars are used
	match, _ := regexp.MatchString("[0-8pPnNbBrRqQkK/]+", fenParts[0])
	if !match {
		err := errors.New("fen position contains invalid characters")
		return err
	}

	// fen string starts at a8 and runs to h8
	// with / jumping to file A of next lower rank
	currentSquare := SqA8

	// loop over fen and check an execute information
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil { // is number
			currentSquare = Square(int(currentSquare) + (number * int(East)))
		} else if string(c) == "/" { // find rank separator
			currentSquare = currentSquare.To(South).To(South)
		} else { // find piece type
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				err := errors.New(fmt.Sprintf("invalid piece character: %s", string(c)))
				return err
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 { // after h1++ we reach a2 - a2 needs to be last current square
		err := errors.New("not reached last square (h1) after reading fen")
		return err
	}

	// set defaults
	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	// everything below is optional as we can apply defaults

	// next player
	if len(fenParts) >= 2 {
		match, _ = regexp.MatchString("^[w|b]$", fenParts[1])
		if !match {
			err := errors.New("fen next player contains invalid characters")
			return err
		}
		switch fenParts[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			{
				p.nextPlayer = Black
				p.zobristKey ^= zobristBase.nextPlayer
				p.nextHalfMoveNumber++
			}
		}
	}

	// castling rights
	if len(fenParts) >= 3 {
		match, _ = regexp.MatchString("^(K?Q?k?q?|-)$", fenParts[2])
		if !match {
			err := errors.New("fen castling rights contains invalid characters")
			return err
		}
		// are there  rights to be encoded?
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	// en passant
	if len(fenParts) >= 4 {
		match, _ = regexp.MatchString("^([a-h][1-8]|-)$", fenParts[3])
		if !match {
			err := errors.New("fen en passant square contains invalid characters")
			return err
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	// half move clock (50 moves rule)
	if len(fenParts) >= 5 {
		if number, e := strconv.Atoi(fenParts[4]); e == nil { // is number
			p.halfMoveClock = number
		} else {
			return e
		}
	}

	// move number
	if len(fenParts) >= 6 {
		// game move number - to be converted into next half move number (ply)
		if moveNumber, e := strconv.Atoi(fenParts[5]); e == nil { // is number
			if moveNumber == 0 {
				moveNumber = 1
			}
			p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
		} else {
			return e
		}
	}

	// return without error
	return nil
}
