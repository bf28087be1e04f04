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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed one bit per square (64 bit for each
// square on the board).
type Bitboard uint64

// various constant bitboards for convenience
//noinspection ALL
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8_Bb
	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb
)

// allDirections lists every ray direction a queen can move in; used to
// precompute per-square ray masks at init time.
var allDirections = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Bitboard returns a Bitboard with only the bit for this square set, reading
// from the pre-computed square-to-bitboard array.
func (sq Square) Bitboard() Bitboard {
	return sqBb[sq]
}

// Bb is a short alias for Bitboard.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// bitboard_ computes a single-square Bitboard directly, used only while the
// pre-computed tables themselves are being built.
func (sq Square) bitboard_() Bitboard {
	return Bitboard(uint64(1) << sq)
}

// Has reports whether the given square is set in the bitboard.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bitboard()
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bitboard()
}

// PopSquare removes the corresponding bit of the bitboard for the square.
func PopSquare(b Bitboard, s Square) Bitboard {
	return (b | s.Bitboard()) ^ s.Bitboard()
}

// PopSquare removes the corresponding bit of the bitboard for the square.
func (b *Bitboard) PopSquare(s Square) {
	*b = (*b | s.Bitboard()) ^ s.Bitboard()
}

// ShiftBitboard shifts all bits of a bitboard in the given direction by one
// square, masking off the file/rank the shift would otherwise wrap across.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the least significant bit of the bitboard translated to its
// Square (0 == SqA1). Returns SqNone for an empty bitboard.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant bit of the bitboard translated to its
// Square (63 == SqH8). Returns SqNone for an empty bitboard.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopCount returns the number of set squares in the bitboard.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// PopLsb returns the Lsb square and removes it from the bitboard. The given
// bitboard is changed directly.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// Str returns a string representation of the 64 bits.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%-0.64b", b)
}

// String returns a string representation of the 64 bits.
func (b Bitboard) String() string {
	return b.Str()
}

// StrBoard returns a representation of the Bitboard as an 8x8 board.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8 + 1; r != Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, r-1).Bitboard()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StrGrp returns a representation of the 64 bits grouped by rank, LSB to MSB
// (A1 B1 ... G8 H8).
func (b Bitboard) StrGrp() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", uint64(b)))
	return os.String()
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FileDistance returns the absolute distance in files between two files.
func FileDistance(f1 File, f2 File) int {
	return absInt(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between two ranks.
func RankDistance(r1 Rank, r2 Rank) int {
	return absInt(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance in squares between two squares.
func SquareDistance(s1 Square, s2 Square) int {
	return squareDistance[s1][s2]
}

// Ray returns the full ray of squares from sq going in direction d, stopping
// at the edge of the board. Does not include sq itself.
func (sq Square) Ray(d Direction) Bitboard {
	return rayBb[sq][directionIndex(d)]
}

// SlidingAttacks computes the squares attacked by a sliding piece standing on
// sq moving along the given directions, given the current board occupation.
// For each direction the full pre-computed ray is clipped at the first
// blocking square (the blocker itself is included, since it can be captured).
// This is deliberately a plain wrap-safe ray walk rather than a magic
// bitboard lookup: promotion or demotion paths, the pre-computed per-square,
// per-direction ray masks (built by stepping Square.To in init) keep this
// O(1) per direction without resorting to a perfect-hash attack table.
func SlidingAttacks(sq Square, occupied Bitboard, directions []Direction) Bitboard {
	attacks := BbZero
	for _, d := range directions {
		ray := sq.Ray(d)
		blockers := ray & occupied
		if blockers != BbZero {
			var blockSq Square
			if isPositiveDirection(d) {
				blockSq = blockers.Lsb()
			} else {
				blockSq = blockers.Msb()
			}
			ray &^= blockSq.Ray(d)
		}
		attacks |= ray
	}
	return attacks
}

// RookAttacks returns the attack set of a rook on sq given the occupation.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return SlidingAttacks(sq, occupied, rookDirections[:])
}

// BishopAttacks returns the attack set of a bishop on sq given the occupation.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return SlidingAttacks(sq, occupied, bishopDirections[:])
}

// QueenAttacks returns the attack set of a queen on sq given the occupation.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return SlidingAttacks(sq, occupied, queenDirections[:])
}

// AttacksBb returns the attack bitboard for a piece of type pt standing on sq
// given the current occupation. Pawn attacks are not handled here since they
// depend on color; use PawnAttacks instead.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	default:
		return BbZero
	}
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2 if they are
// aligned on a rank, file or diagonal, or BbZero if they are not.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediateBb[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and sqTo.
func (sq Square) Intermediate(sqTo Square) Bitboard {
	return intermediateBb[sq][sqTo]
}

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var queenDirections = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// isPositiveDirection reports whether the direction increases the square
// index monotonically (so the nearest blocker is the lowest set bit).
func isPositiveDirection(d Direction) bool {
	switch d {
	case North, East, Northeast, Northwest:
		return true
	default:
		return false
	}
}

func directionIndex(d Direction) int {
	for i, dd := range allDirections {
		if dd == d {
			return i
		}
	}
	panic(fmt.Sprintf("invalid ray direction %d", d))
}

// ////////////////////
// Pre computed tables, built once in initBb().

var sqBb [SqLength]Bitboard
var squareDistance [SqLength][SqLength]int
var rayBb [SqLength][8]Bitboard
var intermediateBb [SqLength][SqLength]Bitboard
var knightAttacks [SqLength]Bitboard
var kingAttacks [SqLength]Bitboard
var pawnAttacks [2][SqLength]Bitboard

// knightSteps lists the (file, rank) deltas of the eight knight jumps used to
// precompute the knight attack table, since knight jumps are not expressible
// as a single Direction step. King attacks are built from allDirections.
var knightSteps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard_()
	}

	// distance table
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] =
					maxInt(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}

	// per-square, per-direction ray masks, built by stepping to the edge of
	// the board using Square.To (which already guards file wraparound).
	for sq := SqA1; sq <= SqH8; sq++ {
		for i, d := range allDirections {
			ray := BbZero
			s := sq
			for {
				s = s.To(d)
				if !s.IsValid() {
					break
				}
				ray.PushSquare(s)
			}
			rayBb[sq][i] = ray
		}
	}

	// intermediate squares: for every aligned pair, the ray from sq1 minus
	// the ray from sq2 in the same direction (and minus sq2 itself).
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for i := range allDirections {
			remaining := rayBb[sq1][i]
			for remaining != BbZero {
				sq2 := remaining.PopLsb()
				intermediateBb[sq1][sq2] = rayBb[sq1][i] &^ rayBb[sq2][i] &^ sq2.Bitboard()
			}
		}
	}

	// knight and king pseudo attacks
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for _, step := range knightSteps {
			nf, nr := f+step[0], r+step[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightAttacks[sq].PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, d := range allDirections {
			if s := sq.To(d); s.IsValid() && SquareDistance(sq, s) == 1 {
				kingAttacks[sq].PushSquare(s)
			}
		}
		if s := sq.To(Northeast); s.IsValid() {
			pawnAttacks[White][sq].PushSquare(s)
		}
		if s := sq.To(Northwest); s.IsValid() {
			pawnAttacks[White][sq].PushSquare(s)
		}
		if s := sq.To(Southeast); s.IsValid() {
			pawnAttacks[Black][sq].PushSquare(s)
		}
		if s := sq.To(Southwest); s.IsValid() {
			pawnAttacks[Black][sq].PushSquare(s)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
