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

package movegen

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/config"
	myLogging "github.com/frankkopp/FrankyGo/logging"
	"github.com/frankkopp/FrankyGo/movearray"
	"github.com/frankkopp/FrankyGo/position"
	. "github.com/frankkopp/FrankyGo/types"
)

var logTest *logging.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestMovegenString(t *testing.T) {
	mg := New()
	out.Println(mg.String())
}

func TestMovegenGeneratePawnMoves(t *testing.T) {
	mg := New()
	pos := position.NewPositionFen("1kr3nr/pp1pP1P1/2p1p3/3P1p2/1n1bP3/2P5/PP3PPP/RNBQKBNR w KQ -")
	moves := movearray.New(MaxMoves)

	mg.generatePawnMoves(pos, GenCap, &moves)
	assert.Equal(t, 9, moves.Len())

	moves.Clear()
	mg.generatePawnMoves(pos, GenNonCap, &moves)
	assert.Equal(t, 16, moves.Len())

	moves.Clear()
	mg.generatePawnMoves(pos, GenAll, &moves)
	assert.Equal(t, 25, moves.Len())
}

func TestMovegenGenerateCastling(t *testing.T) {
	mg := New()
	pos := position.NewPositionFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/R3K2R w KQkq -")
	moves := movearray.New(MaxMoves)

	mg.generateCastling(pos, GenAll, &moves)
	assert.Equal(t, 2, moves.Len())
	assert.Equal(t, "e1g1 e1c1", moves.StringUci())
	moves.Clear()

	pos = position.NewPositionFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/R3K2R b KQkq -")
	mg.generateCastling(pos, GenAll, &moves)
	assert.Equal(t, 2, moves.Len())
	assert.Equal(t, "e8g8 e8c8", moves.StringUci())
}

func TestMovegenGenerateKingMoves(t *testing.T) {
	mg := New()
	moves := movearray.New(MaxMoves)

	pos := position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	mg.generateKingMoves(pos, GenAll, &moves)
	assert.Equal(t, 3, moves.Len())
	assert.Equal(t, "e1d2 e1d1 e1f1", moves.StringUci())
	moves.Clear()

	pos = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R b KQkq -")
	mg.generateKingMoves(pos, GenAll, &moves)
	assert.Equal(t, 3, moves.Len())
	assert.Equal(t, "e8d7 e8d8 e8f8", moves.StringUci())
}

func TestMovegenGenerateMoves(t *testing.T) {
	mg := New()
	moves := movearray.New(MaxMoves)

	pos := position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	mg.generateMoves(pos, GenCap, &moves)
	assert.Equal(t, 7, moves.Len())
	assert.Equal(t, "f3d2 f3e5 d7e5 d7b6 d7f6 b5c6 e2d2", moves.StringUci())
	moves.Clear()

	pos = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R b KQkq -")
	mg.generateMoves(pos, GenNonCap, &moves)
	assert.Equal(t, 28, moves.Len())
	moves.Clear()

	pos = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R b KQkq -")
	mg.generateMoves(pos, GenAll, &moves)
	assert.Equal(t, 34, moves.Len())
}

func TestMovegenGeneratePseudoLegalMoves(t *testing.T) {
	mg := New()

	pos := position.NewPosition()
	moves := mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 20, moves.Len())

	pos = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 40, moves.Len())

	// 86 moves
	pos = position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 86, moves.Len())

	// 218 moves
	pos = position.NewPositionFen("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 218, moves.Len())
}

func TestMovegenGenerateLegalMoves(t *testing.T) {
	mg := New()

	pos := position.NewPosition()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 20, moves.Len())

	pos = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 38, moves.Len())

	// 86 pseudo legal, 83 legal
	pos = position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 83, moves.Len())

	// 218 moves, all legal
	pos = position.NewPositionFen("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 218, moves.Len())
}

func TestHasLegalMoves(t *testing.T) {
	mg := New()

	// check mate position
	pos := position.NewPositionFen("rn2kbnr/pbpp1ppp/8/1p2p1q1/4K3/3P4/PPP1PPPP/RNBQ1BNR w kq -")
	assert.False(t, mg.HasLegalMove(pos))
	assert.True(t, pos.HasCheck())

	// stale mate position
	pos = position.NewPositionFen("7k/5K2/6Q1/8/8/8/8/8 b - -")
	assert.False(t, mg.HasLegalMove(pos))
	assert.False(t, pos.HasCheck())

	// only en passant gets out of an otherwise empty move list
	pos = position.NewPositionFen("8/8/8/8/5Pp1/6P1/7k/K3BQ2 b - f3")
	assert.True(t, mg.HasLegalMove(pos))
	assert.False(t, pos.HasCheck())
}
