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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/FrankyGo/config"
	myLogging "github.com/frankkopp/FrankyGo/logging"
	"github.com/frankkopp/FrankyGo/position"
	. "github.com/frankkopp/FrankyGo/types"
)

// Evaluator  represents a data structure and functionality fo
// evaluating chess positions by material and piece-square-table
// positional values.
//  Create a new instance with NewEvaluator()
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// Evaluate calculates a value for a chess position using material and
// positional heuristics. The result is always from White's perspective:
// positive favors White regardless of whose move it is.
func (e *Evaluator) Evaluate(position *position.Position) Value {
	var value Value = 0

	gamePhaseFactor := position.GamePhaseFactor()

	value += e.material(position, gamePhaseFactor)
	value += e.positional(position, gamePhaseFactor)

	return value
}

// EvaluateFromStm calls Evaluate and flips the sign for Black to move, so
// a negamax search always sees "higher is better for the side to move". It
// also adds a small tempo bonus for the side to move, which helps keep
// successive plies from evaluating too similarly.
func (e *Evaluator) EvaluateFromStm(position *position.Position) Value {
	gamePhaseFactor := position.GamePhaseFactor()
	value := e.Evaluate(position)

	if position.NextPlayer() == Black {
		value *= -1
	}

	value += Value(float64(config.Settings.Eval.Tempo) * gamePhaseFactor)

	return value
}

func (e *Evaluator) material(position *position.Position, gamePhaseFactor float64) Value {
	return position.Material(White) - position.Material(Black)
}

func (e *Evaluator) positional(position *position.Position, gamePhaseFactor float64) Value {
	return Value(float64(position.PsqMidValue(White)-position.PsqMidValue(Black))*gamePhaseFactor +
		float64(position.PsqEndValue(White)-position.PsqEndValue(Black))*(1-gamePhaseFactor))
}
