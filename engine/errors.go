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

package engine

import "fmt"

// ErrorKind discriminates the ways an Engine operation can fail. The core
// never panics or aborts the process at this boundary; every failure path
// returns one of these, with the Position left unmutated.
type ErrorKind int

const (
	// InputSyntax: FEN or move text malformed.
	InputSyntax ErrorKind = iota
	// IllegalMove: syntactically valid move not in the legal move set for
	// the current position.
	IllegalMove
	// IllegalPosition: FEN parses but violates basic invariants.
	IllegalPosition
	// NoHistory: UndoMove with an empty undo stack.
	NoHistory
	// Internal: reserved for invariant violations; must never occur in a
	// release build.
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case InputSyntax:
		return "InputSyntax"
	case IllegalMove:
		return "IllegalMove"
	case IllegalPosition:
		return "IllegalPosition"
	case NoHistory:
		return "NoHistory"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the discriminated error value returned at the Engine boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}
