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

package search

import "time"

// Limits bounds a single call to the search. A caller sets whichever
// dimensions it cares about; zero means "unlimited" for that dimension, but
// at least one of MoveTime or Depth should be set so the search terminates
// on its own.
type Limits struct {
	// MoveTime is the wall-clock budget for the whole iterative deepening
	// run. The driver consults it between completed depths and between
	// top-level moves within a depth. Zero means no time budget.
	MoveTime time.Duration

	// Depth caps the iterative deepening loop at this many plies. Zero
	// means use config.Settings.Search.MaxDepth.
	Depth int

	// Nodes stops the search once this many nodes have been visited
	// across the whole run. Zero means no node limit.
	Nodes int64
}

// NewLimits creates a new empty Limits instance and returns a pointer to it.
func NewLimits() *Limits {
	return &Limits{}
}
