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

package types

import (
	"strconv"
	"strings"
)

// Value represents the positional value of a chess position in centipawns.
// Sized as int32 (not int16 as in earlier revisions) because the mate score
// convention (+/-Mate) does not fit a 16-bit range.
type Value int32

// abs is a tiny local helper so this package does not need to import a
// utility package just for one call.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Constants for values.
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueOne  Value = 1

	// Mate is the mate score. A mate in n plies is reported as Mate-n so
	// that shorter mates are preferred by the search.
	Mate Value = 100_000

	ValueInf Value = Mate + MaxDepth + 1
	ValueNA  Value = -ValueInf - 1

	ValueMax Value = Mate
	ValueMin Value = -ValueMax

	// ValueCheckMate is an alias for Mate kept for readability at call sites
	// that talk about "checkmate" rather than "mate score".
	ValueCheckMate Value = Mate

	// ValueCheckMateThreshold is the smallest absolute value that is
	// considered a mate score rather than a material/positional score.
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// IsValid checks if value is within the valid range (between Min and Max).
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue returns true if value is beyond the check mate threshold,
// which is the check mate value minus the maximum search depth.
func (v Value) IsCheckMateValue() bool {
	return abs(int(v)) > int(ValueCheckMateThreshold) && abs(int(v)) <= int(ValueCheckMate)
}

// String renders the value the way a UCI "info score" field would: either
// "cp <n>", "mate <n>" or "N/A".
func (v Value) String() string {
	var os strings.Builder
	switch {
	case v.IsCheckMateValue():
		os.WriteString("mate ")
		if v < ValueZero {
			os.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - abs(int(v))
		os.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		os.WriteString("N/A")
	default:
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}
