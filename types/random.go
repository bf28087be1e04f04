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

// Random is a xorshift64star pseudo random number generator. Taken directly
// from Stockfish, based on code written and dedicated to the public domain
// by Sebastiano Vigna (2014).
//  - Outputs 64-bit numbers
//  - Passes Dieharder and SmallCrush test batteries
//  - Does not require warm-up, no zeroland to escape
//  - Internal state is a single 64-bit integer
//  - Period is 2^64 - 1
// See <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type Random struct {
	s uint64
}

// NewRandom creates a new generator seeded with the given non-zero seed.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		panic("seed for xorshift64star generator must not be zero")
	}
	return Random{s: seed}
}

// Rand64 returns the next pseudo random 64 bit number.
func (r *Random) Rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
