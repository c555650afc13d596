/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
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

import "fmt"

// Square identifies one of the 64 board squares. The zero value is SqA1;
// SqNone (-1) is the reserved sentinel for "no square" and must never be
// treated as a valid board position.
type Square int8

// Board squares, A1 through H8, indexed file-major within each rank.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqLength = 64
)

// SqNone is the sentinel for "no square". It must be distinct from every
// valid index, never a smuggled -1 read as a board position.
const SqNone Square = -1

// IsValid reports whether sq addresses one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqLength
}

// FileOf returns the file component (0=a..7=h) of sq.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank component (0=rank1..7=rank8) of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// SquareOf builds a square from a file and rank. Returns SqNone if either
// coordinate is out of [0,7].
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)*8 + int(f))
}

// MakeSquare parses a two-character algebraic square such as "e4". Returns
// SqNone if s is not a well-formed algebraic square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String renders sq in algebraic notation, or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// TryOffset applies a file/rank delta to sq and returns the resulting
// square, or SqNone if either resulting coordinate would leave the board.
func (sq Square) TryOffset(df, dr int) Square {
	if !sq.IsValid() {
		return SqNone
	}
	nf := int(sq.FileOf()) + df
	nr := int(sq.RankOf()) + dr
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return SqNone
	}
	return SquareOf(File(nf), Rank(nr))
}

// mustOffset is TryOffset but panics on an out-of-board result, for callers
// that already know the offset is legal.
func (sq Square) mustOffset(df, dr int) Square {
	to := sq.TryOffset(df, dr)
	if to == SqNone {
		panic(fmt.Sprintf("out of board index: %s + (%d,%d)", sq, df, dr))
	}
	return to
}
