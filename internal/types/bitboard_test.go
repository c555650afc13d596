/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBb(t *testing.T) {
	assert.Equal(t, BitBoard(1), SquareBb(SqA1))
	assert.Equal(t, BitBoard(1)<<63, SquareBb(SqH8))
	assert.Equal(t, BbZero, SquareBb(SqNone))
}

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, 8, FileBb(FileA).PopCount())
	assert.Equal(t, 8, RankBb(Rank1).PopCount())
	assert.True(t, FileBb(FileA).Contains(SqA1))
	assert.True(t, FileBb(FileA).Contains(SqA8))
	assert.False(t, FileBb(FileA).Contains(SqB1))
}

func TestSetClearToggleContains(t *testing.T) {
	var b BitBoard
	b = b.Set(SqE4)
	assert.True(t, b.Contains(SqE4))
	b = b.Toggle(SqE4)
	assert.False(t, b.Contains(SqE4))
	b = b.Set(SqD4).Set(SqE4)
	b = b.Clear(SqD4)
	assert.False(t, b.Contains(SqD4))
	assert.True(t, b.Contains(SqE4))
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 2, BitBoard(0).Set(SqA1).Set(SqH8).PopCount())
}

func TestLsbMsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())
	b := BitBoard(0).Set(SqC3).Set(SqF6)
	assert.Equal(t, SqC3, b.Lsb())
	assert.Equal(t, SqF6, b.Msb())
}

func TestPopLSB(t *testing.T) {
	b := BitBoard(0).Set(SqA1).Set(SqB1).Set(SqC1)
	var popped []Square
	for !b.IsEmpty() {
		popped = append(popped, b.PopLSB())
	}
	assert.Equal(t, []Square{SqA1, SqB1, SqC1}, popped)
	assert.True(t, b.IsEmpty())
}

func TestAndOrXorNotAndNot(t *testing.T) {
	a := BitBoard(0).Set(SqA1).Set(SqB1)
	b := BitBoard(0).Set(SqB1).Set(SqC1)
	assert.Equal(t, BitBoard(0).Set(SqB1), a.And(b))
	assert.Equal(t, BitBoard(0).Set(SqA1).Set(SqB1).Set(SqC1), a.Or(b))
	assert.Equal(t, BitBoard(0).Set(SqA1).Set(SqC1), a.Xor(b))
	assert.Equal(t, BitBoard(0).Set(SqA1), a.AndNot(b))
	assert.Equal(t, BbAll, BbZero.Not())
}

func TestShift(t *testing.T) {
	b := SquareBb(SqA1)
	assert.Equal(t, SquareBb(SqB1), b.Shift(1))
	shifted := SquareBb(SqB1).Shift(-1)
	assert.Equal(t, SquareBb(SqA1), shifted)
}
