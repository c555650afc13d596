/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopchess/chesscore/internal/types"
)

func TestPushBackAndAt(t *testing.T) {
	ms := New()
	a := types.NewMove(types.SqE2, types.SqE4, types.FlagPawnTwoUp)
	b := types.NewMove(types.SqG1, types.SqF3, types.FlagNone)
	ms.PushBack(a)
	ms.PushBack(b)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, a, ms.At(0))
	assert.Equal(t, b, ms.At(1))
}

func TestPushFrontPrioritizesMove(t *testing.T) {
	ms := New()
	ms.PushBack(types.NewMove(types.SqG1, types.SqF3, types.FlagNone))
	pv := types.NewMove(types.SqE2, types.SqE4, types.FlagPawnTwoUp)
	ms.PushFront(pv)
	assert.Equal(t, pv, ms.At(0))
	assert.Equal(t, 2, ms.Len())
}

func TestClearEmptiesList(t *testing.T) {
	ms := New()
	ms.PushBack(types.NewMove(types.SqA2, types.SqA4, types.FlagPawnTwoUp))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
}

func TestForEachVisitsAllInOrderAndStopsEarly(t *testing.T) {
	ms := New()
	moves := []types.Move{
		types.NewMove(types.SqA2, types.SqA3, types.FlagNone),
		types.NewMove(types.SqB2, types.SqB3, types.FlagNone),
		types.NewMove(types.SqC2, types.SqC3, types.FlagNone),
	}
	for _, m := range moves {
		ms.PushBack(m)
	}

	var visited []types.Move
	ms.ForEach(func(m types.Move) bool {
		visited = append(visited, m)
		return true
	})
	assert.Equal(t, moves, visited)

	var count int
	ms.ForEach(func(m types.Move) bool {
		count++
		return count < 2
	})
	assert.Equal(t, 2, count)
}

func TestStringRendersUciMoves(t *testing.T) {
	ms := New()
	ms.PushBack(types.NewMove(types.SqE2, types.SqE4, types.FlagPawnTwoUp))
	s := ms.String()
	assert.Contains(t, s, "MoveSlice[1]")
	assert.Contains(t, s, "e2e4")
}
