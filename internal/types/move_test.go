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

func TestMoveEncodeDecode(t *testing.T) {
	m := NewMove(SqE2, SqE4, FlagPawnTwoUp)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, FlagPawnTwoUp, m.Flag())
	assert.False(t, m.IsPromotion())
}

func TestMovePromotion(t *testing.T) {
	m := NewMove(SqE7, SqE8, FlagPromoteQ)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.StringUci())
}

func TestMoveStringUciQuiet(t *testing.T) {
	m := NewMove(SqG1, SqF3, FlagNone)
	assert.Equal(t, "g1f3", m.StringUci())
}

func TestMoveNoneIsDistinct(t *testing.T) {
	m := NewMove(SqA1, SqA1, FlagNone)
	assert.NotEqual(t, MoveNone, m)
}
