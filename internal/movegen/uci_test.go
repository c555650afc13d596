/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopchess/chesscore/internal/position"
)

func TestGetMoveFromUciFindsQuietMove(t *testing.T) {
	p := position.New()
	m, err := GetMoveFromUci(p, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestGetMoveFromUciFindsPromotion(t *testing.T) {
	p, err := position.NewFromFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	m, err := GetMoveFromUci(p, "a7a8q")
	require.NoError(t, err)
	assert.Equal(t, "a7a8q", m.StringUci())
}

func TestGetMoveFromUciAcceptsUppercasePromotionLetter(t *testing.T) {
	p, err := position.NewFromFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	m, err := GetMoveFromUci(p, "a7a8Q")
	require.NoError(t, err)
	assert.Equal(t, "a7a8q", m.StringUci())
}

func TestGetMoveFromUciRejectsMalformedString(t *testing.T) {
	p := position.New()
	_, err := GetMoveFromUci(p, "not-a-move")
	require.Error(t, err)
	_, ok := err.(*position.IllegalMove)
	assert.True(t, ok, "expected IllegalMove, got %T", err)
}

func TestGetMoveFromUciRejectsIllegalMove(t *testing.T) {
	p := position.New()
	// e2e5 is a well-formed square pair but not a legal pawn move.
	_, err := GetMoveFromUci(p, "e2e5")
	require.Error(t, err)
	_, ok := err.(*position.IllegalMove)
	assert.True(t, ok, "expected IllegalMove, got %T", err)
}

func TestApplyUciMakesTheMove(t *testing.T) {
	p := position.New()
	before := p.Fen()
	undo, err := ApplyUci(p, "e2e4")
	require.NoError(t, err)
	assert.NotNil(t, undo)
	assert.NotEqual(t, before, p.Fen())
	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestApplyUciRejectsIllegalMoveWithoutMutatingPosition(t *testing.T) {
	p := position.New()
	before := p.Fen()
	_, err := ApplyUci(p, "e2e5")
	require.Error(t, err)
	assert.Equal(t, before, p.Fen())
}
