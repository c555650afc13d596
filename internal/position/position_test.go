/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/kopchess/chesscore/internal/types"
)

func TestNewIsStartingPosition(t *testing.T) {
	p := New()
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, WhiteRook, p.PieceAt(SqA1))
	assert.Equal(t, BlackKing, p.PieceAt(SqE8))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		p, err := NewFromFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestMalformedFen(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e5 0 1",
	}
	for _, fen := range cases {
		_, err := NewFromFen(fen)
		require.Error(t, err)
		_, ok := err.(*MalformedFEN)
		assert.True(t, ok, "expected MalformedFEN for %q, got %T", fen, err)
	}
}

func TestIllegalPositionNoKing(t *testing.T) {
	_, err := NewFromFen("8/8/8/8/8/8/8/8 w - - 0 1")
	require.Error(t, err)
	_, ok := err.(*IllegalPosition)
	assert.True(t, ok)
}

func TestIllegalPositionTooManyKings(t *testing.T) {
	_, err := NewFromFen("kk6/8/8/8/8/8/8/K7 w - - 0 1")
	require.Error(t, err)
	_, ok := err.(*IllegalPosition)
	assert.True(t, ok)
}

func TestDerivedBitboardsAfterParse(t *testing.T) {
	p := New()
	assert.Equal(t, p.ColorBb(White), p.Occupied()&p.ColorBb(White))
	assert.Equal(t, BbZero, p.ColorBb(White)&p.ColorBb(Black))
	assert.Equal(t, p.PieceBb(White, Bishop)|p.PieceBb(White, Queen), p.DiagSliders(White))
	assert.Equal(t, p.PieceBb(White, Rook)|p.PieceBb(White, Queen), p.OrthoSliders(White))
}

func TestMakeUnmakeQuietMoveRestoresPosition(t *testing.T) {
	p := New()
	before := p.Fen()
	undo := p.MakeMove(NewMove(SqG1, SqF3, FlagNone))
	assert.NotEqual(t, before, p.Fen())
	assert.Equal(t, Black, p.SideToMove())
	_ = undo
	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestMakeUnmakeCaptureRestoresPosition(t *testing.T) {
	p, err := NewFromFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)
	before := p.Fen()
	p.MakeMove(NewMove(SqE4, SqD5, FlagNone))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD5))
	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestMakeUnmakeEnPassantRestoresPosition(t *testing.T) {
	p, err := NewFromFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	before := p.Fen()
	p.MakeMove(NewMove(SqE5, SqD6, FlagEnPassantCapture))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, BlackPawn, p.PieceAt(SqD5))
}

func TestMakeUnmakeCastlingRestoresPosition(t *testing.T) {
	p, err := NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := p.Fen()
	p.MakeMove(NewMove(SqE1, SqG1, FlagCastle))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
}

func TestMakeUnmakePromotionRestoresPosition(t *testing.T) {
	p, err := NewFromFen("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	require.NoError(t, err)
	before := p.Fen()
	p.MakeMove(NewMove(SqA7, SqA8, FlagPromoteQ))
	assert.Equal(t, WhiteQueen, p.PieceAt(SqA8))
	p.UnmakeMove()
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, WhitePawn, p.PieceAt(SqA7))
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	clone := p.Clone()
	clone.MakeMove(NewMove(SqE2, SqE4, FlagPawnTwoUp))
	assert.NotEqual(t, p.Fen(), clone.Fen())
	assert.Equal(t, StartFen, p.Fen())
}
