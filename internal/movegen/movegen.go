/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Package movegen enumerates legal moves for a position, consuming the
// attack-data snapshot the position package computes rather than probing
// with make/unmake for every candidate (spec §4.6). The one exception is
// the en-passant discovered-check edge case, which is verified by a
// targeted simulation on a cloned position.
package movegen

import (
	"github.com/kopchess/chesscore/internal/attacks"
	"github.com/kopchess/chesscore/internal/moveslice"
	"github.com/kopchess/chesscore/internal/position"
	. "github.com/kopchess/chesscore/internal/types"
)

// MaxMoves bounds the legal moves reachable from any single chess
// position - comfortably above the ~218 theoretical maximum.
const MaxMoves = 256

// GenerateLegalMoves returns every legal move available to the side to
// move in p. The generator borrows p immutably; it is a free function
// rather than a struct carrying state, since unlike pseudo-legal
// generation with move ordering, legal generation here needs nothing to
// persist across calls.
func GenerateLegalMoves(p *position.Position) *moveslice.MoveSlice {
	side := p.SideToMove()
	ad := position.ComputeAttackData(p, side)

	moves := moveslice.New()
	generateKingMoves(p, side, ad, moves)
	generateCastling(p, side, ad, moves)
	generateKnightMoves(p, side, ad, moves)
	generateSliderMoves(p, side, Bishop, attacks.BishopAttacks, ad, moves)
	generateSliderMoves(p, side, Rook, attacks.RookAttacks, ad, moves)
	generateSliderMoves(p, side, Queen, attacks.QueenAttacks, ad, moves)
	generatePawnMoves(p, side, ad, moves)
	return moves
}

func generateKingMoves(p *position.Position, side Color, ad *position.AttackData, moves *moveslice.MoveSlice) {
	friendlies := p.ColorBb(side)
	targets := attacks.KingAttacks(ad.KingSq) &^ friendlies
	for !targets.IsEmpty() {
		to := targets.PopLSB()
		if !ad.OpponentAttacks.Contains(to) {
			moves.PushBack(NewMove(ad.KingSq, to, FlagNone))
		}
	}
}

func generateCastling(p *position.Position, side Color, ad *position.AttackData, moves *moveslice.MoveSlice) {
	if ad.InCheck {
		return
	}
	rank := Rank1
	if side == Black {
		rank = Rank8
	}
	occ := p.Occupied()
	rights := p.CastlingRights()
	kingFrom := SquareOf(FileE, rank)

	if rights.Has(KingsideRight(side)) {
		f, g := SquareOf(FileF, rank), SquareOf(FileG, rank)
		if !occ.Contains(f) && !occ.Contains(g) &&
			!ad.OpponentAttacks.Contains(kingFrom) && !ad.OpponentAttacks.Contains(f) && !ad.OpponentAttacks.Contains(g) {
			moves.PushBack(NewMove(kingFrom, g, FlagCastle))
		}
	}
	if rights.Has(QueensideRight(side)) {
		b, c, d := SquareOf(FileB, rank), SquareOf(FileC, rank), SquareOf(FileD, rank)
		if !occ.Contains(b) && !occ.Contains(c) && !occ.Contains(d) &&
			!ad.OpponentAttacks.Contains(kingFrom) && !ad.OpponentAttacks.Contains(d) && !ad.OpponentAttacks.Contains(c) {
			moves.PushBack(NewMove(kingFrom, c, FlagCastle))
		}
	}
}

func generateKnightMoves(p *position.Position, side Color, ad *position.AttackData, moves *moveslice.MoveSlice) {
	friendlies := p.ColorBb(side)
	// a pinned knight has no legal destination anywhere on its pin line,
	// so pinned knights are excluded from generation entirely.
	for bb := p.PieceBb(side, Knight) &^ ad.Pinned; !bb.IsEmpty(); {
		from := bb.PopLSB()
		targets := attacks.KnightAttacks(from) &^ friendlies & ad.CheckResolvers
		for !targets.IsEmpty() {
			to := targets.PopLSB()
			moves.PushBack(NewMove(from, to, FlagNone))
		}
	}
}

func generateSliderMoves(
	p *position.Position,
	side Color,
	pt PieceType,
	attackFn func(Square, BitBoard) BitBoard,
	ad *position.AttackData,
	moves *moveslice.MoveSlice,
) {
	friendlies := p.ColorBb(side)
	occ := p.Occupied()
	for bb := p.PieceBb(side, pt); !bb.IsEmpty(); {
		from := bb.PopLSB()
		targets := attackFn(from, occ) &^ friendlies & ad.CheckResolvers
		if ad.Pinned.Contains(from) {
			targets &= ad.PinRay(from)
		}
		for !targets.IsEmpty() {
			to := targets.PopLSB()
			moves.PushBack(NewMove(from, to, FlagNone))
		}
	}
}

func generatePawnMoves(p *position.Position, side Color, ad *position.AttackData, moves *moveslice.MoveSlice) {
	occ := p.Occupied()
	enemies := p.ColorBb(side.Flip())
	direction := side.PawnDirection()
	startRank := side.PawnStartRank()
	promoRank := side.PawnPromotionRank()
	ep := p.EnPassantSquare()

	for bb := p.PieceBb(side, Pawn); !bb.IsEmpty(); {
		from := bb.PopLSB()
		pinned := ad.Pinned.Contains(from)
		pinRay := BbAll
		if pinned {
			pinRay = ad.PinRay(from)
		}

		if to1 := from.TryOffset(0, direction); to1 != SqNone && !occ.Contains(to1) && pinRay.Contains(to1) {
			if ad.CheckResolvers.Contains(to1) {
				emitPawnMove(moves, from, to1, promoRank)
			}
			if from.RankOf() == startRank {
				if to2 := from.TryOffset(0, 2*direction); to2 != SqNone && !occ.Contains(to2) &&
					pinRay.Contains(to2) && ad.CheckResolvers.Contains(to2) {
					moves.PushBack(NewMove(from, to2, FlagPawnTwoUp))
				}
			}
		}

		captures := attacks.PawnAttacks(side, from) & enemies & ad.CheckResolvers
		if pinned {
			captures &= pinRay
		}
		for !captures.IsEmpty() {
			to := captures.PopLSB()
			emitPawnMove(moves, from, to, promoRank)
		}

		if ep != SqNone && attacks.PawnAttacks(side, from).Contains(ep) && (!pinned || pinRay.Contains(ep)) {
			if enPassantLegal(p, side, from, ep) {
				moves.PushBack(NewMove(from, ep, FlagEnPassantCapture))
			}
		}
	}
}

func emitPawnMove(moves *moveslice.MoveSlice, from, to Square, promoRank Rank) {
	if to.RankOf() == promoRank {
		moves.PushBack(NewMove(from, to, FlagPromoteQ))
		moves.PushBack(NewMove(from, to, FlagPromoteR))
		moves.PushBack(NewMove(from, to, FlagPromoteB))
		moves.PushBack(NewMove(from, to, FlagPromoteN))
		return
	}
	moves.PushBack(NewMove(from, to, FlagNone))
}

// enPassantLegal runs the one targeted simulation the generator performs:
// capturing en passant removes two pawns on the same rank as the king,
// which can expose a horizontal slider that no static pin check catches.
func enPassantLegal(p *position.Position, side Color, from, ep Square) bool {
	clone := p.Clone()
	clone.MakeMove(NewMove(from, ep, FlagEnPassantCapture))
	return !position.ComputeAttackData(clone, side).InCheck
}
