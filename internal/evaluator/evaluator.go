/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Package evaluator scores a position from White's perspective: material,
// a bishop-pair bonus, piece-square tables, pawn-structure terms and a
// king pawn-shield bonus (spec §4.8). Evaluate is a pure function of
// Position - unlike the teacher's stateful Evaluator with its pawn cache
// and lazy-eval threshold, nothing here needs to persist between calls.
package evaluator

import (
	"github.com/kopchess/chesscore/internal/config"
	"github.com/kopchess/chesscore/internal/position"
	. "github.com/kopchess/chesscore/internal/types"
)

// Evaluate returns a centipawn score for p from White's perspective:
// positive favors White, negative favors Black.
func Evaluate(p *position.Position) Value {
	score := materialAndPst(p, White) - materialAndPst(p, Black)
	score += pawnStructureScore(p, White) - pawnStructureScore(p, Black)
	score += kingShieldScore(p, White) - kingShieldScore(p, Black)
	return Value(score)
}

func materialAndPst(p *position.Position, c Color) int {
	total := 0
	for pt := Pawn; pt <= King; pt++ {
		bb := p.PieceBb(c, pt)
		total += bb.PopCount() * pieceValue(pt)
		for b := bb; !b.IsEmpty(); {
			sq := b.PopLSB()
			total += pstValue(pt, sq, c)
		}
	}
	if p.PieceBb(c, Bishop).PopCount() >= 2 {
		total += config.Settings.Eval.BishopPairBonus
	}
	return total
}

func pawnStructureScore(p *position.Position, c Color) int {
	friendly := p.PieceBb(c, Pawn)
	enemy := p.PieceBb(c.Flip(), Pawn)
	score := 0

	var fileCount [8]int
	for bb := friendly; !bb.IsEmpty(); {
		sq := bb.PopLSB()
		fileCount[sq.FileOf()]++
	}
	for f := FileA; f <= FileH; f++ {
		if fileCount[f] > 1 {
			score -= config.Settings.Eval.DoubledPawnPenalty * (fileCount[f] - 1)
		}
	}

	for bb := friendly; !bb.IsEmpty(); {
		sq := bb.PopLSB()
		f := sq.FileOf()

		if (friendly & adjacentFilesMask(f)).IsEmpty() {
			score -= config.Settings.Eval.IsolatedPawnPenalty
		}
		if isPassedPawn(sq, c, enemy) {
			score += config.Settings.Eval.PassedPawnBonus
		}
	}
	return score
}

// kingShieldScore rewards friendly pawns directly in front of the king
// along its own file and the two adjacent files, counted only while the
// king sits in its own back-rank region.
func kingShieldScore(p *position.Position, c Color) int {
	kingSq := p.KingSquare(c)
	backRank := Rank1
	if c == Black {
		backRank = Rank8
	}
	if kingSq.RankOf() != backRank {
		return 0
	}
	shieldRank := Rank(int(backRank) + c.PawnDirection())
	friendlyPawns := p.PieceBb(c, Pawn)
	kingFile := int(kingSq.FileOf())

	score := 0
	for df := -1; df <= 1; df++ {
		f := kingFile + df
		if f < 0 || f > 7 {
			continue
		}
		if friendlyPawns.Contains(SquareOf(File(f), shieldRank)) {
			score += config.Settings.Eval.PawnShieldBonus
		}
	}
	return score
}

// pieceValue looks up pt's material value in the tunable weights rather
// than PieceType.Value's compiled-in table, so config.Load overrides flow
// through to the evaluator.
func pieceValue(pt PieceType) int {
	switch pt {
	case Pawn:
		return config.Settings.Eval.PawnValue
	case Knight:
		return config.Settings.Eval.KnightValue
	case Bishop:
		return config.Settings.Eval.BishopValue
	case Rook:
		return config.Settings.Eval.RookValue
	case Queen:
		return config.Settings.Eval.QueenValue
	default:
		return 0
	}
}

func adjacentFilesMask(f File) BitBoard {
	var mask BitBoard
	if f > FileA {
		mask |= FileBb(f - 1)
	}
	if f < FileH {
		mask |= FileBb(f + 1)
	}
	return mask
}

// ranksAhead returns every rank strictly between r and the promotion rank
// in color c's direction of travel, inclusive of the promotion rank.
func ranksAhead(r Rank, c Color) BitBoard {
	var mask BitBoard
	if c == White {
		for rr := r + 1; rr <= Rank8; rr++ {
			mask |= RankBb(rr)
		}
	} else {
		for rr := r - 1; rr >= Rank1; rr-- {
			mask |= RankBb(rr)
		}
	}
	return mask
}

// isPassedPawn reports whether no enemy pawn occupies sq's file or either
// adjacent file between sq and its promotion rank.
func isPassedPawn(sq Square, c Color, enemyPawns BitBoard) bool {
	f := sq.FileOf()
	filesMask := FileBb(f) | adjacentFilesMask(f)
	return (enemyPawns & filesMask & ranksAhead(sq.RankOf(), c)).IsEmpty()
}
