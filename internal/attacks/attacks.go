/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Package attacks holds the precomputed, read-only attack tables used by
// the position model and move generator: leaper tables for knights, kings
// and pawns; ray masks for the eight slider directions; and
// occupancy-parameterised slider attack functions for bishops, rooks and
// queens (spec §4.2).
//
// Every table here is built once, by package init, from pure functions of
// square geometry. None of it is mutated afterward - there is no lazy
// first-call initializer to forget to invalidate (REDESIGN FLAGS: mutable
// global attack tables).
package attacks

import . "github.com/kopchess/chesscore/internal/types"

var (
	knightAttacks [SqLength]BitBoard
	kingAttacks   [SqLength]BitBoard
	pawnAttacks   [ColorLength][SqLength]BitBoard

	// rayMask[d][sq] is the set of squares from sq to the board edge along
	// direction d, exclusive of sq itself.
	rayMask [DirectionLength][SqLength]BitBoard
)

func init() {
	buildLeaperTables()
	buildRayMasks()
}

func buildLeaperTables() {
	for sq := SqA1; sq < SqLength; sq++ {
		for _, o := range KnightOffsets {
			if to := sq.TryOffset(o.DFile, o.DRank); to != SqNone {
				knightAttacks[sq] = knightAttacks[sq].Set(to)
			}
		}
		for _, o := range KingOffsets {
			if to := sq.TryOffset(o.DFile, o.DRank); to != SqNone {
				kingAttacks[sq] = kingAttacks[sq].Set(to)
			}
		}
		for c := White; c <= Black; c++ {
			for _, o := range PawnAttackOffsets(c) {
				if to := sq.TryOffset(o.DFile, o.DRank); to != SqNone {
					pawnAttacks[c][sq] = pawnAttacks[c][sq].Set(to)
				}
			}
		}
	}
}

func buildRayMasks() {
	for d := Direction(0); d < DirectionLength; d++ {
		step := d.Offset()
		for sq := SqA1; sq < SqLength; sq++ {
			var b BitBoard
			cur := sq
			for {
				next := cur.TryOffset(step.DFile, step.DRank)
				if next == SqNone {
					break
				}
				b = b.Set(next)
				cur = next
			}
			rayMask[d][sq] = b
		}
	}
}

// KnightAttacks returns the knight-move target squares from sq on an
// otherwise empty board.
func KnightAttacks(sq Square) BitBoard {
	return knightAttacks[sq]
}

// KingAttacks returns the king-step target squares from sq.
func KingAttacks(sq Square) BitBoard {
	return kingAttacks[sq]
}

// PawnAttacks returns the two diagonal capture squares of a pawn of color c
// on sq (not pushes - those are computed by the move generator).
func PawnAttacks(c Color, sq Square) BitBoard {
	return pawnAttacks[c][sq]
}

// Ray returns the full-length ray of squares from sq to the board edge
// along direction d, exclusive of sq.
func Ray(d Direction, sq Square) BitBoard {
	return rayMask[d][sq]
}

// slidingAttacks computes the attack set of a slider on sq given the
// direction set dirs and the current board occupancy, per spec §4.2: for
// each direction, take the ray; if occupancy blocks it, find the nearest
// blocker (Lsb for increasing directions, Msb for decreasing ones) and keep
// only the ray up to and including that blocker.
func slidingAttacks(sq Square, occupied BitBoard, dirs [4]Direction) BitBoard {
	var attacks BitBoard
	for _, d := range dirs {
		ray := rayMask[d][sq]
		attacks |= ray
		blockers := ray & occupied
		if blockers.IsEmpty() {
			continue
		}
		var blocker Square
		if d.Increasing() {
			blocker = blockers.Lsb()
		} else {
			blocker = blockers.Msb()
		}
		// remove everything strictly beyond the blocker: the ray from the
		// blocker (exclusive) to the edge.
		attacks &^= rayMask[d][blocker]
	}
	return attacks
}

// BishopAttacks returns the diagonal attack set of a bishop on sq given the
// current occupancy.
func BishopAttacks(sq Square, occupied BitBoard) BitBoard {
	return slidingAttacks(sq, occupied, BishopDirections())
}

// RookAttacks returns the orthogonal attack set of a rook on sq given the
// current occupancy.
func RookAttacks(sq Square, occupied BitBoard) BitBoard {
	return slidingAttacks(sq, occupied, RookDirections())
}

// QueenAttacks is the bitwise union of bishop and rook attacks from sq.
// Spec §9 explicitly calls out a source bug that unioned these with
// logical-OR; this must remain a bitwise union.
func QueenAttacks(sq Square, occupied BitBoard) BitBoard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// Attacks dispatches to the correct attack function for pt (which must not
// be Pawn - pawn attacks depend on color, use PawnAttacks instead).
func Attacks(pt PieceType, sq Square, occupied BitBoard) BitBoard {
	if pt.IsSlider() {
		switch pt {
		case Bishop:
			return BishopAttacks(sq, occupied)
		case Rook:
			return RookAttacks(sq, occupied)
		default:
			return QueenAttacks(sq, occupied)
		}
	}
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	default:
		panic("attacks.Attacks called with unsupported piece type")
	}
}

// Between returns the squares strictly between sq1 and sq2 if they lie on a
// common rank, file or diagonal; otherwise BbZero. Used for check-blocking
// and pin-ray computation.
func Between(sq1, sq2 Square) BitBoard {
	for d := Direction(0); d < DirectionLength; d++ {
		ray := rayMask[d][sq1]
		if ray.Contains(sq2) {
			return ray &^ rayMask[d][sq2] &^ SquareBb(sq2)
		}
	}
	return BbZero
}

// Aligned reports whether sq1, sq2 and sq3 lie on a common rank, file or
// diagonal line (used to validate a pin direction against a target
// square).
func Aligned(sq1, sq2, sq3 Square) bool {
	return LineThrough(sq1, sq2).Contains(sq3)
}

func oppositeDirection(d Direction) Direction {
	return (d + 4) % DirectionLength
}

// LineThrough returns the full line (both ray directions) through sq1 and
// sq2 if they are aligned on a rank, file or diagonal; otherwise BbZero.
// Includes both endpoints.
func LineThrough(sq1, sq2 Square) BitBoard {
	for d := Direction(0); d < DirectionLength; d++ {
		if rayMask[d][sq1].Contains(sq2) {
			opp := oppositeDirection(d)
			return rayMask[d][sq1] | rayMask[opp][sq1] | SquareBb(sq1)
		}
	}
	return BbZero
}
