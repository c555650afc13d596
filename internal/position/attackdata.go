/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package position

import (
	"github.com/kopchess/chesscore/internal/attacks"
	. "github.com/kopchess/chesscore/internal/types"
)

// AttackData is the per-side snapshot the legal move generator consumes
// instead of repeated make/unmake probing (spec §4.5): the opponent's
// attack map computed with the friendly king removed from occupancy (so a
// king cannot "hide" behind its own square on an attacked ray), the set of
// pieces currently giving check, and the pinned pieces with the line each
// is restricted to.
type AttackData struct {
	KingSq          Square
	OpponentAttacks BitBoard
	Checkers        BitBoard
	InCheck         bool
	DoubleCheck     bool
	CheckResolvers  BitBoard
	Pinned          BitBoard
	pinRay          map[Square]BitBoard
}

// PinRay returns the line a pinned piece on sq is constrained to move
// along (both directions through the king, inclusive of the king's and the
// pinner's squares). Returns BbZero if sq is not pinned.
func (ad *AttackData) PinRay(sq Square) BitBoard {
	return ad.pinRay[sq]
}

// ComputeAttackData builds the AttackData snapshot for the side about to
// move in p.
func ComputeAttackData(p *Position, side Color) *AttackData {
	opp := side.Flip()
	kingSq := p.KingSquare(side)

	ad := &AttackData{KingSq: kingSq, pinRay: make(map[Square]BitBoard)}

	occNoKing := p.Occupied() &^ SquareBb(kingSq)
	ad.OpponentAttacks = computeAttackedSquares(p, opp, occNoKing)

	ad.Checkers = computeCheckers(p, side, opp, kingSq)
	checkerCount := ad.Checkers.PopCount()
	ad.InCheck = checkerCount >= 1
	ad.DoubleCheck = checkerCount >= 2

	switch {
	case ad.DoubleCheck:
		ad.CheckResolvers = BbZero
	case ad.InCheck:
		checkerSq := ad.Checkers.Lsb()
		checkerPt := p.PieceAt(checkerSq).TypeOf()
		if checkerPt == Knight || checkerPt == Pawn {
			ad.CheckResolvers = SquareBb(checkerSq)
		} else {
			ad.CheckResolvers = attacks.Between(kingSq, checkerSq) | SquareBb(checkerSq)
		}
	default:
		ad.CheckResolvers = BbAll
	}

	computePins(p, side, opp, kingSq, ad)

	return ad
}

// computeAttackedSquares unions the attack sets of every piece of color c,
// using occupied for slider occlusion (with the friendly king already
// removed from occupied by the caller, for king-move legality).
func computeAttackedSquares(p *Position, c Color, occupied BitBoard) BitBoard {
	var attacked BitBoard

	pawns := p.PieceBb(c, Pawn)
	for bb := pawns; !bb.IsEmpty(); {
		sq := bb.PopLSB()
		attacked |= attacks.PawnAttacks(c, sq)
	}
	for bb := p.PieceBb(c, Knight); !bb.IsEmpty(); {
		sq := bb.PopLSB()
		attacked |= attacks.KnightAttacks(sq)
	}
	for bb := p.PieceBb(c, Bishop); !bb.IsEmpty(); {
		sq := bb.PopLSB()
		attacked |= attacks.BishopAttacks(sq, occupied)
	}
	for bb := p.PieceBb(c, Rook); !bb.IsEmpty(); {
		sq := bb.PopLSB()
		attacked |= attacks.RookAttacks(sq, occupied)
	}
	for bb := p.PieceBb(c, Queen); !bb.IsEmpty(); {
		sq := bb.PopLSB()
		attacked |= attacks.QueenAttacks(sq, occupied)
	}
	attacked |= attacks.KingAttacks(p.KingSquare(c))

	return attacked
}

// computeCheckers finds every opponent piece currently attacking side's
// king, by casting each piece type's attack pattern from the king square
// itself ("super-piece" trick) and intersecting with the opponent's actual
// pieces of that type.
func computeCheckers(p *Position, side, opp Color, kingSq Square) BitBoard {
	occ := p.Occupied()
	var checkers BitBoard

	checkers |= attacks.PawnAttacks(side, kingSq) & p.PieceBb(opp, Pawn)
	checkers |= attacks.KnightAttacks(kingSq) & p.PieceBb(opp, Knight)
	checkers |= attacks.BishopAttacks(kingSq, occ) & p.DiagSliders(opp)
	checkers |= attacks.RookAttacks(kingSq, occ) & p.OrthoSliders(opp)

	return checkers
}

// computePins walks each of the eight ray directions from the king. If the
// nearest blocker is a friendly piece and the next blocker beyond it is an
// enemy slider attacking along that same line, the friendly piece is
// pinned and may only move along the line through the king and the pinner.
func computePins(p *Position, side, opp Color, kingSq Square, ad *AttackData) {
	occ := p.Occupied()
	friendly := p.ColorBb(side)

	for d := Direction(0); d < DirectionLength; d++ {
		ray := attacks.Ray(d, kingSq)
		blockers := ray & occ
		if blockers.IsEmpty() {
			continue
		}
		first := nearestBlocker(d, blockers)
		if !friendly.Contains(first) {
			continue
		}
		beyond := attacks.Ray(d, first) & occ
		if beyond.IsEmpty() {
			continue
		}
		second := nearestBlocker(d, beyond)
		if !p.ColorBb(opp).Contains(second) {
			continue
		}
		pinnerType := p.PieceAt(second).TypeOf()
		isPinner := (d.IsDiagonal() && (pinnerType == Bishop || pinnerType == Queen)) ||
			(d.IsOrthogonal() && (pinnerType == Rook || pinnerType == Queen))
		if !isPinner {
			continue
		}
		ad.Pinned = ad.Pinned.Set(first)
		ad.pinRay[first] = attacks.LineThrough(kingSq, second)
	}
}

func nearestBlocker(d Direction, blockers BitBoard) Square {
	if d.Increasing() {
		return blockers.Lsb()
	}
	return blockers.Msb()
}
