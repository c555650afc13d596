/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package types

import "fmt"

// MoveFlag tags the special semantics of a Move, per spec §4.7.
type MoveFlag uint8

const (
	FlagNone             MoveFlag = 0
	FlagEnPassantCapture MoveFlag = 1
	FlagCastle           MoveFlag = 2
	FlagPawnTwoUp        MoveFlag = 3
	FlagPromoteQ         MoveFlag = 4
	FlagPromoteN         MoveFlag = 5
	FlagPromoteR         MoveFlag = 6
	FlagPromoteB         MoveFlag = 7
)

// IsValid reports whether f is one of the eight defined move flags.
func (f MoveFlag) IsValid() bool {
	return f <= FlagPromoteB
}

// IsPromotion reports whether f denotes any promotion.
func (f MoveFlag) IsPromotion() bool {
	return f >= FlagPromoteQ
}

// promotionPieceType maps a promotion flag to its PieceType. Only valid
// when f.IsPromotion() is true.
var promotionPieceType = map[MoveFlag]PieceType{
	FlagPromoteQ: Queen,
	FlagPromoteN: Knight,
	FlagPromoteR: Rook,
	FlagPromoteB: Bishop,
}

// PromotionType returns the piece type produced by a promotion flag, or
// PtNone if f is not a promotion flag.
func (f MoveFlag) PromotionType() PieceType {
	return promotionPieceType[f]
}

// promotionFlag is the inverse of PromotionType. It panics for a piece type
// that is not a promotion choice.
func promotionFlag(pt PieceType) MoveFlag {
	switch pt {
	case Queen:
		return FlagPromoteQ
	case Knight:
		return FlagPromoteN
	case Rook:
		return FlagPromoteR
	case Bishop:
		return FlagPromoteB
	default:
		panic(fmt.Sprintf("invalid promotion piece type %s", pt))
	}
}

// Move packs a from-square (6 bits), to-square (6 bits), and MoveFlag
// (4 bits) into a 16-bit value, per spec §4.7.
type Move uint16

// MoveNone is the all-ones sentinel (from=to=SqH8, flag=15, a flag value
// no MoveFlag constant uses) rather than the zero Move, so that the zero
// value of a Move variable is never mistaken for "no move". Generators
// never emit this value; callers test for it explicitly instead of
// relying on a magic square.
const MoveNone Move = 0xFFFF

const (
	moveToShift   = 0
	moveFromShift = 6
	moveFlagShift = 12
	moveSquareMask = 0x3F
	moveFlagMask   = 0xF
)

// NewMove encodes a move from from to to with the given flag.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(to)&moveSquareMask) |
		Move(uint16(from)&moveSquareMask)<<moveFromShift |
		Move(uint16(flag)&moveFlagMask)<<moveFlagShift
}

// From returns the origin square of m.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveSquareMask)
}

// To returns the destination square of m.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

// Flag returns the MoveFlag of m.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> moveFlagShift) & moveFlagMask)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// PromotionType returns the promoted-to piece type, or PtNone if m is not a
// promotion.
func (m Move) PromotionType() PieceType {
	return m.Flag().PromotionType()
}

// StringUci renders m as UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a queen promotion.
func (m Move) StringUci() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionLetter(m.PromotionType())
	}
	return s
}

func promotionLetter(pt PieceType) string {
	switch pt {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// String gives a verbose debugging representation of m.
func (m Move) String() string {
	return fmt.Sprintf("%s (flag=%d)", m.StringUci(), m.Flag())
}
