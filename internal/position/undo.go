/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package position

import . "github.com/kopchess/chesscore/internal/types"

// UndoInfo is the record captured on every Make call sufficient for exact
// restoration by Unmake (spec §3.6): the squares and moved/captured pieces,
// plus a snapshot of every piece of mutable state that Make touches.
type UndoInfo struct {
	From      Square
	To        Square
	Moved     Piece
	Captured  Piece
	Promotion PieceType
	Flag      MoveFlag

	prevEnPassant Square
	prevCastling  CastlingRights
	prevHalfMove  int
	prevFullMove  int
}

// castlingRookSquares returns the rook's (from,to) pair for a castling move
// given the king's destination file (FileG for kingside, FileC for
// queenside) and the back rank.
func castlingRookSquares(kingTo File, rank Rank) (from, to Square) {
	if kingTo == FileG {
		return SquareOf(FileH, rank), SquareOf(FileF, rank)
	}
	return SquareOf(FileA, rank), SquareOf(FileD, rank)
}

// cornerCastlingRight maps a corner square to the castling right it
// revokes when either vacated (rook moves away) or occupied by a capture
// (rook captured in place) - spec §4.4 step 8 handles both uniformly.
func cornerCastlingRight(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

// MakeMove applies m to p and returns the UndoInfo needed to reverse it.
// Follows the fifteen-step order from spec §4.4: capture identification,
// piece relocation, promotion, castling rook move, en-passant/castling-
// rights bookkeeping, clock updates, side flip, and derived-bitboard
// refresh.
func (p *Position) MakeMove(m Move) *UndoInfo {
	from, to, flag := m.From(), m.To(), m.Flag()
	moving := p.board[from]

	undo := &UndoInfo{
		From:          from,
		To:            to,
		Moved:         moving,
		Flag:          flag,
		prevEnPassant: p.enPassantSquare,
		prevCastling:  p.castlingRights,
		prevHalfMove:  p.halfMoveClock,
		prevFullMove:  p.fullMoveClock,
	}

	// 2. identify the captured piece, if any.
	captureSq := to
	if flag == FlagEnPassantCapture {
		captureSq = SquareOf(to.FileOf(), from.RankOf())
	}
	captured := p.board[captureSq]
	undo.Captured = captured

	// 3. remove the captured piece.
	if captured != PieceNone {
		p.removePiece(captureSq)
	}

	// 4. move the moving piece.
	p.removePiece(from)
	p.putPiece(moving, to)

	// 5. promotion: swap the pawn just placed for the promoted piece.
	if flag.IsPromotion() {
		p.removePiece(to)
		promoted := MakePiece(moving.ColorOf(), flag.PromotionType())
		p.putPiece(promoted, to)
		undo.Promotion = flag.PromotionType()
	}

	// 6. castling also relocates the rook.
	if flag == FlagCastle {
		rookFrom, rookTo := castlingRookSquares(to.FileOf(), from.RankOf())
		rook := p.removePiece(rookFrom)
		p.putPiece(rook, rookTo)
	}

	// 7. en-passant target square.
	if flag == FlagPawnTwoUp {
		midRank := Rank((int(from.RankOf()) + int(to.RankOf())) / 2)
		p.enPassantSquare = SquareOf(from.FileOf(), midRank)
	} else {
		p.enPassantSquare = SqNone
	}

	// 8. castling rights revocation.
	if moving.TypeOf() == King {
		if moving.ColorOf() == White {
			p.castlingRights.Remove(CastlingWhiteOO | CastlingWhiteOOO)
		} else {
			p.castlingRights.Remove(CastlingBlackOO | CastlingBlackOOO)
		}
	}
	p.castlingRights.Remove(cornerCastlingRight(from))
	p.castlingRights.Remove(cornerCastlingRight(to))

	// 9. half-move clock.
	if moving.TypeOf() == Pawn || captured != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	// 10. flip side to move.
	p.sideToMove = p.sideToMove.Flip()

	// 11. full-move clock increments once Black has moved.
	if p.sideToMove == White {
		p.fullMoveClock++
	}

	// 12. refresh derived slider bitboards.
	p.refreshDerived()

	// 14. push the undo record.
	p.undoStack = append(p.undoStack, *undo)

	log.Debugf("made move %s (%s)", m.StringUci(), p.Fen())
	return undo
}

// UnmakeMove reverses the most recent Make call, restoring p bitwise to its
// pre-move state (spec §4.4).
func (p *Position) UnmakeMove() {
	n := len(p.undoStack)
	u := p.undoStack[n-1]
	p.undoStack = p.undoStack[:n-1]

	p.sideToMove = p.sideToMove.Flip()
	p.fullMoveClock = u.prevFullMove
	p.enPassantSquare = u.prevEnPassant
	p.castlingRights = u.prevCastling
	p.halfMoveClock = u.prevHalfMove

	if u.Flag == FlagCastle {
		rookFrom, rookTo := castlingRookSquares(u.To.FileOf(), u.From.RankOf())
		rook := p.removePiece(rookTo)
		p.putPiece(rook, rookFrom)
	}

	// Remove whatever sits on `to` (the moved piece, or its promoted form)
	// and restore the original moved piece at `from`.
	p.removePiece(u.To)
	p.putPiece(u.Moved, u.From)

	// Restore the captured piece, if any - at its original square, which
	// for en-passant is behind `to`, not `to` itself.
	if u.Captured != PieceNone {
		capSq := u.To
		if u.Flag == FlagEnPassantCapture {
			capSq = SquareOf(u.To.FileOf(), u.From.RankOf())
		}
		p.putPiece(u.Captured, capSq)
	}

	p.refreshDerived()
}

// DoNullMove pushes a null-move UndoInfo (moved piece none, from=to=none)
// and flips the side to move, for null-move search pruning. It never
// appears in the legal move generator's own output.
func (p *Position) DoNullMove() *UndoInfo {
	undo := &UndoInfo{
		From:          SqNone,
		To:            SqNone,
		Moved:         PieceNone,
		prevEnPassant: p.enPassantSquare,
		prevCastling:  p.castlingRights,
		prevHalfMove:  p.halfMoveClock,
		prevFullMove:  p.fullMoveClock,
	}
	p.enPassantSquare = SqNone
	p.sideToMove = p.sideToMove.Flip()
	p.halfMoveClock++
	p.undoStack = append(p.undoStack, *undo)
	return undo
}

// UndoNullMove reverses the most recent DoNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.undoStack)
	u := p.undoStack[n-1]
	p.undoStack = p.undoStack[:n-1]
	p.sideToMove = p.sideToMove.Flip()
	p.enPassantSquare = u.prevEnPassant
	p.castlingRights = u.prevCastling
	p.halfMoveClock = u.prevHalfMove
	p.fullMoveClock = u.prevFullMove
}

// removePiece clears sq's occupant from both the piece bitboard and the
// mailbox board, returning the piece that was there (PieceNone if empty).
func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if pc == PieceNone {
		return PieceNone
	}
	p.pieces[pieceIndex(pc.ColorOf(), pc.TypeOf())] = p.pieces[pieceIndex(pc.ColorOf(), pc.TypeOf())].Clear(sq)
	p.board[sq] = PieceNone
	return pc
}

// putPiece places pc on sq in both the piece bitboard and the mailbox
// board. sq must be empty.
func (p *Position) putPiece(pc Piece, sq Square) {
	p.pieces[pieceIndex(pc.ColorOf(), pc.TypeOf())] = p.pieces[pieceIndex(pc.ColorOf(), pc.TypeOf())].Set(sq)
	p.board[sq] = pc
}
