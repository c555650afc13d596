/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Package position represents a chess position: twelve piece bitboards, the
// derived aggregates (per-color occupancy, diagonal/orthogonal slider
// unions), side to move, castling rights, en-passant target and the two
// move clocks (spec §3.5). It owns FEN parse/generate (spec §4.3) and
// Make/Unmake (spec §4.4), and computes the per-side AttackData snapshot
// the legal move generator consumes (spec §4.5).
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kopchess/chesscore/internal/engineerlog"
	. "github.com/kopchess/chesscore/internal/types"
)

var log = engineerlog.Get("position")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the whole mutable board state. Create one with New or
// NewFromFen; Make/Unmake mutate it in place.
type Position struct {
	pieces       [12]BitBoard
	colors       [2]BitBoard
	diagSliders  [2]BitBoard
	orthoSliders [2]BitBoard
	board        [SqLength]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveClock   int

	undoStack []UndoInfo
}

// pieceIndex maps a (color, type) pair to the pieces[] slot, per spec
// §3.4: index = side*6 + type-ordinal, types ordered Pawn..King.
func pieceIndex(c Color, pt PieceType) int {
	return int(c)*6 + int(pt-Pawn)
}

// New creates a Position in the standard starting arrangement.
func New() *Position {
	p, err := NewFromFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("start FEN failed to parse: %v", err))
	}
	return p
}

// NewFromFen creates a Position by parsing a FEN string (spec §4.3).
// Returns MalformedFEN on a structurally invalid string and
// IllegalPosition when the parsed placement fails a basic sanity check
// (no king, or more than one king, for either side).
func NewFromFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.parseFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) parseFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}
	placement, sideStr, castlingStr, epStr, hmStr, fmStr := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("expected 8 ranks, got %d", len(ranks))}
	}

	var pieces [12]BitBoard
	var board [SqLength]Piece
	for i := range board {
		board[i] = PieceNone
	}

	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range rankStr {
			if f > FileH {
				return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("rank %s overflows 8 files", rankStr)}
			}
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc := PieceFromChar(byte(ch))
			if pc == PieceNone {
				return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("invalid piece letter %q", ch)}
			}
			sq := SquareOf(f, r)
			board[sq] = pc
			pieces[pieceIndex(pc.ColorOf(), pc.TypeOf())] = pieces[pieceIndex(pc.ColorOf(), pc.TypeOf())].Set(sq)
			f++
		}
		if f != FileH+1 {
			return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("rank %s does not cover all 8 files", rankStr)}
		}
	}

	var side Color
	switch sideStr {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("invalid side to move %q", sideStr)}
	}

	if castlingStr != "-" {
		for _, c := range castlingStr {
			if !strings.ContainsRune("KQkq", c) {
				return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("invalid castling field %q", castlingStr)}
			}
		}
	}
	castling := ParseCastlingRights(castlingStr)

	ep := SqNone
	if epStr != "-" {
		ep = MakeSquare(epStr)
		if ep == SqNone {
			return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("invalid en-passant square %q", epStr)}
		}
		if ep.RankOf() != Rank3 && ep.RankOf() != Rank6 {
			return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("en-passant square %q not on rank 3 or 6", epStr)}
		}
	}

	hm, err := strconv.Atoi(hmStr)
	if err != nil || hm < 0 {
		return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("invalid half-move clock %q", hmStr)}
	}

	fullMove, err := strconv.Atoi(fmStr)
	if err != nil || fullMove < 1 {
		return &MalformedFEN{Fen: fen, Reason: fmt.Sprintf("invalid full-move clock %q", fmStr)}
	}

	p.pieces = pieces
	p.board = board
	p.sideToMove = side
	p.castlingRights = castling
	p.enPassantSquare = ep
	p.halfMoveClock = hm
	p.fullMoveClock = fullMove
	p.undoStack = p.undoStack[:0]
	p.refreshDerived()

	if err := p.sanityCheck(); err != nil {
		return err
	}

	log.Debugf("parsed FEN %q", fen)
	return nil
}

// sanityCheck validates the post-parse-placement invariants from spec §7:
// exactly one king per side.
func (p *Position) sanityCheck() error {
	for c := White; c <= Black; c++ {
		n := p.pieces[pieceIndex(c, King)].PopCount()
		if n == 0 {
			return &IllegalPosition{Reason: fmt.Sprintf("%s has no king", c)}
		}
		if n > 1 {
			return &IllegalPosition{Reason: fmt.Sprintf("%s has %d kings", c, n)}
		}
	}
	return nil
}

// refreshDerived recomputes colors/diagSliders/orthoSliders from pieces.
// Must be called after any direct mutation of p.pieces.
func (p *Position) refreshDerived() {
	for c := White; c <= Black; c++ {
		var occ BitBoard
		for pt := Pawn; pt <= King; pt++ {
			occ |= p.pieces[pieceIndex(c, pt)]
		}
		p.colors[c] = occ
		p.diagSliders[c] = p.pieces[pieceIndex(c, Bishop)] | p.pieces[pieceIndex(c, Queen)]
		p.orthoSliders[c] = p.pieces[pieceIndex(c, Rook)] | p.pieces[pieceIndex(c, Queen)]
	}
}

// Fen generates the FEN string for the current position (spec §4.3). Always
// emits all six fields, "-" where a field is empty.
func (p *Position) Fen() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	b.WriteString(p.enPassantSquare.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.fullMoveClock))
	return b.String()
}

// String is an alias for Fen, used for debug printing.
func (p *Position) String() string {
	return p.Fen()
}

// StringBoard renders an 8x8 ASCII diagram of the board, rank 8 on top -
// the minimum data a terminal diagnostics view (out of core scope per
// spec §1) would need to draw a board.
func (p *Position) StringBoard() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				b.WriteString("|   ")
			} else {
				b.WriteString("| " + pc.Char() + " ")
			}
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return b.String()
}

// PieceAt returns the piece occupying sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// PieceBb returns the bitboard of all pieces of the given color and type.
func (p *Position) PieceBb(c Color, pt PieceType) BitBoard {
	return p.pieces[pieceIndex(c, pt)]
}

// ColorBb returns the occupancy bitboard for color c.
func (p *Position) ColorBb(c Color) BitBoard {
	return p.colors[c]
}

// Occupied returns the bitboard of every occupied square.
func (p *Position) Occupied() BitBoard {
	return p.colors[White] | p.colors[Black]
}

// DiagSliders returns the bishops-union-queens bitboard for color c.
func (p *Position) DiagSliders(c Color) BitBoard {
	return p.diagSliders[c]
}

// OrthoSliders returns the rooks-union-queens bitboard for color c.
func (p *Position) OrthoSliders(c Color) BitBoard {
	return p.orthoSliders[c]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// HalfMoveClock returns the current half-move (50-move-rule) clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveClock returns the current full-move counter.
func (p *Position) FullMoveClock() int {
	return p.fullMoveClock
}

// KingSquare returns the square holding color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[pieceIndex(c, King)].Lsb()
}

// UndoDepth returns the number of moves currently on the undo stack - the
// only dynamic resource the core owns, growing and shrinking in lockstep
// with Make/Unmake (spec §5).
func (p *Position) UndoDepth() int {
	return len(p.undoStack)
}

// Clone returns a deep copy of p, independent for concurrent per-worker use
// (spec §5: the unit of parallelism is a disjoint Position clone).
func (p *Position) Clone() *Position {
	c := *p
	c.undoStack = append([]UndoInfo(nil), p.undoStack...)
	return &c
}
