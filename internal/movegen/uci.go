/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kopchess/chesscore/internal/position"
	. "github.com/kopchess/chesscore/internal/types"
)

// regexUciMove matches the external move notation spec §6.2 requires: a
// pair of algebraic squares plus an optional promotion letter.
var regexUciMove = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// GetMoveFromUci generates every legal move available in p and matches
// uciMove (e.g. "e2e4" or "e7e8q") against it, per spec §6.2's accept
// direction. Returns a *position.IllegalMove both when uciMove is not
// well-formed and when it names a move that is not legal in p - callers
// that only care "was this applicable" can treat both the same way.
func GetMoveFromUci(p *position.Position, uciMove string) (Move, error) {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone, &position.IllegalMove{Reason: fmt.Sprintf("%q is not a well-formed UCI move", uciMove)}
	}

	squares := matches[1]
	promotion := strings.ToLower(matches[2])
	wanted := squares + promotion

	legal := GenerateLegalMoves(p)
	found := MoveNone
	legal.ForEach(func(m Move) bool {
		if m.StringUci() == wanted {
			found = m
			return false
		}
		return true
	})
	if found == MoveNone {
		return MoveNone, &position.IllegalMove{Reason: fmt.Sprintf("%s is not legal in this position", uciMove)}
	}
	return found, nil
}

// ApplyUci parses uciMove and, if it names a legal move in p, makes it.
// Returns the UndoInfo for the caller to hold onto if it needs to unmake
// later.
func ApplyUci(p *position.Position, uciMove string) (*position.UndoInfo, error) {
	m, err := GetMoveFromUci(p, uciMove)
	if err != nil {
		return nil, err
	}
	return p.MakeMove(m), nil
}
