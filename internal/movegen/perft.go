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

	"github.com/kopchess/chesscore/internal/engineerlog"
	"github.com/kopchess/chesscore/internal/position"
	. "github.com/kopchess/chesscore/internal/types"
)

var log = engineerlog.Get("movegen")

// Perft counts the leaf nodes of the legal-move tree rooted at p to the
// given depth - the canonical move-generator correctness oracle (spec
// §6.3). At depth 0 it returns 1; otherwise the sum over every legal move
// of Perft(depth-1) after making that move, with the move unmade before
// returning.
func Perft(p *position.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	moves := GenerateLegalMoves(p)
	moves.ForEach(func(m Move) bool {
		p.MakeMove(m)
		nodes += Perft(p, depth-1)
		p.UnmakeMove()
		return true
	})
	return nodes
}

// PerftResult is one root move's contribution to a PerftDivide call.
type PerftResult struct {
	Move  Move
	Nodes int64
}

// PerftDivide breaks down Perft(depth) by root move, as a driver would
// print for cross-checking against a reference engine (spec §6.3).
func PerftDivide(p *position.Position, depth int) ([]PerftResult, int64) {
	if depth <= 0 {
		return nil, Perft(p, depth)
	}
	var results []PerftResult
	var total int64
	moves := GenerateLegalMoves(p)
	moves.ForEach(func(m Move) bool {
		p.MakeMove(m)
		nodes := Perft(p, depth-1)
		p.UnmakeMove()
		results = append(results, PerftResult{Move: m, Nodes: nodes})
		total += nodes
		return true
	})
	log.Debugf("perft divide depth=%d total=%d", depth, total)
	return results, total
}

// String renders a PerftDivide line in the "<move>: <nodes>" form spec
// §6.3 asks for.
func (r PerftResult) String() string {
	return fmt.Sprintf("%s: %d", r.Move.StringUci(), r.Nodes)
}
