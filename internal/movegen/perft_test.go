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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kopchess/chesscore/internal/position"
)

func TestPerftStartingPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	expected := []int64{20, 400, 8902, 197281, 4865609, 119060324}
	for depth, want := range expected {
		t.Run(fmt.Sprintf("depth%d", depth+1), func(t *testing.T) {
			if depth+1 >= 6 {
				t.Skip("depth 6 is exact but too slow for routine runs")
			}
			p := position.New()
			require.Equal(t, want, Perft(p, depth+1))
		})
	}
}

func TestPerftScenarios(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	cases := []struct {
		name  string
		fen   string
		depth int
		want  int64
	}{
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
		{"endgameRook", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624},
		{"promotionHeavy", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
		{"checkEvasion", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := position.NewFromFen(c.fen)
			require.NoError(t, err)
			require.Equal(t, c.want, Perft(p, c.depth))
		})
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	p := position.New()
	results, total := PerftDivide(p, 3)
	var sum int64
	for _, r := range results {
		sum += r.Nodes
	}
	require.Equal(t, total, sum)
	require.Equal(t, int64(8902), total)
}
