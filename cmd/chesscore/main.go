/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Command chesscore is the perft driver: it parses a search depth and an
// optional FEN, runs perftDivide on the position, and prints the per-move
// breakdown followed by the total node count (spec §6.4).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/kopchess/chesscore/internal/engineerlog"
	"github.com/kopchess/chesscore/internal/movegen"
	"github.com/kopchess/chesscore/internal/position"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("chesscore", flag.ContinueOnError)
	cpuProfile := fs.Bool("profile", false, "write a CPU profile of the perft run to the working directory")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *verbose {
		engineerlog.SetLevel(logging.DEBUG)
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		fmt.Fprintln(os.Stderr, "usage: chesscore [-profile] [-verbose] <depth> [fen]")
		return 2
	}

	depth, err := strconv.Atoi(rest[0])
	if err != nil || depth < 0 {
		fmt.Fprintf(os.Stderr, "invalid depth %q: must be a non-negative integer\n", rest[0])
		return 2
	}

	fen := position.StartFen
	if len(rest) == 2 {
		fen = rest[1]
	}

	p, err := position.NewFromFen(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid position: %v\n", err)
		return 2
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	results, total := movegen.PerftDivide(p, depth)
	for _, r := range results {
		fmt.Println(r.String())
	}
	fmt.Printf("total: %d\n", total)
	return 0
}
