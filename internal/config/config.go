/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Package config holds the tunable evaluation weights, following the
// teacher's config package: a package-level Settings value pre-populated
// with defaults in init(), optionally overridden by a TOML file via
// Load.
package config

import (
	"github.com/BurntSushi/toml"
)

// EvalWeights are the tunable constants the evaluator sums into its
// centipawn score (spec §4.8). Unlike the teacher's evalConfiguration,
// there is no UseX toggle per term - the core spec has no lazy-eval path
// or pawn cache, so every term is always active.
type EvalWeights struct {
	PawnValue   int
	KnightValue int
	BishopValue int
	RookValue   int
	QueenValue  int

	BishopPairBonus int

	PassedPawnBonus     int
	IsolatedPawnPenalty int
	DoubledPawnPenalty  int
	PawnShieldBonus     int
}

type settings struct {
	Eval EvalWeights
}

// Settings is the global, process-wide configuration. It is always
// usable as-is; Load only overrides fields present in the given file.
var Settings settings

func init() {
	Settings.Eval = EvalWeights{
		PawnValue:   100,
		KnightValue: 320,
		BishopValue: 330,
		RookValue:   500,
		QueenValue:  900,

		BishopPairBonus: 50,

		PassedPawnBonus:     100,
		IsolatedPawnPenalty: 20,
		DoubledPawnPenalty:  10,
		PawnShieldBonus:     10,
	}
}

// Load overlays TOML settings from path onto the compiled-in defaults.
// A missing or malformed file is returned as an error; callers that only
// want the defaults need not call Load at all.
func Load(path string) error {
	_, err := toml.DecodeFile(path, &Settings)
	return err
}
