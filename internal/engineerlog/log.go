/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Package engineerlog sets up the single shared logging backend used across
// the core and driver, following the teacher's franky_logging package:
// one formatted stderr backend, one *logging.Logger per package area.
package engineerlog

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	once      sync.Once
	formatter logging.Formatter = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
	)
)

func setupBackend() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// Get returns the named logger, configuring the shared backend on first
// use. The core itself logs sparingly - debug traces for FEN parsing and
// move application, nothing on the hot path of move generation.
func Get(name string) *logging.Logger {
	once.Do(setupBackend)
	return logging.MustGetLogger(name)
}

// SetLevel adjusts the log level for every logger sharing the package
// backend, used by the CLI driver's verbosity flag.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
