/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

package position

import "fmt"

// MalformedFEN reports a structurally or semantically invalid FEN string
// (spec §7): a missing field, a token that doesn't parse, or a value out
// of range.
type MalformedFEN struct {
	Fen    string
	Reason string
}

func (e *MalformedFEN) Error() string {
	return fmt.Sprintf("malformed FEN %q: %s", e.Fen, e.Reason)
}

// IllegalPosition reports a FEN that parsed structurally but fails a
// post-parse sanity check: a side with no king, or with more than one.
// Only kings are counted; other piece counts are not checked.
type IllegalPosition struct {
	Reason string
}

func (e *IllegalPosition) Error() string {
	return fmt.Sprintf("illegal position: %s", e.Reason)
}

// IllegalMove reports a caller-supplied move that is not legal in the
// current position. The internal legal-move generator never produces this
// error for its own output; it is surfaced only when an external driver
// applies a move it built itself (e.g. from a script or UCI string).
type IllegalMove struct {
	Reason string
}

func (e *IllegalMove) Error() string {
	return fmt.Sprintf("illegal move: %s", e.Reason)
}
