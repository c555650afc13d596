/*
 * chesscore - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 */

// Package moveslice holds the generated-move container used by the legal
// move generator. It wraps a deque rather than a bare slice so that future
// move-ordering hooks (killer moves, PV move) can push to the front in
// O(1), the same rationale the teacher's MoveList has for using
// gammazero/deque instead of append-only slices.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"

	"github.com/kopchess/chesscore/internal/types"
)

// MoveSlice is an ordered sequence of moves produced by the move generator.
// Its length is bounded in practice by chess's theoretical maximum of
// around 218 legal moves in a position (spec §4.6).
type MoveSlice struct {
	d *deque.Deque[types.Move]
}

// New creates an empty MoveSlice with capacity reserved for a typical
// legal-move count, avoiding reallocation during generation.
func New() *MoveSlice {
	return &MoveSlice{d: deque.New[types.Move](256)}
}

// PushBack appends m to the end of the list.
func (ms *MoveSlice) PushBack(m types.Move) {
	ms.d.PushBack(m)
}

// PushFront inserts m at the front of the list, used to prioritise a
// principal-variation or killer move ahead of the rest of the generation.
func (ms *MoveSlice) PushFront(m types.Move) {
	ms.d.PushFront(m)
}

// Len returns the number of moves currently held.
func (ms *MoveSlice) Len() int {
	return ms.d.Len()
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) types.Move {
	return ms.d.At(i)
}

// Clear empties the list without releasing its backing storage.
func (ms *MoveSlice) Clear() {
	ms.d.Clear()
}

// ForEach calls f for every move in order. Iteration stops early if f
// returns false.
func (ms *MoveSlice) ForEach(f func(types.Move) bool) {
	for i := 0; i < ms.d.Len(); i++ {
		if !f(ms.d.At(i)) {
			return
		}
	}
}

// String renders the list as a comma-separated sequence of UCI moves in
// braces, prefixed with the length, for debugging.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveSlice[%d]: {", ms.Len())
	for i := 0; i < ms.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ms.At(i).StringUci())
	}
	b.WriteString("}")
	return b.String()
}
