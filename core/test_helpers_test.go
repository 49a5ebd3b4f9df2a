// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphkit/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/graphkit/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight3   = 3.0
	WeightNeg = -1.5
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NRounds  = 100
)

// NewSquare RETURNS the weighted square A–B–C–D–A plus the chord A–C.
//
//	A──1──B
//	│ ╲   │
//	3   2 1
//	│     ╲│
//	D──2──C
func NewSquare(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	MustNoError(t, g.AddVertices(VertexA, VertexB, VertexC, VertexD), "AddVertices(A,B,C,D)")
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{VertexA, VertexB, Weight1},
		{VertexB, VertexC, Weight1},
		{VertexC, VertexD, Weight2},
		{VertexD, VertexA, Weight3},
		{VertexA, VertexC, Weight2},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		MustNoError(t, err, "AddEdge("+e.u+","+e.v+")")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
// Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: expected error %v, got %v", op, target, err)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d, want %d", op, got, want)
}

// MustEqualFloat FAILS the test if got != want (exact comparison; test weights are small integers).
func MustEqualFloat(t *testing.T, got, want float64, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v, want %v", op, got, want)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v, want %v", op, got, want)
}

// MustSortedStrings FAILS the test if ids are not sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()

	if sort.StringsAreSorted(ids) {
		return
	}

	t.Fatalf("%s: not sorted: %v", op, ids)
}

// MustNoErrorsFromChan drains errCh and FAILS the test on the first non-nil error.
// Goroutines report through the channel instead of calling t directly.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}
	}
}
