// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Sentinels carry no parameters; context is attached with %w at the call site.
//   • Constructors never panic at runtime; option constructors may panic on
//     meaningless input (nil functions, inverted ranges).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum accepted by the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a programmer error while composing
// constructors (nil constructor, nil target graph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrEmptyNetwork indicates a network description without any nodes.
var ErrEmptyNetwork = errors.New("builder: network has no nodes")

// ErrDecode indicates that a YAML network document could not be decoded.
var ErrDecode = errors.New("builder: decode network")
