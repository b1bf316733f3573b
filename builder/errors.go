// SPDX-License-Identifier: MIT
// Package: pathmx/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, offending values) is attached with %w at the call site.
//   • Generate never panics; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates a negative vertex count.
// Zero and one vertex are valid and yield an edgeless graph.
var ErrTooFewVertices = errors.New("builder: vertex count too small")

// ErrInvalidDensity indicates a density percentage above 100.
// Zero and negative densities are valid and yield an edgeless graph.
var ErrInvalidDensity = errors.New("builder: density out of range")
