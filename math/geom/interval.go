// Copyright © 2026 Lucent Labs.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "math"

// Interval is an ordered pair (Min, Max) of reals.
type Interval struct {
	Min, Max float64
}

// Empty and Universe are the two special intervals every other interval
// is built from: the empty set and the set of all reals.
var (
	Empty    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval builds an interval from its bounds.
func NewInterval(min, max float64) Interval { return Interval{Min: min, Max: max} }

// Size returns Max-Min.
func (iv Interval) Size() float64 { return iv.Max - iv.Min }

// Contains reports whether x lies in the closed interval [Min, Max].
func (iv Interval) Contains(x float64) bool { return iv.Min <= x && x <= iv.Max }

// Surrounds reports whether x lies in the open interval (Min, Max).
func (iv Interval) Surrounds(x float64) bool { return iv.Min < x && x < iv.Max }

// Clamp returns x clamped to [Min, Max].
func (iv Interval) Clamp(x float64) float64 {
	switch {
	case x < iv.Min:
		return iv.Min
	case x > iv.Max:
		return iv.Max
	}
	return x
}

// Expand returns an interval widened by delta in total, delta/2 on each
// side.
func (iv Interval) Expand(delta float64) Interval {
	pad := delta / 2
	return Interval{Min: iv.Min - pad, Max: iv.Max + pad}
}
