// Package curve3 models parametric space curves and evaluates their position
// and tangent at arbitrary angle parameters.
//
// # Curves
//
// [Curve] describes the shared capability: given an angle in radians, Eval
// returns the point on the curve and Deriv the literal derivative of the
// position formula with respect to the angle. Three concrete variants
// implement it:
//
//   - [Ellipse], a planar curve with independent semi-axes in the local XY
//     plane, offset in Z by its anchor
//   - [Circle], an ellipse refinement with both semi-axes equal to a single
//     radius
//   - [Helix], elliptical XY motion combined with linear Z advance per turn
//
// All variants are immutable value types: constructed once from plain
// numeric parameters, queried any number of times, never mutated. Every
// evaluation recomputes from the angle and the construction parameters;
// nothing is cached.
//
// Each variant carries a [Kind] tag, so heterogeneous collections can be
// filtered by variant (see [Circles] and [AsCircle]) without runtime type
// recovery beyond a checked assertion.
//
// # Degenerate parameters
//
// No construction validates its parameters. Zero or negative semi-axes,
// radii and pitches describe degenerate or mirrored geometry and evaluate
// normally; non-finite parameters propagate into non-finite results, which
// [Vec3.IsInf] and [Vec3.IsNaN] detect after the fact.
package curve3
