// Package geom implements the ray optics of a parabolic reflector.
//
// The reflector is the standard upward-opening parabola y = x²/(4f) with
// vertex at the origin, focus at (0, f) and directrix y = -f. The package
// provides:
//
//   - [Parabola]: the curve, its tangent/normal slopes and sampled points
//   - [Ray]: an origin plus direction, classified by [Classify]
//   - [Intersect]: ray/curve intersection returning the ray parameter t
//   - [ReflectRay]: single-bounce specular reflection producing a [Hit]
//   - [ParallelBundle], [FocalBundle]: canonical ray sets
//
// # Absence
//
// A ray that never meets the curve is a normal outcome, reported through a
// comma-ok return, never through an error, NaN or a negative t.
//
// # Determinism
//
// Everything here is pure math over float64: no goroutines, no hidden state,
// identical inputs always produce identical outputs.
package geom
