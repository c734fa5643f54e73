/*
Package geom holds the two dimensional point math shared by the outline
and rendering packages, plus exact quadratic bezier trimming.

Coordinates are scene units with the origin at the scene center, X to the
right and Y up. Mapping to pixels is done by package layout.
*/
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp returns the point at t between p and q. It is written as
// p*(1-t) + q*t so that t == 0 and t == 1 give back p and q exactly.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: Lerp(p.X, q.X, t), Y: Lerp(p.Y, q.Y, t)}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// IsNaN reports whether either coordinate is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// A Rectangle contains the points (X, Y) where Min.X <= X <= Max.X,
// Min.Y <= Y <= Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Dx returns r's width.
func (r Rectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Lerp interpolates between a and b.
func Lerp[F constraints.Float](a, b, t F) F {
	return a*(1-t) + b*t
}

// Clamp01 clamps x in [0,1].
func Clamp01[F constraints.Float](x F) F {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
