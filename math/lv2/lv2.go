// Package lv2 implements 2D vector algebra over lane components,
// in the style of [github.com/soypat/geometry/ms2] but generic over
// scalar and 8-wide lane groups.
package lv2

import (
	"github.com/soypat/geometry/ms2"

	"octoray/math/lane"
)

// Vec is a 2D vector of lane components. A Vec over a lane group represents
// 8 independent 2D vectors processed in lockstep.
type Vec[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	X, Y C
}

// Concrete instantiations for the two lane widths.
type (
	V  = Vec[lane.F32, lane.Bool]
	V8 = Vec[lane.F32x8, lane.Mask8]
)

// Elem returns a vector with all lanes of each component set from float literals.
func Elem[C lane.Comp[C, M], M lane.Mask[C, M]](x, y float32) Vec[C, M] {
	var c C
	return Vec[C, M]{X: c.Splat(x), Y: c.Splat(y)}
}

// FromMS2 broadcasts a ms2 vector across all lanes.
func FromMS2[C lane.Comp[C, M], M lane.Mask[C, M]](v ms2.Vec) Vec[C, M] {
	return Elem[C, M](v.X, v.Y)
}

// Add returns the sum of a and b.
func Add[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Add(b.X), Y: a.Y.Add(b.Y)}
}

// Sub returns a-b.
func Sub[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Sub(b.X), Y: a.Y.Sub(b.Y)}
}

// Scale returns v scaled by the component s.
func Scale[C lane.Comp[C, M], M lane.Mask[C, M]](s C, v Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// MulElem returns the element-wise product of a and b.
func MulElem[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Mul(b.X), Y: a.Y.Mul(b.Y)}
}

// AbsElem returns the element-wise absolute value of v.
func AbsElem[C lane.Comp[C, M], M lane.Mask[C, M]](v Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: v.X.Abs(), Y: v.Y.Abs()}
}

// Dot returns the dot product of a and b.
func Dot[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) C {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y))
}

// Norm returns the euclidean length of v.
func Norm[C lane.Comp[C, M], M lane.Mask[C, M]](v Vec[C, M]) C {
	return Dot(v, v).Sqrt()
}

// Unit returns v scaled to unit length.
func Unit[C lane.Comp[C, M], M lane.Mask[C, M]](v Vec[C, M]) Vec[C, M] {
	n := Norm(v)
	var c C
	return Scale(c.Splat(1).Div(n), v)
}

// Select reconciles two vectors per lane: where m is set the result takes
// from ifTrue, elsewhere from ifFalse.
func Select[C lane.Comp[C, M], M lane.Mask[C, M]](m M, ifTrue, ifFalse Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: m.Select(ifTrue.X, ifFalse.X), Y: m.Select(ifTrue.Y, ifFalse.Y)}
}

// Max returns the maximum component of v.
func (v Vec[C, M]) Max() C { return v.X.Max(v.Y) }

// Min returns the minimum component of v.
func (v Vec[C, M]) Min() C { return v.X.Min(v.Y) }
