// Package lv3 implements 3D vector algebra over lane components,
// in the style of [github.com/soypat/geometry/ms3] but generic over
// scalar and 8-wide lane groups.
//
// All algebra is element-wise except Dot, Norm and Unit, which reduce
// across components. A Vec over a lane group is 8 independent vectors;
// none of these operations branch per lane.
package lv3

import (
	"github.com/soypat/geometry/ms3"

	"octoray/math/lane"
)

// Vec is a 3D vector of lane components.
type Vec[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	X, Y, Z C
}

// Concrete instantiations for the two lane widths.
type (
	V  = Vec[lane.F32, lane.Bool]
	V8 = Vec[lane.F32x8, lane.Mask8]
)

// Elem returns a vector with all lanes of each component set from float literals.
func Elem[C lane.Comp[C, M], M lane.Mask[C, M]](x, y, z float32) Vec[C, M] {
	var c C
	return Vec[C, M]{X: c.Splat(x), Y: c.Splat(y), Z: c.Splat(z)}
}

// FromMS3 broadcasts a ms3 vector across all lanes.
func FromMS3[C lane.Comp[C, M], M lane.Mask[C, M]](v ms3.Vec) Vec[C, M] {
	return Elem[C, M](v.X, v.Y, v.Z)
}

// Splat broadcasts the component s across all three vector components.
func Splat[C lane.Comp[C, M], M lane.Mask[C, M]](s C) Vec[C, M] {
	return Vec[C, M]{X: s, Y: s, Z: s}
}

// Add returns the sum of a and b.
func Add[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Add(b.X), Y: a.Y.Add(b.Y), Z: a.Z.Add(b.Z)}
}

// Sub returns a-b.
func Sub[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Sub(b.X), Y: a.Y.Sub(b.Y), Z: a.Z.Sub(b.Z)}
}

// Neg returns -v.
func Neg[C lane.Comp[C, M], M lane.Mask[C, M]](v Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg()}
}

// Scale returns v scaled by the component s.
func Scale[C lane.Comp[C, M], M lane.Mask[C, M]](s C, v Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: v.X.Mul(s), Y: v.Y.Mul(s), Z: v.Z.Mul(s)}
}

// MulElem returns the element-wise product of a and b.
func MulElem[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Mul(b.X), Y: a.Y.Mul(b.Y), Z: a.Z.Mul(b.Z)}
}

// AbsElem returns the element-wise absolute value of v.
func AbsElem[C lane.Comp[C, M], M lane.Mask[C, M]](v Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: v.X.Abs(), Y: v.Y.Abs(), Z: v.Z.Abs()}
}

// MaxElem returns the element-wise maximum of a and b.
func MaxElem[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Max(b.X), Y: a.Y.Max(b.Y), Z: a.Z.Max(b.Z)}
}

// MinElem returns the element-wise minimum of a and b.
func MinElem[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{X: a.X.Min(b.X), Y: a.Y.Min(b.Y), Z: a.Z.Min(b.Z)}
}

// MulAdd returns s*v + add per component.
func MulAdd[C lane.Comp[C, M], M lane.Mask[C, M]](s C, v, add Vec[C, M]) Vec[C, M] {
	return Vec[C, M]{
		X: v.X.MulAdd(s, add.X),
		Y: v.Y.MulAdd(s, add.Y),
		Z: v.Z.MulAdd(s, add.Z),
	}
}

// Pow raises every component of v to exp.
func Pow[C lane.Comp[C, M], M lane.Mask[C, M]](v Vec[C, M], exp C) Vec[C, M] {
	return Vec[C, M]{X: v.X.Pow(exp), Y: v.Y.Pow(exp), Z: v.Z.Pow(exp)}
}

// Dot returns the dot product of a and b.
func Dot[C lane.Comp[C, M], M lane.Mask[C, M]](a, b Vec[C, M]) C {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
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
	return Vec[C, M]{
		X: m.Select(ifTrue.X, ifFalse.X),
		Y: m.Select(ifTrue.Y, ifFalse.Y),
		Z: m.Select(ifTrue.Z, ifFalse.Z),
	}
}

// Max returns the maximum component of v.
func (v Vec[C, M]) Max() C { return v.X.Max(v.Y).Max(v.Z) }

// Min returns the minimum component of v.
func (v Vec[C, M]) Min() C { return v.X.Min(v.Y).Min(v.Z) }
