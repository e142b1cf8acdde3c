package lane

import (
	"github.com/chewxy/math32"
)

// Width is the number of values a lane group processes in lockstep.
const Width = 8

// Comp is the capability set an algorithm needs from a lane component type.
// It has exactly two implementations: [F32], a single value, and [F32x8],
// a group of 8 values processed together. Code written against Comp runs
// identically under either, up to lane-parallel batching.
//
// Splat converts a float literal to C. Go has no associated constants so
// Splat hangs off a value receiver; the zero value of C is the 0 constant
// and Splat(1) the 1 constant.
type Comp[C, M any] interface {
	Splat(float32) C
	Add(C) C
	Sub(C) C
	Mul(C) C
	Div(C) C
	Mod(C) C
	Neg() C
	AddF(float32) C
	MulF(float32) C
	Abs() C
	Min(C) C
	Max(C) C
	Clamp(lo, hi C) C
	Pow(exp C) C
	Sqrt() C
	// MulAdd returns c*m + a.
	MulAdd(m, a C) C
	Less(C) M
	Greater(C) M
}

// Mask is the boolean counterpart of [Comp], produced by comparisons.
// Select is the only way results are reconciled across finished and
// unfinished lanes.
type Mask[C, M any] interface {
	Or(M) M
	And(M) M
	Not() M
	All() bool
	Any() bool
	Select(ifTrue, ifFalse C) C
}

// F32 is the scalar (arity-1) lane component.
type F32 float32

var _ Comp[F32, Bool] = F32(0)

func (F32) Splat(v float32) F32    { return F32(v) }
func (a F32) Add(b F32) F32        { return a + b }
func (a F32) Sub(b F32) F32        { return a - b }
func (a F32) Mul(b F32) F32        { return a * b }
func (a F32) Div(b F32) F32        { return a / b }
func (a F32) Mod(b F32) F32        { return F32(math32.Mod(float32(a), float32(b))) }
func (a F32) Neg() F32             { return -a }
func (a F32) AddF(v float32) F32   { return a + F32(v) }
func (a F32) MulF(v float32) F32   { return a * F32(v) }
func (a F32) Abs() F32             { return F32(math32.Abs(float32(a))) }
func (a F32) Min(b F32) F32        { return F32(math32.Min(float32(a), float32(b))) }
func (a F32) Max(b F32) F32        { return F32(math32.Max(float32(a), float32(b))) }
func (a F32) Clamp(lo, hi F32) F32 { return a.Max(lo).Min(hi) }
func (a F32) Pow(exp F32) F32      { return F32(math32.Pow(float32(a), float32(exp))) }
func (a F32) Sqrt() F32            { return F32(math32.Sqrt(float32(a))) }
func (a F32) MulAdd(m, add F32) F32 {
	return a*m + add
}
func (a F32) Less(b F32) Bool    { return a < b }
func (a F32) Greater(b F32) Bool { return a > b }

// Bool is the scalar mask.
type Bool bool

var _ Mask[F32, Bool] = Bool(false)

func (b Bool) Or(o Bool) Bool   { return b || o }
func (b Bool) And(o Bool) Bool  { return b && o }
func (b Bool) Not() Bool        { return !b }
func (b Bool) All() bool        { return bool(b) }
func (b Bool) Any() bool        { return bool(b) }
func (b Bool) Select(ifTrue, ifFalse F32) F32 {
	if b {
		return ifTrue
	}
	return ifFalse
}
