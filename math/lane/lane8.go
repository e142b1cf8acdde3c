package lane

import "github.com/chewxy/math32"

// F32x8 is the 8-wide lane group component. All operations apply per lane
// with no cross-lane interaction; the group is 8 independent computations
// sharing one instruction stream.
type F32x8 [Width]float32

var _ Comp[F32x8, Mask8] = F32x8{}

// Splat8 returns a lane group with all lanes set to v.
func Splat8(v float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = v
	}
	return r
}

// Iota returns the lane group {0, 1, 2, 3, 4, 5, 6, 7}.
func Iota() F32x8 {
	var r F32x8
	for i := range r {
		r[i] = float32(i)
	}
	return r
}

func (F32x8) Splat(v float32) F32x8 { return Splat8(v) }

func (a F32x8) Add(b F32x8) F32x8 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a F32x8) Sub(b F32x8) F32x8 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (a F32x8) Mul(b F32x8) F32x8 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func (a F32x8) Div(b F32x8) F32x8 {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

func (a F32x8) Mod(b F32x8) F32x8 {
	for i := range a {
		a[i] = math32.Mod(a[i], b[i])
	}
	return a
}

func (a F32x8) Neg() F32x8 {
	for i := range a {
		a[i] = -a[i]
	}
	return a
}

func (a F32x8) AddF(v float32) F32x8 {
	for i := range a {
		a[i] += v
	}
	return a
}

func (a F32x8) MulF(v float32) F32x8 {
	for i := range a {
		a[i] *= v
	}
	return a
}

func (a F32x8) Abs() F32x8 {
	for i := range a {
		a[i] = math32.Abs(a[i])
	}
	return a
}

func (a F32x8) Min(b F32x8) F32x8 {
	for i := range a {
		a[i] = math32.Min(a[i], b[i])
	}
	return a
}

func (a F32x8) Max(b F32x8) F32x8 {
	for i := range a {
		a[i] = math32.Max(a[i], b[i])
	}
	return a
}

func (a F32x8) Clamp(lo, hi F32x8) F32x8 {
	for i := range a {
		if a[i] < lo[i] {
			a[i] = lo[i]
		} else if a[i] > hi[i] {
			a[i] = hi[i]
		}
	}
	return a
}

func (a F32x8) Pow(exp F32x8) F32x8 {
	for i := range a {
		a[i] = math32.Pow(a[i], exp[i])
	}
	return a
}

func (a F32x8) Sqrt() F32x8 {
	for i := range a {
		a[i] = math32.Sqrt(a[i])
	}
	return a
}

// MulAdd returns a*m + add per lane.
func (a F32x8) MulAdd(m, add F32x8) F32x8 {
	for i := range a {
		a[i] = a[i]*m[i] + add[i]
	}
	return a
}

func (a F32x8) Less(b F32x8) Mask8 {
	var m Mask8
	for i := range a {
		m[i] = a[i] < b[i]
	}
	return m
}

func (a F32x8) Greater(b F32x8) Mask8 {
	var m Mask8
	for i := range a {
		m[i] = a[i] > b[i]
	}
	return m
}

// Mask8 is the 8-wide mask produced by lane group comparisons.
type Mask8 [Width]bool

var _ Mask[F32x8, Mask8] = Mask8{}

func (m Mask8) Or(o Mask8) Mask8 {
	for i := range m {
		m[i] = m[i] || o[i]
	}
	return m
}

func (m Mask8) And(o Mask8) Mask8 {
	for i := range m {
		m[i] = m[i] && o[i]
	}
	return m
}

func (m Mask8) Not() Mask8 {
	for i := range m {
		m[i] = !m[i]
	}
	return m
}

func (m Mask8) All() bool {
	for _, b := range m {
		if !b {
			return false
		}
	}
	return true
}

func (m Mask8) Any() bool {
	for _, b := range m {
		if b {
			return true
		}
	}
	return false
}

func (m Mask8) Select(ifTrue, ifFalse F32x8) F32x8 {
	var r F32x8
	for i := range r {
		if m[i] {
			r[i] = ifTrue[i]
		} else {
			r[i] = ifFalse[i]
		}
	}
	return r
}
