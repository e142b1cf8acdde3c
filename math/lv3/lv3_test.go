package lv3_test

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"octoray/math/lane"
	"octoray/math/lv3"
)

const tol = 1e-4

func randVec(rng *rand.Rand) (lv3.V, ms3.Vec) {
	x := rng.Float32()*4 - 2
	y := rng.Float32()*4 - 2
	z := rng.Float32()*4 - 2
	return lv3.Elem[lane.F32, lane.Bool](x, y, z), ms3.Vec{X: x, Y: y, Z: z}
}

func closeTo(a lane.F32, b float32) bool {
	return math32.Abs(float32(a)-b) < tol
}

func vecCloseTo(a lv3.V, b ms3.Vec) bool {
	return closeTo(a.X, b.X) && closeTo(a.Y, b.Y) && closeTo(a.Z, b.Z)
}

// The scalar instantiation must reproduce the ms3 reference algebra.
func TestScalarAgainstMS3(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 64; trial++ {
		a, ar := randVec(rng)
		b, br := randVec(rng)
		if got, want := lv3.Dot(a, b), ms3.Dot(ar, br); !closeTo(got, want) {
			t.Errorf("dot: got %v, want %v", got, want)
		}
		if got, want := lv3.Norm(a), ms3.Norm(ar); !closeTo(got, want) {
			t.Errorf("norm: got %v, want %v", got, want)
		}
		if got, want := lv3.Add(a, b), ms3.Add(ar, br); !vecCloseTo(got, want) {
			t.Errorf("add: got %v, want %v", got, want)
		}
		if got, want := lv3.Sub(a, b), ms3.Sub(ar, br); !vecCloseTo(got, want) {
			t.Errorf("sub: got %v, want %v", got, want)
		}
		if got, want := lv3.Scale(lane.F32(0.5), a), ms3.Scale(0.5, ar); !vecCloseTo(got, want) {
			t.Errorf("scale: got %v, want %v", got, want)
		}
		if got, want := lv3.AbsElem(a), ms3.AbsElem(ar); !vecCloseTo(got, want) {
			t.Errorf("abselem: got %v, want %v", got, want)
		}
		if got, want := lv3.MaxElem(a, b), ms3.MaxElem(ar, br); !vecCloseTo(got, want) {
			t.Errorf("maxelem: got %v, want %v", got, want)
		}
		if got, want := lv3.MinElem(a, b), ms3.MinElem(ar, br); !vecCloseTo(got, want) {
			t.Errorf("minelem: got %v, want %v", got, want)
		}
		if got, want := lv3.Unit(a), ms3.Unit(ar); !vecCloseTo(got, want) {
			t.Errorf("unit: got %v, want %v", got, want)
		}
		if got, want := lv3.MulElem(a, b), ms3.MulElem(ar, br); !vecCloseTo(got, want) {
			t.Errorf("mulelem: got %v, want %v", got, want)
		}
	}
}

func TestMulAddReductions(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 32; trial++ {
		v, vr := randVec(rng)
		add, addr := randVec(rng)
		s := rng.Float32()*4 - 2
		got := lv3.MulAdd(lane.F32(s), v, add)
		want := ms3.Add(ms3.Scale(s, vr), addr)
		if !vecCloseTo(got, want) {
			t.Errorf("muladd: got %v, want %v", got, want)
		}
		if got, want := v.Max(), math32.Max(vr.X, math32.Max(vr.Y, vr.Z)); !closeTo(got, want) {
			t.Errorf("max reduce: got %v, want %v", got, want)
		}
		if got, want := v.Min(), math32.Min(vr.X, math32.Min(vr.Y, vr.Z)); !closeTo(got, want) {
			t.Errorf("min reduce: got %v, want %v", got, want)
		}
	}
}

func widen(vs [lane.Width]lv3.V) lv3.V8 {
	var w lv3.V8
	for i, v := range vs {
		w.X[i] = float32(v.X)
		w.Y[i] = float32(v.Y)
		w.Z[i] = float32(v.Z)
	}
	return w
}

// Wide vector algebra must agree exactly lane-wise with the scalar path.
func TestWideLanewise(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var as, bs [lane.Width]lv3.V
	for i := range as {
		as[i], _ = randVec(rng)
		bs[i], _ = randVec(rng)
	}
	a8, b8 := widen(as), widen(bs)

	dot := lv3.Dot(a8, b8)
	norm := lv3.Norm(a8)
	unit := lv3.Unit(a8)
	sum := lv3.Add(a8, b8)
	for i := 0; i < lane.Width; i++ {
		if lane.F32(dot[i]) != lv3.Dot(as[i], bs[i]) {
			t.Errorf("dot lane %d diverges from scalar", i)
		}
		if lane.F32(norm[i]) != lv3.Norm(as[i]) {
			t.Errorf("norm lane %d diverges from scalar", i)
		}
		su := lv3.Unit(as[i])
		if lane.F32(unit.X[i]) != su.X || lane.F32(unit.Y[i]) != su.Y || lane.F32(unit.Z[i]) != su.Z {
			t.Errorf("unit lane %d diverges from scalar", i)
		}
		ss := lv3.Add(as[i], bs[i])
		if lane.F32(sum.X[i]) != ss.X || lane.F32(sum.Y[i]) != ss.Y || lane.F32(sum.Z[i]) != ss.Z {
			t.Errorf("add lane %d diverges from scalar", i)
		}
	}
}

func TestSelect(t *testing.T) {
	a := lv3.Elem[lane.F32x8, lane.Mask8](1, 2, 3)
	b := lv3.Elem[lane.F32x8, lane.Mask8](-1, -2, -3)
	var m lane.Mask8
	for i := range m {
		m[i] = i%2 == 0
	}
	got := lv3.Select(m, a, b)
	for i := 0; i < lane.Width; i++ {
		want := b
		if m[i] {
			want = a
		}
		if got.X[i] != want.X[i] || got.Y[i] != want.Y[i] || got.Z[i] != want.Z[i] {
			t.Errorf("select lane %d wrong", i)
		}
	}
	// Scalar masks behave like branches.
	sa := lv3.Elem[lane.F32, lane.Bool](1, 2, 3)
	sb := lv3.Elem[lane.F32, lane.Bool](4, 5, 6)
	if lv3.Select(lane.Bool(true), sa, sb) != sa {
		t.Error("true select must pick first vector")
	}
	if lv3.Select(lane.Bool(false), sa, sb) != sb {
		t.Error("false select must pick second vector")
	}
}

func TestFromMS3Splat(t *testing.T) {
	v := ms3.Vec{X: 1, Y: -2, Z: 3}
	w := lv3.FromMS3[lane.F32x8, lane.Mask8](v)
	for i := 0; i < lane.Width; i++ {
		if w.X[i] != 1 || w.Y[i] != -2 || w.Z[i] != 3 {
			t.Errorf("broadcast lane %d wrong: %v %v %v", i, w.X[i], w.Y[i], w.Z[i])
		}
	}
	s := lv3.Splat[lane.F32, lane.Bool](lane.F32(7))
	if s.X != 7 || s.Y != 7 || s.Z != 7 {
		t.Errorf("splat wrong: %+v", s)
	}
}
