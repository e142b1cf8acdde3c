// Package march implements sphere tracing (ray marching) of signed
// distance functions, in a scalar adaptive variant and an 8-wide
// lock-step variant, plus surface normal estimation.
package march

import (
	"github.com/chewxy/math32"

	"octoray/math/lane"
	"octoray/math/lv3"
)

const (
	// Epsilon is the precision of all the algorithms in this package.
	// The hit tolerance is relative: a ray stops once the remaining
	// distance falls below t*Epsilon.
	Epsilon float32 = 0.001
	// MaxSteps is the maximum number of steps a marcher can take.
	// Exhausting the budget is a miss, never an error.
	MaxSteps = 64
	// MaxDist is the distance reported for rays that hit nothing.
	MaxDist float32 = math32.MaxFloat32
	// DefaultRelaxation is the overstepping relaxation factor w used by
	// [Trace] when none is given. Inherited from the enhanced sphere
	// tracing paper; tunable per scene, not something to correct.
	DefaultRelaxation float32 = 0.87
)

// Result is the outcome of marching a ray: the total distance traveled
// along it (MaxDist on a miss) and whether a surface was hit within
// tolerance. Over a lane group both fields are per-lane.
type Result[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	Distance C
	Hit      M
}

// Trace marches a single ray against the distance function m using the
// enhanced sphere tracing algorithm with relaxed overstepping:
// https://diglib.eg.org/bitstream/handle/10.2312/egs20181037/029-032.pdf
//
// Each step overshoots the conservative bound by a factor derived from the
// two previous step radii and falls back to plain sphere tracing whenever
// the overstep proves unsafe. w <= 0 selects [DefaultRelaxation].
func Trace(m func(lv3.V) lane.F32, ray Ray[lane.F32, lane.Bool], w float32) Result[lane.F32, lane.Bool] {
	if w <= 0 {
		w = DefaultRelaxation
	}
	var (
		rp float32 = 0 // previous step radius
		rc float32 = 1 // current step radius
		rn float32     // next step radius
		di float32 = 0 // overstep distance
		t  float32 = 0 // total distance traveled
	)
	for i := 0; i < MaxSteps; i++ {
		di = rc + w*rc*math32.Max(0.6, (di-rp+rc)/(di+rp-rc))
		rn = float32(m(ray.At(lane.F32(t + di))))
		if di > rc+rn {
			// Overstepped past the safe radius: fall back to the
			// conservative step and re-evaluate.
			di = rc
			rn = float32(m(ray.At(lane.F32(t + di))))
		}
		t += di
		if rn < t*Epsilon {
			return Result[lane.F32, lane.Bool]{Distance: lane.F32(t), Hit: true}
		}
		rp, rc = rc, rn
	}
	return Result[lane.F32, lane.Bool]{Distance: lane.F32(MaxDist), Hit: false}
}

// Trace8 marches 8 rays in lockstep against the distance function m.
//
// Adaptive overstepping needs per-ray branching, which defeats lane-grouped
// execution; this variant instead takes the conservative step for every lane
// and evaluates m exactly once per step for all 8 rays. Finished lanes are
// frozen with a mask select and the loop only exits once every lane has hit
// or overrun [MaxDist]. The relaxation argument is accepted for symmetry
// with [Trace] and ignored.
func Trace8(m func(lv3.V8) lane.F32x8, ray Ray[lane.F32x8, lane.Mask8], _ float32) Result[lane.F32x8, lane.Mask8] {
	var (
		t    lane.F32x8
		zero lane.F32x8
		hit  lane.Mask8
	)
	maxd := lane.Splat8(MaxDist)
	for i := 0; i < MaxSteps; i++ {
		// Safe step radius for every lane.
		h := m(ray.At(t))
		// A lane hit if its remaining distance is within tolerance.
		hit = h.Less(t.MulF(Epsilon))
		// Lanes are finished once they hit or went too far.
		finished := hit.Or(t.Greater(maxd))
		if finished.All() {
			break
		}
		// Advance unfinished lanes, freeze the rest.
		t = t.Add(finished.Select(zero, h))
	}
	return Result[lane.F32x8, lane.Mask8]{Distance: hit.Select(t, maxd), Hit: hit}
}

// Normal estimates the surface normal of the distance function m at p using
// tetrahedron finite differences: https://iquilezles.org/articles/normalsSDF/
//
// The estimate is only meaningful when p lies on, or very near, a surface.
func Normal[C lane.Comp[C, M], M lane.Mask[C, M]](m func(lv3.Vec[C, M]) C, p lv3.Vec[C, M]) lv3.Vec[C, M] {
	var c C
	x := c.Splat(1)
	y := c.Splat(-1)
	ep := c.Splat(Epsilon)

	xyy := lv3.Vec[C, M]{X: x, Y: y, Z: y}
	yyx := lv3.Vec[C, M]{X: y, Y: y, Z: x}
	yxy := lv3.Vec[C, M]{X: y, Y: x, Z: y}
	xxx := lv3.Vec[C, M]{X: x, Y: x, Z: x}

	n := lv3.Scale(m(lv3.MulAdd(ep, xyy, p)), xyy)
	n = lv3.Add(n, lv3.Scale(m(lv3.MulAdd(ep, yyx, p)), yyx))
	n = lv3.Add(n, lv3.Scale(m(lv3.MulAdd(ep, yxy, p)), yxy))
	n = lv3.Add(n, lv3.Scale(m(lv3.MulAdd(ep, xxx, p)), xxx))
	return lv3.Unit(n)
}
