package march

import (
	"octoray/math/lane"
	"octoray/math/lv3"
)

// Ray is a ray in 3D space with an origin and a direction.
// A Ray over a lane group is 8 independent rays marched in lockstep.
type Ray[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	// Origin is the starting point of the ray.
	Origin lv3.Vec[C, M]
	// Dir is the direction the ray points in. Unit length.
	Dir lv3.Vec[C, M]
}

// NewRay creates a ray from an origin and a direction. The direction is
// normalized; distance arithmetic along the ray is only metrically correct
// for |dir| == 1.
func NewRay[C lane.Comp[C, M], M lane.Mask[C, M]](origin, dir lv3.Vec[C, M]) Ray[C, M] {
	return Ray[C, M]{Origin: origin, Dir: lv3.Unit(dir)}
}

// At returns the point along the ray at distance t, computed as a fused
// multiply-add for precision.
func (r Ray[C, M]) At(t C) lv3.Vec[C, M] {
	return lv3.MulAdd(t, r.Dir, r.Origin)
}
