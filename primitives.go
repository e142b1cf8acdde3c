package octoray

import (
	"github.com/soypat/geometry/ms3"

	"octoray/math/lane"
	"octoray/math/lv3"
)

type sphere[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	r  C
	rf float32
}

// NewSphere creates a sphere centered at the origin of radius r.
func (bld *Builder[C, M]) NewSphere(r float32) SDF[C, M] {
	if r <= 0 {
		bld.shapeErrorf("zero or negative sphere radius")
	}
	return &sphere[C, M]{r: bld.splat(r), rf: r}
}

func (s *sphere[C, M]) Dist(p lv3.Vec[C, M]) C {
	return lv3.Norm(p).Sub(s.r)
}

func (s *sphere[C, M]) Bounds() ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: -s.rf, Y: -s.rf, Z: -s.rf},
		Max: ms3.Vec{X: s.rf, Y: s.rf, Z: s.rf},
	}
}

type box[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	half lv3.Vec[C, M]
	dims ms3.Vec
}

// NewBox creates a box centered at the origin with x,y,z dimensions.
func (bld *Builder[C, M]) NewBox(x, y, z float32) SDF[C, M] {
	if x <= 0 || y <= 0 || z <= 0 {
		bld.shapeErrorf("zero or negative box dimension")
	}
	return &box[C, M]{
		half: lv3.Elem[C, M](x/2, y/2, z/2),
		dims: ms3.Vec{X: x, Y: y, Z: z},
	}
}

func (b *box[C, M]) Dist(p lv3.Vec[C, M]) C {
	// Inigo Quilez's exact box SDF over half extents.
	q := lv3.Sub(lv3.AbsElem(p), b.half)
	var zero3 lv3.Vec[C, M]
	var zero C
	return lv3.Norm(lv3.MaxElem(q, zero3)).Add(q.Max().Min(zero))
}

func (b *box[C, M]) Bounds() ms3.Box {
	return ms3.NewCenteredBox(ms3.Vec{}, b.dims)
}
