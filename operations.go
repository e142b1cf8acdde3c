package octoray

import (
	"fmt"

	"github.com/soypat/geometry/ms3"

	"octoray/math/lane"
	"octoray/math/lv3"
)

type opTranslate[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	s     SDF[C, M]
	off   lv3.Vec[C, M]
	offms ms3.Vec
}

// Translate moves the SDF by (dirX, dirY, dirZ).
func (bld *Builder[C, M]) Translate(s SDF[C, M], dirX, dirY, dirZ float32) SDF[C, M] {
	if s == nil {
		bld.nilsdf("Translate")
	}
	return &opTranslate[C, M]{
		s:     s,
		off:   lv3.Elem[C, M](dirX, dirY, dirZ),
		offms: ms3.Vec{X: dirX, Y: dirY, Z: dirZ},
	}
}

func (t *opTranslate[C, M]) Dist(p lv3.Vec[C, M]) C {
	// Shift the evaluation point by the offset.
	return t.s.Dist(lv3.Sub(p, t.off))
}

func (t *opTranslate[C, M]) Bounds() ms3.Box {
	return t.s.Bounds().Add(t.offms)
}

type opUnion[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	joined []SDF[C, M]
}

// Union combines two or more SDFs into the shape occupied by all of them,
// the hard minimum of their distances. Exact away from seams; boundaries
// where shapes intersect are continuous but not smooth.
func (bld *Builder[C, M]) Union(shaders ...SDF[C, M]) SDF[C, M] {
	if len(shaders) < 2 {
		panic("need at least 2 arguments to Union")
	}
	var u opUnion[C, M]
	for i, s := range shaders {
		if s == nil {
			bld.nilsdf(fmt.Sprintf("arg %d to Union", i))
		}
		if sub, ok := s.(*opUnion[C, M]); ok {
			// Flatten nested unions into a single n-ary minimum.
			u.joined = append(u.joined, sub.joined...)
		} else {
			u.joined = append(u.joined, s)
		}
	}
	return &u
}

func (u *opUnion[C, M]) Dist(p lv3.Vec[C, M]) C {
	d := u.joined[0].Dist(p)
	for _, s := range u.joined[1:] {
		d = d.Min(s.Dist(p))
	}
	return d
}

func (u *opUnion[C, M]) Bounds() ms3.Box {
	bb := u.joined[0].Bounds()
	for _, s := range u.joined[1:] {
		bb = bb.Union(s.Bounds())
	}
	return bb
}
