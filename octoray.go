// Package octoray implements a signed distance function (SDF) scene
// representation that evaluates under either a scalar lane or an 8-wide
// lane group, so the same scene can back both the adaptive and the
// lock-step sphere tracers in package march.
package octoray

import (
	"errors"
	"fmt"

	"github.com/soypat/geometry/ms3"

	"octoray/math/lane"
	"octoray/math/lv3"
)

// SDF is an object with a signed distance function: Dist returns the
// signed distance of point p to the object's surface, negative inside,
// positive outside, zero on the boundary, in the units of p.
//
// Scenes are immutable once built and safe to share read-only across
// parallel workers. Evaluation is a pure function of p.
type SDF[C lane.Comp[C, M], M lane.Mask[C, M]] interface {
	Dist(p lv3.Vec[C, M]) C
	// Bounds returns a box containing all of the shape.
	Bounds() ms3.Box
}

// Builder wraps all SDF primitive and operation construction.
// Provides error handling strategies with panics or error accumulation
// during shape generation. Construction validates dimensions; evaluation
// never does, degenerate geometry yields IEEE-754 results.
type Builder[C lane.Comp[C, M], M lane.Mask[C, M]] struct {
	// NoDimensionPanic accumulates errors instead of panicking on
	// invalid shape dimensions. Check with Err.
	NoDimensionPanic bool
	accumErrs        []error
}

// Err returns errors accumulated during shape construction, nil if none.
func (bld *Builder[C, M]) Err() error {
	if len(bld.accumErrs) == 0 {
		return nil
	}
	return errors.Join(bld.accumErrs...)
}

func (bld *Builder[C, M]) shapeErrorf(msg string, args ...any) {
	if !bld.NoDimensionPanic {
		panic(fmt.Sprintf(msg, args...))
	}
	bld.accumErrs = append(bld.accumErrs, fmt.Errorf(msg, args...))
}

func (*Builder[C, M]) nilsdf(msg string) {
	panic("nil SDF argument: " + msg)
}

// splat converts a float literal to the builder's component type.
func (*Builder[C, M]) splat(v float32) C {
	var c C
	return c.Splat(v)
}
