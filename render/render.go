// Package render turns an SDF scene into a row-major RGB byte buffer by
// generating one camera ray per pixel (or per 8-pixel group), sphere
// tracing it and applying Phong shading with tone mapping. Pixels are
// independent: the whole image is a data-parallel map with no shared
// mutable state, so re-rendering identical inputs is bit-identical.
package render

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"golang.org/x/sync/errgroup"

	"octoray/march"
	"octoray/math/lane"
	"octoray/math/lv2"
	"octoray/math/lv3"
)

// Config carries the scene setup collaborator's inputs: camera, light,
// material and output geometry. The scene itself is passed to [Image] or
// [Image8] as a distance function closure.
type Config struct {
	// Width and Height of the output image in pixels. For [Image8] the
	// width must be a multiple of [lane.Width].
	Width, Height int
	// Origin is the camera position. Rays leave it toward the -Z axis.
	Origin ms3.Vec
	// LightDir is the direction of the single light. Normalized internally.
	LightDir ms3.Vec
	// Material is the base color of hit surfaces, components in [0,1].
	Material ms3.Vec
	// Relaxation is the overstepping factor for the scalar tracer.
	// Zero selects [march.DefaultRelaxation].
	Relaxation float32
	// Workers caps the render parallelism. Zero means GOMAXPROCS.
	Workers int
}

func (cfg *Config) validate(wide bool) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("non-positive image dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if wide && cfg.Width%lane.Width != 0 {
		return fmt.Errorf("width %d not a multiple of lane width %d", cfg.Width, lane.Width)
	}
	if cfg.Relaxation < 0 {
		return errors.New("negative relaxation factor")
	}
	return nil
}

func (cfg *Config) workers() int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Image renders the scene m one pixel at a time with the adaptive scalar
// tracer. The returned buffer is Width*Height*3 bytes of row-major RGB.
func Image(cfg Config, m func(lv3.V) lane.F32) ([]byte, error) {
	if err := cfg.validate(false); err != nil {
		return nil, err
	}
	origin := lv3.FromMS3[lane.F32, lane.Bool](cfg.Origin)
	ldir := lv3.Unit(lv3.FromMS3[lane.F32, lane.Bool](cfg.LightDir))
	mat := lv3.FromMS3[lane.F32, lane.Bool](cfg.Material)
	res := lv2.Elem[lane.F32, lane.Bool](float32(cfg.Width), float32(cfg.Height))
	trace := func(r march.Ray[lane.F32, lane.Bool]) march.Result[lane.F32, lane.Bool] {
		return march.Trace(m, r, cfg.Relaxation)
	}

	buf := make([]byte, cfg.Width*cfg.Height*3)
	var g errgroup.Group
	g.SetLimit(cfg.workers())
	for y := 0; y < cfg.Height; y++ {
		y := y
		g.Go(func() error {
			for x := 0; x < cfg.Width; x++ {
				pos := lv2.V{X: lane.F32(x), Y: lane.F32(y)}
				col := pixel(trace, m, pos, res, origin, ldir, mat)
				off := (y*cfg.Width + x) * 3
				buf[off+0] = conv(float32(col.X))
				buf[off+1] = conv(float32(col.Y))
				buf[off+2] = conv(float32(col.Z))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Image8 renders the scene m with the lock-step tracer, 8 consecutive
// same-row pixels per work unit. Output layout matches [Image].
func Image8(cfg Config, m func(lv3.V8) lane.F32x8) ([]byte, error) {
	if err := cfg.validate(true); err != nil {
		return nil, err
	}
	origin := lv3.FromMS3[lane.F32x8, lane.Mask8](cfg.Origin)
	ldir := lv3.Unit(lv3.FromMS3[lane.F32x8, lane.Mask8](cfg.LightDir))
	mat := lv3.FromMS3[lane.F32x8, lane.Mask8](cfg.Material)
	res := lv2.Elem[lane.F32x8, lane.Mask8](float32(cfg.Width), float32(cfg.Height))
	trace := func(r march.Ray[lane.F32x8, lane.Mask8]) march.Result[lane.F32x8, lane.Mask8] {
		return march.Trace8(m, r, cfg.Relaxation)
	}

	buf := make([]byte, cfg.Width*cfg.Height*3)
	var g errgroup.Group
	g.SetLimit(cfg.workers())
	for y := 0; y < cfg.Height; y++ {
		y := y
		g.Go(func() error {
			yv := lane.Splat8(float32(y))
			for x := 0; x < cfg.Width; x += lane.Width {
				// 8 consecutive x coordinates share one y.
				pos := lv2.V8{X: lane.Iota().AddF(float32(x)), Y: yv}
				col := pixel(trace, m, pos, res, origin, ldir, mat)
				// De-interleave lanes into contiguous RGB triples.
				off := (y*cfg.Width + x) * 3
				for i := 0; i < lane.Width; i++ {
					buf[off+i*3+0] = conv(col.X[i])
					buf[off+i*3+1] = conv(col.Y[i])
					buf[off+i*3+2] = conv(col.Z[i])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// pixel is the per-pixel pipeline shared by both lane widths: screen UV,
// camera ray, trace, shade, tone map. Only the tracer differs per width and
// is injected as a closure.
func pixel[C lane.Comp[C, M], M lane.Mask[C, M]](
	trace func(march.Ray[C, M]) march.Result[C, M],
	m func(lv3.Vec[C, M]) C,
	pos, res lv2.Vec[C, M],
	origin, ldir, mat lv3.Vec[C, M],
) lv3.Vec[C, M] {
	one := pos.X.Splat(1)

	// Aspect-correct UV: the shorter screen axis spans [-1,1].
	q := lv2.Sub(lv2.Scale(pos.X.Splat(2), pos), res)
	uv := lv2.Scale(one.Neg().Div(res.Min()), q)
	// Point the ray along the negative Z axis.
	dir := lv3.Vec[C, M]{X: uv.X, Y: uv.Y, Z: pos.X.Splat(-2)}
	ray := march.NewRay(origin, dir)

	tr := trace(ray)
	hitpos := ray.At(tr.Distance)
	nor := march.Normal(m, hitpos)

	// Light the material, black where the ray missed. Missed lanes carry
	// IEEE garbage through shading; the select discards it.
	lin := phong(ldir, nor, lv3.Neg(ray.Dir))
	col := lv3.Scale(lin, mat)
	var black lv3.Vec[C, M]
	col = lv3.Select(tr.Hit, col, black)

	// Gain correction referencing average luminance, then gamma.
	third := lv3.Elem[C, M](1./3, 1./3, 1./3)
	gain := one.MulF(1.8).Div(one.Add(lv3.Dot(col, third)))
	col = lv3.Scale(gain, col)
	return lv3.Pow(col, one.Splat(1/2.2))
}

// phong computes Phong illumination: ambient 1, diffuse 3, specular 3 with
// shininess 20. https://en.wikipedia.org/wiki/Phong_shading
func phong[C lane.Comp[C, M], M lane.Mask[C, M]](ldir, nor, eye lv3.Vec[C, M]) C {
	var zero C
	one := zero.Splat(1)
	ks := zero.Splat(3)
	kd := zero.Splat(3)
	ka := one
	al := zero.Splat(20)

	// reflect(l,n) = 2*n*dot(n,l) - l
	rm := lv3.Sub(lv3.Scale(lv3.Dot(nor, ldir).MulF(2), nor), ldir)
	diff := kd.Mul(lv3.Dot(ldir, nor).Clamp(zero, one))
	spec := ks.Mul(lv3.Dot(rm, eye).Clamp(zero, one).Pow(al))
	return ka.Add(diff.Add(spec))
}

// conv converts a color channel in [0,1] to a byte. Out-of-range values are
// clamped first: Go's float to integer conversion is unspecified out of
// range.
func conv(x float32) uint8 {
	return uint8(math32.Min(math32.Max(x, 0), 1) * 255)
}
