package octoaux_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/geometry/ms3"
	"golang.org/x/image/bmp"

	"octoray"
	"octoray/math/lane"
	"octoray/octoaux"
	"octoray/render"
)

func gradientRGB(width, height int) []byte {
	rgb := make([]byte, width*height*3)
	for i := 0; i < width*height; i++ {
		rgb[i*3+0] = byte(i * 5)
		rgb[i*3+1] = byte(i * 11)
		rgb[i*3+2] = byte(i * 17)
	}
	return rgb
}

func TestRGBAImage(t *testing.T) {
	const w, h = 4, 3
	rgb := gradientRGB(w, h)
	img, err := octoaux.RGBAImage(w, h, rgb)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("bounds %v", img.Bounds())
	}
	i := 2*w + 1 // pixel (1,2)
	want := color.RGBA{R: rgb[i*3], G: rgb[i*3+1], B: rgb[i*3+2], A: 0xff}
	if got := img.RGBAAt(1, 2); got != want {
		t.Errorf("pixel (1,2): got %v, want %v", got, want)
	}

	if _, err := octoaux.RGBAImage(w, h, rgb[:len(rgb)-1]); err == nil {
		t.Error("short buffer must error")
	}
}

func TestEncodePNG(t *testing.T) {
	const w, h = 8, 5
	var buf bytes.Buffer
	if err := octoaux.EncodePNG(&buf, w, h, gradientRGB(w, h)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("decoded bounds %v", img.Bounds())
	}
}

func TestEncodeBMP(t *testing.T) {
	const w, h = 8, 5
	var buf bytes.Buffer
	if err := octoaux.EncodeBMP(&buf, w, h, gradientRGB(w, h)); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("decoded bounds %v", img.Bounds())
	}
}

func TestRenderPNGFile(t *testing.T) {
	var bld octoray.Builder[lane.F32x8, lane.Mask8]
	scene := bld.NewSphere(0.5)
	cfg := render.Config{
		Width:    32,
		Height:   24,
		Origin:   ms3.Vec{Z: 2},
		LightDir: ms3.Vec{X: 1, Y: 3, Z: 1},
		Material: ms3.Vec{X: 0.5, Y: 0.2, Z: 0.5},
	}
	filename := filepath.Join(t.TempDir(), "sphere.png")
	if err := octoaux.RenderPNGFile(filename, cfg, scene.Dist); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != cfg.Width || img.Bounds().Dy() != cfg.Height {
		t.Errorf("decoded bounds %v", img.Bounds())
	}
}
