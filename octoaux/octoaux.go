// Package octoaux provides auxiliary glue around package render: wrapping
// raw RGB buffers into images and saving them to encoded files. Ideally
// users implement their own output paths since applications vary widely.
package octoaux

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"octoray/math/lane"
	"octoray/math/lv3"
	"octoray/render"
)

// RGBAImage wraps a render buffer of width*height RGB triples into an
// [image.RGBA] with full alpha.
func RGBAImage(width, height int, rgb []byte) (*image.RGBA, error) {
	if len(rgb) != width*height*3 {
		return nil, fmt.Errorf("rgb buffer length %d does not match %dx%d image", len(rgb), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = rgb[i*3+0]
		img.Pix[i*4+1] = rgb[i*3+1]
		img.Pix[i*4+2] = rgb[i*3+2]
		img.Pix[i*4+3] = 0xff
	}
	return img, nil
}

// EncodePNG writes the render buffer to w as a PNG image.
func EncodePNG(w io.Writer, width, height int, rgb []byte) error {
	img, err := RGBAImage(width, height, rgb)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// EncodeBMP writes the render buffer to w as an uncompressed BMP image.
// Faster than PNG for quick dumps of large renders.
func EncodeBMP(w io.Writer, width, height int, rgb []byte) error {
	img, err := RGBAImage(width, height, rgb)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

// RenderPNGFile renders the scene with the lock-step tracer and saves the
// result to a PNG file with said filename.
func RenderPNGFile(filename string, cfg render.Config, m func(lv3.V8) lane.F32x8) error {
	rgb, err := render.Image8(cfg, m)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = EncodePNG(fp, cfg.Width, cfg.Height, rgb)
	if err != nil {
		return err
	}
	return fp.Sync()
}
