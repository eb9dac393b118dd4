package slof

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

func init() {
	image.RegisterFormat("slof", string(magic[:]), DecodeImage, DecodeConfig)
}

// EncodeImage converts m to NRGBA and writes it to w in slof format using
// ColorspaceSRGB.
func EncodeImage(w io.Writer, m image.Image) error {
	b := m.Bounds()
	width, height := b.Dx(), b.Dy()

	nrgba, ok := m.(*image.NRGBA)
	if !ok {
		dst := image.NewNRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Set(x, y, m.At(x, y))
			}
		}
		nrgba = dst
	}

	pixels := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		srcRow := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pixels[y*width*4:(y+1)*width*4], nrgba.Pix[srcRow:srcRow+width*4])
	}

	encoded, err := Encode(pixels, Descriptor{
		Width:      uint32(width),
		Height:     uint32(height),
		Channels:   4,
		Colorspace: ColorspaceSRGB,
	})
	if err != nil {
		return errors.Wrap(err, "EncodeImage")
	}
	if _, err := w.Write(encoded); err != nil {
		return errors.Wrap(err, "EncodeImage")
	}
	return nil
}

// DecodeImage reads a slof stream from r and returns it as an *image.NRGBA.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeImage")
	}

	pixels, desc, err := Decode(data, 4)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeImage")
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(desc.Width), int(desc.Height)))
	copy(img.Pix, pixels)
	return img, nil
}

// DecodeConfig reads just enough of r to recover the image dimensions and
// color model without decoding the chunk stream.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, errors.Wrap(err, "DecodeConfig")
	}

	desc, err := parseHeader(buf)
	if err != nil {
		return image.Config{}, errors.Wrap(err, "DecodeConfig")
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(desc.Width),
		Height:     int(desc.Height),
	}, nil
}
