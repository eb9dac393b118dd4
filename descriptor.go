package slof

import "github.com/pkg/errors"

// Colorspace tags. Informational only — they do not affect encoding or
// decoding.
const (
	ColorspaceSRGB   uint8 = 0
	ColorspaceLinear uint8 = 1
)

// maxPixels guards the worst case of 5 bytes per pixel so an encoded buffer
// can never exceed roughly 2 GiB.
const maxPixels = 400_000_000

// Descriptor is the image geometry and colorspace carried in the header.
type Descriptor struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// ErrInvalidDescriptor is returned when a Descriptor fails validation on the
// way into Encode. A parsed header whose descriptor fails validation yields
// ErrMalformedHeader instead.
var ErrInvalidDescriptor = errors.New("slof: invalid descriptor")

// validate checks the invariants shared by the header framer and the
// encoder/decoder preconditions: width, height >= 1; channels in {3,4};
// colorspace in {0,1}; width*height <= maxPixels.
func (d Descriptor) validate() error {
	if d.Width == 0 || d.Height == 0 {
		return errors.Wrap(ErrInvalidDescriptor, "width and height must be non-zero")
	}
	if d.Channels != 3 && d.Channels != 4 {
		return errors.Wrapf(ErrInvalidDescriptor, "channels must be 3 or 4, got %d", d.Channels)
	}
	if d.Colorspace != ColorspaceSRGB && d.Colorspace != ColorspaceLinear {
		return errors.Wrapf(ErrInvalidDescriptor, "colorspace must be 0 or 1, got %d", d.Colorspace)
	}
	if uint64(d.Width)*uint64(d.Height) > maxPixels {
		return errors.Wrapf(ErrInvalidDescriptor, "width*height exceeds %d pixels", maxPixels)
	}
	return nil
}
