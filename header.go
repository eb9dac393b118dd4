package slof

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// byteOrder is the wire byte order for every multi-byte integer in the
// header. All slof integers are big-endian.
var byteOrder binary.ByteOrder = binary.BigEndian

// headerSize is the fixed, exact size of a slof header in bytes.
const headerSize = 14

// endMarkerSize is the size of the fixed end-of-stream marker.
const endMarkerSize = 8

var magic = [4]byte{'s', 'l', 'o', 'f'}

// endMarker terminates every chunk stream.
var endMarker = [endMarkerSize]byte{0, 0, 0, 0, 0, 0, 0, 1}

// ErrMalformedHeader is returned when a buffer's 14-byte header fails to
// parse: wrong magic, zero width/height, an out-of-range channel or
// colorspace byte, or a pixel count over the guard.
var ErrMalformedHeader = errors.New("slof: malformed header")

// writeHeader serializes desc into the 14-byte slof header layout: magic,
// big-endian width, big-endian height, channels, colorspace.
func writeHeader(desc Descriptor) ([]byte, error) {
	if err := desc.validate(); err != nil {
		return nil, errors.Wrap(err, "writeHeader")
	}

	out := make([]byte, headerSize)
	copy(out[0:4], magic[:])
	byteOrder.PutUint32(out[4:8], desc.Width)
	byteOrder.PutUint32(out[8:12], desc.Height)
	out[12] = desc.Channels
	out[13] = desc.Colorspace
	return out, nil
}

// parseHeader recovers a Descriptor from the first 14 bytes of data. It
// fails if the magic does not match, or if the recovered descriptor itself
// fails validation (zero width/height, bad channels/colorspace, oversize
// guard).
func parseHeader(data []byte) (Descriptor, error) {
	if len(data) < headerSize {
		return Descriptor{}, errors.Wrap(ErrMalformedHeader, "buffer shorter than header")
	}
	if !bytes.Equal(data[0:4], magic[:]) {
		return Descriptor{}, errors.Wrap(ErrMalformedHeader, "bad magic")
	}

	desc := Descriptor{
		Width:      byteOrder.Uint32(data[4:8]),
		Height:     byteOrder.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}
	if err := desc.validate(); err != nil {
		return Descriptor{}, errors.Wrap(ErrMalformedHeader, err.Error())
	}
	return desc, nil
}
