package slof

import "github.com/pkg/errors"

// ErrInvalidChannels is returned when a requested output channel count is
// neither 0 (use the header's), 3, nor 4.
var ErrInvalidChannels = errors.New("slof: channels must be 0, 3 or 4")

// ErrBufferTooSmall is returned when data is shorter than a header plus an
// end marker.
var ErrBufferTooSmall = errors.New("slof: buffer smaller than header + end marker")

// Decode consumes a slof byte stream and reproduces a pixel buffer of
// width*height*effectiveChannels bytes, where effectiveChannels is channels
// if channels is 3 or 4, else the channel count recorded in the header.
// channels must be 0, 3, or 4.
//
// Decode tolerates a truncated chunk stream: once the read cursor runs past
// the chunk region, remaining output pixels repeat the last decoded pixel.
// Trailing bytes beyond the pixel budget are ignored.
func Decode(data []byte, channels int) ([]byte, Descriptor, error) {
	if channels != 0 && channels != 3 && channels != 4 {
		return nil, Descriptor{}, errors.Wrapf(ErrInvalidChannels, "got %d", channels)
	}
	if len(data) < headerSize+endMarkerSize {
		return nil, Descriptor{}, errors.Wrap(ErrBufferTooSmall, "Decode")
	}

	desc, err := parseHeader(data)
	if err != nil {
		return nil, Descriptor{}, errors.Wrap(err, "Decode")
	}

	effChannels := int(desc.Channels)
	if channels == 3 || channels == 4 {
		effChannels = channels
	}

	pxLen := int(desc.Width) * int(desc.Height) * effChannels
	out := make([]byte, pxLen)

	st := newPredictorState()
	px := st.previous

	chunksLen := len(data) - endMarkerSize
	p := headerSize
	run := 0

	for pxPos := 0; pxPos < pxLen; pxPos += effChannels {
		if run > 0 {
			run--
		} else if p < chunksLen {
			b1 := data[p]
			p++

			switch {
			case b1 == opRGBA:
				px.R, px.G, px.B, px.A = data[p], data[p+1], data[p+2], data[p+3]
				p += 4
			case b1 == opRGB:
				px.R, px.G, px.B = data[p], data[p+1], data[p+2]
				p += 3
			case b1&mask2 == opIndex:
				px = st.index[b1]
			case b1&mask2 == opDiff:
				px.R += ((b1 >> 4) & 0x03) - diffBias
				px.G += ((b1 >> 2) & 0x03) - diffBias
				px.B += (b1 & 0x03) - diffBias
			case b1&mask2 == opLuma:
				b2 := data[p]
				p++
				vg := int8(b1&0x3f) - lumaGBias
				px.R += byte(vg) - lumaRBBias + ((b2 >> 4) & 0x0f)
				px.G += byte(vg)
				px.B += byte(vg) - lumaRBBias + (b2 & 0x0f)
			case b1&mask2 == opRun:
				run = int(b1 & 0x3f)
			}

			st.index[px.Hash()] = px
		}

		out[pxPos+0] = px.R << 1
		out[pxPos+1] = px.G << 1
		out[pxPos+2] = px.B << 1
		if effChannels == 4 {
			out[pxPos+3] = px.A
		}
	}

	return out, desc, nil
}
