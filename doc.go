// Package slof implements the "still looks ok" format: a lossy variant of a
// near-lossless, byte-aligned image codec. Red, green and blue channels are
// quantized to seven bits before encoding; alpha is preserved exactly.
//
// Basic usage for encoding:
//
//	data, err := slof.Encode(rgba, slof.Descriptor{Width: w, Height: h, Channels: 4})
//
// Basic usage for decoding:
//
//	pixels, desc, err := slof.Decode(data, 0)
package slof
