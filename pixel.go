package slof

// Pixel is an (r, g, b, a) color, eight bits per channel.
type Pixel struct {
	R, G, B, A byte
}

// Equals reports whether two pixels are equal in all four channels.
func (p Pixel) Equals(o Pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B && p.A == o.A
}

// Hash computes the color-index slot for p: (3R + 5G + 7B + 11A) mod 64,
// all arithmetic on unsigned 8-bit operands with the modulus taken on the
// full sum.
func (p Pixel) Hash() uint8 {
	sum := uint32(p.R)*3 + uint32(p.G)*5 + uint32(p.B)*7 + uint32(p.A)*11
	return uint8(sum % 64)
}

var startPixel = Pixel{R: 0, G: 0, B: 0, A: 255}
