package slof

// predictorState is the pair (previous pixel, 64-slot index table) shared in
// structure by the encoder and decoder. It is local to a single encode or
// decode call and is never durable across calls.
type predictorState struct {
	previous Pixel
	index    [64]Pixel
}

// newPredictorState returns a freshly (re)initialized predictor: previous =
// (0, 0, 0, 255), every index slot the zero pixel.
func newPredictorState() predictorState {
	return predictorState{previous: startPixel}
}
