package slof

import (
	"os"

	"github.com/pkg/errors"
)

// WriteFile encodes pixels and writes the result to path. It returns the
// number of bytes written.
func WriteFile(path string, pixels []byte, desc Descriptor) (int, error) {
	encoded, err := Encode(pixels, desc)
	if err != nil {
		return 0, errors.Wrapf(err, "WriteFile %s", path)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return 0, errors.Wrapf(err, "WriteFile %s", path)
	}
	return len(encoded), nil
}

// ReadFile reads path and decodes it. channels requests a specific output
// channel count (0, 3, or 4; see Decode).
func ReadFile(path string, channels int) ([]byte, Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Descriptor{}, errors.Wrapf(err, "ReadFile %s", path)
	}
	pixels, desc, err := Decode(data, channels)
	if err != nil {
		return nil, Descriptor{}, errors.Wrapf(err, "ReadFile %s", path)
	}
	return pixels, desc, nil
}
