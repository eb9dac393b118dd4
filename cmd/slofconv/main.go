// Command slofconv converts images between PNG and slof format. The input is
// decoded according to its extension and the output encoded according to its
// own (.png or .slof).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/skandau/slof"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: slofconv <infile> <outfile>")
		fmt.Fprintln(os.Stderr, "  slofconv input.png output.slof")
		fmt.Fprintln(os.Stderr, "  slofconv input.slof output.png")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	in, out := flag.Arg(0), flag.Arg(1)

	img, err := load(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cant load/decode %s: %s\n", in, err)
		os.Exit(1)
	}

	if err := save(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "cant write/encode %s: %s\n", out, err)
		os.Exit(1)
	}
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".png"):
		return png.Decode(f)
	case strings.HasSuffix(path, ".slof"):
		return slof.DecodeImage(f)
	default:
		return nil, fmt.Errorf("unrecognized input extension: %s", path)
	}
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".png"):
		return png.Encode(f, img)
	case strings.HasSuffix(path, ".slof"):
		return slof.EncodeImage(f, img)
	default:
		return fmt.Errorf("unrecognized output extension: %s", path)
	}
}
