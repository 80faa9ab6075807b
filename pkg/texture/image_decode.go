package texture

import (
	"fmt"
	"image"
	_ "image/jpeg" // register the stdlib JPEG decoder
	_ "image/png"  // register the stdlib PNG decoder
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DecodedImageSource adapts a decoded image.Image into an ImageSource,
// the boundary where this module hands image decoding off to an external
// collaborator: the ray-tracing core never imports an image codec itself.
type DecodedImageSource struct {
	img    image.Image
	bounds image.Rectangle
}

// DecodeImageSource decodes r as PNG or JPEG (via the standard library) or,
// for formats the standard library doesn't cover, BMP or TIFF (via
// golang.org/x/image, the same module the retrieval pack's gazed/vu engine
// depends on for its texture loading path).
func DecodeImageSource(r io.Reader) (*DecodedImageSource, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return decodeWithExtendedCodecs(r, err)
	}
	_ = format
	return &DecodedImageSource{img: img, bounds: img.Bounds()}, nil
}

func decodeWithExtendedCodecs(r io.Reader, stdlibErr error) (*DecodedImageSource, error) {
	seeker, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("decode image: %w", stdlibErr)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("decode image: %w", stdlibErr)
	}

	if img, err := bmp.Decode(seeker); err == nil {
		return &DecodedImageSource{img: img, bounds: img.Bounds()}, nil
	}

	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("decode image: %w", stdlibErr)
	}
	if img, err := tiff.Decode(seeker); err == nil {
		return &DecodedImageSource{img: img, bounds: img.Bounds()}, nil
	}

	return nil, fmt.Errorf("decode image: unsupported format: %w", stdlibErr)
}

// Width returns the image width in pixels.
func (d *DecodedImageSource) Width() int { return d.bounds.Dx() }

// Height returns the image height in pixels.
func (d *DecodedImageSource) Height() int { return d.bounds.Dy() }

// Pixel returns the 8-bit channels at (i, j), clamped into bounds.
func (d *DecodedImageSource) Pixel(i, j int) (r, g, b uint8) {
	w, h := d.Width(), d.Height()
	if w <= 0 || h <= 0 {
		return 255, 0, 255
	}
	if i < 0 {
		i = 0
	}
	if i >= w {
		i = w - 1
	}
	if j < 0 {
		j = 0
	}
	if j >= h {
		j = h - 1
	}

	rr, gg, bb, _ := d.img.At(d.bounds.Min.X+i, d.bounds.Min.Y+j).RGBA()
	return uint8(rr >> 8), uint8(gg >> 8), uint8(bb >> 8)
}
