package texture

import "github.com/mvega/pathtracer/pkg/core"

// ImageSource is the external pixel-fetch collaborator an Image texture
// samples through. Implementations clamp (i, j) to their own bounds and
// return the debug magenta (255, 0, 255) when no image is loaded; the
// core never performs image decoding itself.
type ImageSource interface {
	Width() int
	Height() int
	Pixel(i, j int) (r, g, b uint8)
}

// Image is a bitmap texture sampling through an ImageSource.
type Image struct {
	Source ImageSource
}

// NewImage wraps an ImageSource as a Texture.
func NewImage(src ImageSource) *Image {
	return &Image{Source: src}
}

// Value samples the image at (u, v), clamped into [0, 0.999] before
// indexing, and flips v so that v=0 is the bottom row. A nil/zero-height
// source (no image loaded) yields cyan as a debug aid.
func (t *Image) Value(u, v float64, p core.Point3) core.Color {
	if t.Source == nil || t.Source.Height() <= 0 {
		return core.NewVec3(0, 1, 1)
	}

	u = core.NewInterval(0, 0.999).Clamp(u)
	v = 1.0 - core.NewInterval(0, 0.999).Clamp(v)

	i := int(u * float64(t.Source.Width()))
	j := int(v * float64(t.Source.Height()))

	r, g, b := t.Source.Pixel(i, j)

	const colorScale = 1.0 / 255.0
	return core.NewVec3(float64(r)*colorScale, float64(g)*colorScale, float64(b)*colorScale)
}

// StaticImageSource is an in-memory ImageSource backed by a flat,
// row-major []core.Color, used by procedural textures and tests.
type StaticImageSource struct {
	width, height int
	pixels        []core.Color
}

// NewStaticImageSource wraps a row-major pixel grid as an ImageSource.
func NewStaticImageSource(width, height int, pixels []core.Color) *StaticImageSource {
	return &StaticImageSource{width: width, height: height, pixels: pixels}
}

// Width returns the image width in pixels.
func (s *StaticImageSource) Width() int { return s.width }

// Height returns the image height in pixels.
func (s *StaticImageSource) Height() int { return s.height }

// Pixel returns the 8-bit channels at (i, j), clamped into bounds. An
// empty pixel grid yields magenta as a debug aid.
func (s *StaticImageSource) Pixel(i, j int) (r, g, b uint8) {
	if s.width <= 0 || s.height <= 0 || len(s.pixels) == 0 {
		return 255, 0, 255
	}
	if i < 0 {
		i = 0
	}
	if i >= s.width {
		i = s.width - 1
	}
	if j < 0 {
		j = 0
	}
	if j >= s.height {
		j = s.height - 1
	}

	c := s.pixels[j*s.width+i]
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

func toByte(channel float64) uint8 {
	if channel < 0 {
		channel = 0
	}
	if channel > 1 {
		channel = 1
	}
	return uint8(channel*255.999 + 0.0)
}
