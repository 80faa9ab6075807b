package texture

import "github.com/mvega/pathtracer/pkg/core"

// NewCheckerboardImage builds a StaticImageSource holding a checkerboard
// pattern, handy for exercising Image without a real file.
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Color) *StaticImageSource {
	pixels := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize
			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}
	return NewStaticImageSource(width, height, pixels)
}

// NewUVDebugImage builds a StaticImageSource whose red/green channels
// encode the pixel's own UV coordinates, useful for sanity-checking UV
// mapping on a given geometry.
func NewUVDebugImage(width, height int) *StaticImageSource {
	pixels := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := float64(y) / float64(height-1)
			pixels[y*width+x] = core.NewVec3(u, v, 0)
		}
	}
	return NewStaticImageSource(width, height, pixels)
}
