package texture

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// debugColor is returned by image textures that have no pixel data
var debugColor = core.NewVec3(0, 1, 1)

// ImageTexture samples colors from decoded 8-bit RGB pixel data
type ImageTexture struct {
	data             []byte
	width            int
	height           int
	bytesPerScanline int
}

// NewImageTexture creates a texture that owns the given decoded image. A nil image yields an empty texture.
func NewImageTexture(img *loaders.ImageData) *ImageTexture {
	if img == nil {
		return &ImageTexture{}
	}
	return &ImageTexture{
		data:             img.Pixels,
		width:            img.Width,
		height:           img.Height,
		bytesPerScanline: img.Width * loaders.BytesPerPixel,
	}
}

// LoadImageTexture loads an image file into a texture.
// On failure the returned texture is still usable and renders as the cyan debug color.
func LoadImageTexture(filename string, maxDimension int) (*ImageTexture, error) {
	img, err := loaders.LoadImage(filename, maxDimension)
	if err != nil {
		return &ImageTexture{}, err
	}
	return NewImageTexture(img), nil
}

// HasData reports whether the texture holds any pixels
func (t *ImageTexture) HasData() bool {
	return len(t.data) > 0
}

// Value samples the image with nearest-neighbor lookup. V=0 is the bottom row of the image.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if !t.HasData() {
		return debugColor
	}

	u = clamp(u, 0, 1)
	v = 1.0 - clamp(v, 0, 1) // Flip V to image coordinates

	i := int(u * float64(t.width))
	j := int(v * float64(t.height))
	if i >= t.width {
		i = t.width - 1
	}
	if j >= t.height {
		j = t.height - 1
	}

	const colorScale = 1.0 / 255.0
	pos := j*t.bytesPerScanline + i*loaders.BytesPerPixel
	return core.NewVec3(
		colorScale*float64(t.data[pos]),
		colorScale*float64(t.data[pos+1]),
		colorScale*float64(t.data[pos+2]),
	)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
