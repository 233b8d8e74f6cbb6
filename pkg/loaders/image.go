package loaders

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// BytesPerPixel is the number of bytes stored per pixel in ImageData (RGB)
const BytesPerPixel = 3

// ImageData contains a decoded image as tightly packed 8-bit RGB rows, top row first
type ImageData struct {
	Width  int
	Height int
	Pixels []byte // Row-major: Pixels[(y*Width + x)*3 + channel]
}

// LoadImage loads a PNG, JPEG, GIF, BMP, TIFF or WebP image from disk.
// Images larger than maxDimension on either side are downscaled to fit; 0 disables the limit.
func LoadImage(filename string, maxDimension int) (*ImageData, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", filename, err)
	}
	return FromImage(img, maxDimension), nil
}

// LoadImageBytes decodes an in-memory encoded image
func LoadImageBytes(data []byte, maxDimension int) (*ImageData, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img, maxDimension), nil
}

// FromImage converts a decoded image into packed RGB bytes
func FromImage(img image.Image, maxDimension int) *ImageData {
	bounds := img.Bounds()
	if maxDimension > 0 && (bounds.Dx() > maxDimension || bounds.Dy() > maxDimension) {
		img = resize.Thumbnail(uint(maxDimension), uint(maxDimension), img, resize.Lanczos3)
	}

	nrgba := imaging.Clone(img)
	width := nrgba.Bounds().Dx()
	height := nrgba.Bounds().Dy()
	pixels := make([]byte, width*height*BytesPerPixel)

	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			src := row[x*4:]
			dst := pixels[(y*width+x)*BytesPerPixel:]
			dst[0], dst[1], dst[2] = src[0], src[1], src[2]
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
