package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// ImageData contains loaded image data as a row-major color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Color
	Format string // Decoder that read the file: "png", "jpeg", "bmp", "tiff" or "webp"
}

// LoadImage loads an image at full resolution
func LoadImage(filename string) (*ImageData, error) {
	return LoadImageMax(filename, 0)
}

// LoadImageMax loads an image and, when maxSize > 0 and either side is
// larger, downscales it with a Catmull-Rom filter so the longer side is maxSize
func LoadImageMax(filename string, maxSize int) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	// Normalize to 16-bit RGBA, resampling if requested
	bounds := img.Bounds()
	width, height := scaledSize(bounds.Dx(), bounds.Dy(), maxSize)
	rgba := image.NewRGBA64(image.Rect(0, 0, width, height))
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)
	}

	pixels := make([]core.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := rgba.RGBA64At(x, y)
			// 16-bit channels, convert to [0, 1]
			pixels[y*width+x] = core.NewColor(
				float64(c.R)/65535.0,
				float64(c.G)/65535.0,
				float64(c.B)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Format: format,
	}, nil
}

// scaledSize fits width×height inside maxSize×maxSize keeping the aspect ratio
func scaledSize(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return width, height
	}
	if width >= height {
		return maxSize, max(1, height*maxSize/width)
	}
	return max(1, width*maxSize/height), maxSize
}

// LoadTexture loads an image file as a nearest-pixel texture
func LoadTexture(filename string, maxSize int) (*material.ImageTexture, error) {
	data, err := LoadImageMax(filename, maxSize)
	if err != nil {
		return nil, err
	}
	tex, err := material.NewImageTexture(data.Width, data.Height, data.Pixels)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", filename, err)
	}
	return tex, nil
}
