package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// Frame is a fixed-size, row-major buffer of pixel colors
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color // Pixels[y*Width + x]
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// AverageLuminance returns the mean luminance over all pixels
func (f *Frame) AverageLuminance() float64 {
	if len(f.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range f.Pixels {
		total += p.Luminance()
	}
	return total / float64(len(f.Pixels))
}

// ToImage converts the frame to 8-bit RGBA. Each channel is
// clamp(value*255, 0, 255).
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, colorToRGBA(f.At(x, y)))
		}
	}
	return img
}

// colorToRGBA converts a linear color to RGBA with clamping
func colorToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, v*255)))
}

// SharedFrame is the frame and camera shared by every tile worker. One mutex
// guards both; it is held only for a camera lookup or a pixel store, never
// while a ray is being traced.
type SharedFrame struct {
	mu     sync.Mutex
	frame  *Frame
	camera *Camera
}

// NewSharedFrame wraps frame and camera for concurrent use
func NewSharedFrame(frame *Frame, camera *Camera) *SharedFrame {
	return &SharedFrame{frame: frame, camera: camera}
}

// PixelRay returns the camera ray for pixel (x, y)
func (s *SharedFrame) PixelRay(x, y int) core.Ray {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.GetRay(x, y)
}

// Set stores the color of pixel (x, y)
func (s *SharedFrame) Set(x, y int, c core.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Set(x, y, c)
}
