package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for material channels.
// The set of implementations is closed: *SolidTexture, *ImageTexture and
// *ProceduralTexture.
type Texture interface {
	// ColorAt returns the color at the given UV coordinates
	ColorAt(uv core.Vec2) core.Color

	isTexture()
}

// ScalarAt reads a grayscale value from t. Scalar maps (specularity,
// emission intensity) store their value in the red channel.
func ScalarAt(t Texture, uv core.Vec2) float64 {
	return t.ColorAt(uv).R
}

// SolidTexture provides a uniform color
type SolidTexture struct {
	Color core.Color
}

// NewSolid creates a new solid color texture
func NewSolid(color core.Color) *SolidTexture {
	return &SolidTexture{Color: color}
}

// NewScalar creates a solid texture holding value in every channel
func NewScalar(value float64) *SolidTexture {
	return &SolidTexture{Color: core.NewColor(value, value, value)}
}

// ColorAt returns the solid color regardless of UV
func (s *SolidTexture) ColorAt(core.Vec2) core.Color {
	return s.Color
}

func (*SolidTexture) isTexture() {}

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], y = 0 is the top row
}

// ErrPixelCount is returned when an image texture's pixel slice does not
// match its dimensions
var ErrPixelCount = errors.New("pixel count does not match texture size")

// NewImageTexture creates a new image texture. pixels must hold exactly
// width*height colors.
func NewImageTexture(width, height int, pixels []core.Color) (*ImageTexture, error) {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %dx%d texture with %d pixels", ErrPixelCount, width, height, len(pixels))
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// ColorAt samples the texture at the given UV coordinates using nearest-pixel lookup.
// u maps to columns and v to rows from the top; coordinates outside [0,1] clamp to the edge.
func (t *ImageTexture) ColorAt(uv core.Vec2) core.Color {
	if t.Width <= 0 || t.Height <= 0 {
		return core.Black
	}

	x := pixelIndex(uv.X, t.Width)
	y := pixelIndex(uv.Y, t.Height)

	return t.Pixels[y*t.Width+x]
}

func (*ImageTexture) isTexture() {}

// pixelIndex maps a texture coordinate to a pixel index in [0, size)
func pixelIndex(coord float64, size int) int {
	if math.IsNaN(coord) {
		return 0
	}
	i := int(math.Floor(coord * float64(size)))
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// ProceduralTexture computes a color from UV with a callback
type ProceduralTexture struct {
	Func func(uv core.Vec2) core.Color
}

// NewProcedural creates a procedural texture from fn
func NewProcedural(fn func(uv core.Vec2) core.Color) *ProceduralTexture {
	return &ProceduralTexture{Func: fn}
}

// ColorAt evaluates the callback
func (p *ProceduralTexture) ColorAt(uv core.Vec2) core.Color {
	return p.Func(uv)
}

func (*ProceduralTexture) isTexture() {}

// NewCheckerboard creates a procedural checkerboard with rows×cols cells over
// the unit UV square. A cell shows base when its column and row parity agree,
// alt otherwise.
func NewCheckerboard(rows, cols int, base, alt core.Color) *ProceduralTexture {
	return NewProcedural(func(uv core.Vec2) core.Color {
		column := int(math.Floor(uv.X * float64(cols)))
		row := int(math.Floor(uv.Y * float64(rows)))
		if column&1 == row&1 {
			return base
		}
		return alt
	})
}

// NewUVDebug creates a texture showing UV coordinates as colors.
// U maps to red, V maps to green.
func NewUVDebug() *ProceduralTexture {
	return NewProcedural(func(uv core.Vec2) core.Color {
		return core.NewColor(core.Fract(uv.X), core.Fract(uv.Y), 0)
	})
}
