package core

import "math"

// Color is a linear RGB triple. Components are not clamped until a pixel is written.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// White is the emission color used when only an emission intensity is given
var White = Color{1, 1, 1}

// Black is the zero color
var Black = Color{}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every component by s
func (c Color) Multiply(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// MultiplyColor returns the component-wise product
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp limits every component to [lo, hi]
func (c Color) Clamp(lo, hi float64) Color {
	return Color{
		R: math.Max(lo, math.Min(hi, c.R)),
		G: math.Max(lo, math.Min(hi, c.G)),
		B: math.Max(lo, math.Min(hi, c.B)),
	}
}

// Luminance returns the perceived brightness using Rec. 709 weights
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// ToVec3 reinterprets the color as a vector, used when decoding normal maps
func (c Color) ToVec3() Vec3 {
	return Vec3{c.R, c.G, c.B}
}

// Illumination is a light sample: a color plus a separate scalar intensity.
// The two are only multiplied together when a pixel is written.
type Illumination struct {
	Color     Color
	Intensity float64
}

// NewIllumination creates a new Illumination
func NewIllumination(color Color, intensity float64) Illumination {
	return Illumination{Color: color, Intensity: intensity}
}

// IsZero reports whether the sample carries no light
func (il Illumination) IsZero() bool {
	return il.Intensity == 0 && il.Color == Black
}

// Radiance returns color × intensity with the intensity clamped to [lo, hi]
func (il Illumination) Radiance(lo, hi float64) Color {
	return il.Color.Multiply(math.Max(lo, math.Min(hi, il.Intensity)))
}

// Integrate averages samples element-wise: every color channel and the
// intensity are summed and divided by the sample count. No weighting or
// outlier rejection is applied. An empty slice yields zero illumination.
func Integrate(samples []Illumination) Illumination {
	if len(samples) == 0 {
		return Illumination{}
	}

	var sum Illumination
	for _, s := range samples {
		sum.Color = sum.Color.Add(s.Color)
		sum.Intensity += s.Intensity
	}

	n := float64(len(samples))
	return Illumination{
		Color:     sum.Color.Multiply(1 / n),
		Intensity: sum.Intensity / n,
	}
}

// Combine merges two lobes with an intensity-weighted color lerp.
// t = ia / (ia + ib), color = a·t + b·(1−t), intensity = ia + ib.
// When both intensities are zero the colors are averaged.
func Combine(a, b Illumination) Illumination {
	total := a.Intensity + b.Intensity
	t := 0.5
	if total != 0 {
		t = a.Intensity / total
	}
	return Illumination{
		Color:     a.Color.Multiply(t).Add(b.Color.Multiply(1 - t)),
		Intensity: total,
	}
}
