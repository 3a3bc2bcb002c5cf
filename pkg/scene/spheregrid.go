package scene

import (
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp(0, 1)
}

// NewEmissiveScene creates a wall of rainbow light spheres hovering over a
// glossy floor. Hue varies across columns and lightness across rows.
func NewEmissiveScene(Options) (*Scene, error) {
	const (
		columns = 7
		rows    = 3
		spacing = 1.4
		radius  = 0.5
		depth   = -12.0
	)

	var shapes shapeList

	for i := 0; i < columns; i++ {
		for j := 0; j < rows; j++ {
			x := (float64(i) - float64(columns-1)/2) * spacing
			y := float64(j) * spacing
			hue := float64(i) / float64(columns) * 360.0
			lightness := 0.55 + 0.15*float64(j)

			glow := material.NewEmissive(oklchToRGB(lightness, 0.2, hue), 1)
			shapes.sphere(core.NewVec3(x, y, depth), radius, glow)
		}
	}

	// Glossy white floor picks up blurred reflections of the wall
	floor := &material.Material{
		Albedo:   material.NewSolid(core.NewColor(0.9, 0.9, 0.9)),
		Specular: material.NewScalar(0.85),
	}
	shapes.plane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), floor)

	sc, err := shapes.scene("emissive")
	if err != nil {
		return nil, err
	}
	sc.CameraConfig.Position = core.NewVec3(0, 1.4, 0)
	sc.CameraConfig.SensorHeight = 2.5
	return sc, nil
}
