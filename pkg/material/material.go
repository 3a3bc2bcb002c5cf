package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// MirrorThreshold is the specularity above which a surface is treated as a
// perfect mirror and traced with a single reflected ray
const MirrorThreshold = 0.99

// Tracer casts secondary rays back into the scene
type Tracer interface {
	CastRay(ray core.Ray, random *rand.Rand, bounces int) core.Illumination
}

// Material is a layered surface description. Every channel is optional and
// contributes nothing when nil.
type Material struct {
	Albedo            Texture // Diffuse reflectance
	Specular          Texture // Scalar specularity in [0,1], red channel
	Normal            Texture // Tangent-space normal map
	EmissionColor     Texture // Emitted color, white when nil
	EmissionIntensity Texture // Scalar emitted intensity, red channel
}

// NewDiffuse creates a material with a solid albedo
func NewDiffuse(albedo core.Color) *Material {
	return &Material{Albedo: NewSolid(albedo)}
}

// NewMirror creates a material with only a specular channel
func NewMirror(specularity float64) *Material {
	return &Material{Specular: NewScalar(specularity)}
}

// NewEmissive creates a material that emits color at the given intensity
func NewEmissive(color core.Color, intensity float64) *Material {
	return &Material{
		EmissionColor:     NewSolid(color),
		EmissionIntensity: NewScalar(intensity),
	}
}

// IsEmissive reports whether the material terminates paths with its own light
func (m *Material) IsEmissive() bool {
	return m.EmissionIntensity != nil
}

// Shade evaluates the illumination leaving the surface at hit.
//
// Emissive surfaces return their emission without sampling. Otherwise the
// diffuse lobe integrates samples hemisphere directions and is tinted by the
// albedo, and the specular lobe either follows the mirror direction or
// integrates samples directions within a cone of half angle (1−s)·π/2 around
// it. The two lobes are merged with core.Combine.
func (m *Material) Shade(hit *core.Intersection, uv core.Vec2, tracer Tracer, random *rand.Rand, samples, bounces int) core.Illumination {
	if m.EmissionIntensity != nil {
		color := core.White
		if m.EmissionColor != nil {
			color = m.EmissionColor.ColorAt(uv)
		}
		return core.NewIllumination(color, ScalarAt(m.EmissionIntensity, uv))
	}

	if bounces <= 0 {
		return core.Illumination{}
	}

	samples = max(samples, 1)

	surface := *hit
	if m.Normal != nil {
		surface = surface.WithNormal(m.perturbNormal(surface.Normal, uv))
	}

	var diffuse, specular core.Illumination
	hasDiffuse := m.Albedo != nil
	hasSpecular := m.Specular != nil

	if hasDiffuse {
		diffuse = m.shadeDiffuse(&surface, uv, tracer, random, samples, bounces)
	}
	if hasSpecular {
		specular = m.shadeSpecular(&surface, uv, tracer, random, samples, bounces)
	}

	switch {
	case hasDiffuse && hasSpecular:
		return core.Combine(diffuse, specular)
	case hasDiffuse:
		return diffuse
	case hasSpecular:
		return specular
	default:
		return core.Illumination{}
	}
}

func (m *Material) shadeDiffuse(hit *core.Intersection, uv core.Vec2, tracer Tracer, random *rand.Rand, samples, bounces int) core.Illumination {
	results := make([]core.Illumination, samples)
	for i := range results {
		dir := core.SampleHemisphere(hit.Normal, random)
		results[i] = tracer.CastRay(core.NewRay(hit.Position, dir), random, bounces-1)
	}

	il := core.Integrate(results)
	il.Color = il.Color.MultiplyColor(m.Albedo.ColorAt(uv))
	return il
}

func (m *Material) shadeSpecular(hit *core.Intersection, uv core.Vec2, tracer Tracer, random *rand.Rand, samples, bounces int) core.Illumination {
	reflected := hit.Reflected()
	s := ScalarAt(m.Specular, uv)

	if s > MirrorThreshold {
		return tracer.CastRay(core.NewRay(hit.Position, reflected), random, bounces-1)
	}

	halfAngle := (1 - math.Min(1, math.Max(0, s))) * math.Pi / 2
	results := make([]core.Illumination, samples)
	for i := range results {
		dir := core.SampleConeAngle(reflected, halfAngle, random)
		results[i] = tracer.CastRay(core.NewRay(hit.Position, dir), random, bounces-1)
	}
	return core.Integrate(results)
}

// tangentUp is the reference axis of tangent-space normal maps
var tangentUp = core.NewVec3(0, 0, 1)

// perturbNormal decodes the normal map at uv (channel·2−1, green axis
// flipped) and rotates the geometric normal by the rotation that takes +Z
// onto the decoded vector
func (m *Material) perturbNormal(normal core.Vec3, uv core.Vec2) core.Vec3 {
	c := m.Normal.ColorAt(uv)
	decoded := core.NewVec3(c.R*2-1, -(c.G*2 - 1), c.B*2-1)
	if decoded.IsZero() || !decoded.IsFinite() {
		return normal
	}
	return core.RotationFromTo(tangentUp, decoded).TransformVector(normal).Normalize()
}
