package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// sphereUVTiling is how many times a texture repeats around each sphere axis
const sphereUVTiling = 4

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere. The radius must be positive and finite.
func NewSphere(center core.Vec3, radius float64, mat *material.Material) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("new sphere at %v: %w (got %v)", center, ErrInvalidRadius, radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	// Vector from sphere center to ray origin
	l := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(l)
	c := l.Dot(l) - s.Radius*s.Radius

	if a == 0 {
		return core.Intersection{}, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}

	// Stable form: avoid cancellation between -b and sqrt(discriminant)
	q := -0.5 * (b + math.Copysign(math.Sqrt(discriminant), b))
	if q == 0 {
		return core.Intersection{}, false
	}
	t0, t1 := q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	// Try the closer intersection first, then the farther one
	t := t0
	if !validDistance(t) {
		t = t1
		if !validDistance(t) {
			return core.Intersection{}, false
		}
	}

	outwardNormal := ray.At(t).Subtract(s.Center)
	return core.NewIntersection(ray, t, outwardNormal, -1), true
}

// TextureCoordinate maps the hit point to longitude/latitude UVs, each
// repeated sphereUVTiling times
func (s *Sphere) TextureCoordinate(hit *core.Intersection) core.Vec2 {
	local := hit.Position.Subtract(s.Center).Normalize()

	longitude := (math.Atan2(local.Z, local.X) + math.Pi) / (2 * math.Pi)
	latitude := math.Acos(math.Max(-1, math.Min(1, local.Y))) / math.Pi

	return core.NewVec2(
		core.Fract(longitude*sphereUVTiling),
		core.Fract(latitude*sphereUVTiling),
	)
}
