package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

var (
	// ErrInvalidRadius is returned when a sphere is built with a non-positive radius
	ErrInvalidRadius = errors.New("sphere radius must be positive and finite")
	// ErrFaceIndex is returned when a mesh face references a missing vertex
	ErrFaceIndex = errors.New("face vertex index out of range")
)

// parallelEpsilon is the smallest |direction·normal| treated as a crossing
const parallelEpsilon = 1e-8

// Shape is a primitive that rays can hit. The set is closed: *Sphere, *Plane
// and *Mesh. Use the package-level Intersect, TextureCoordinate and
// MaterialFor functions to dispatch over it.
type Shape interface {
	isShape()
}

func (*Sphere) isShape() {}
func (*Plane) isShape()  {}
func (*Mesh) isShape()   {}

// Intersect returns the nearest hit of ray with shape at a positive distance
func Intersect(shape Shape, ray core.Ray) (core.Intersection, bool) {
	switch s := shape.(type) {
	case *Sphere:
		return s.Intersect(ray)
	case *Plane:
		return s.Intersect(ray)
	case *Mesh:
		return s.Intersect(ray)
	default:
		return core.Intersection{}, false
	}
}

// TextureCoordinate returns the UV coordinate of hit on shape
func TextureCoordinate(shape Shape, hit *core.Intersection) core.Vec2 {
	switch s := shape.(type) {
	case *Sphere:
		return s.TextureCoordinate(hit)
	case *Plane:
		return s.TextureCoordinate(hit)
	case *Mesh:
		return s.TextureCoordinate(hit)
	default:
		return core.Vec2{}
	}
}

// MaterialFor returns the material shading hit on shape. It may be nil, in
// which case the surface reflects and emits nothing.
func MaterialFor(shape Shape, hit *core.Intersection) *material.Material {
	switch s := shape.(type) {
	case *Sphere:
		return s.Material
	case *Plane:
		return s.Material
	case *Mesh:
		return s.MaterialFor(hit)
	default:
		return nil
	}
}

// validDistance reports whether t is a usable ray parameter
func validDistance(t float64) bool {
	return t > 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}
