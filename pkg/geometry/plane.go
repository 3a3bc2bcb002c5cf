package geometry

import (
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal.
// Bias is a tangent that fixes the orientation of texture coordinates.
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Bias     core.Vec3 // Unit tangent, the U axis
	Material *material.Material

	coBias core.Vec3 // Bias rotated −90° about Normal, the V axis
}

// NewPlane creates a new plane. bias is projected into the plane; when it is
// parallel to the normal an arbitrary tangent is used instead.
func NewPlane(point, normal, bias core.Vec3, mat *material.Material) *Plane {
	n := normal.Normalize()
	tangent := bias.Subtract(n.Multiply(bias.Dot(n))).Normalize()
	if tangent.IsZero() {
		tangent = core.Perpendicular(n)
	}

	return &Plane{
		Point:    point,
		Normal:   n,
		Bias:     tangent,
		Material: mat,
		coBias:   tangent.RotateAround(n, -math.Pi/2).Normalize(),
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (core.Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane (or the plane is degenerate)
	if math.Abs(denominator) < parallelEpsilon {
		return core.Intersection{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !validDistance(t) {
		return core.Intersection{}, false
	}

	return core.NewIntersection(ray, t, p.Normal, -1), true
}

// TextureCoordinate measures the hit point along the bias and co-bias axes
// and keeps the fractional part, tiling textures once per world unit
func (p *Plane) TextureCoordinate(hit *core.Intersection) core.Vec2 {
	rel := hit.Position.Subtract(p.Point)
	return core.NewVec2(
		core.Fract(rel.Dot(p.Bias)),
		core.Fract(rel.Dot(p.coBias)),
	)
}
