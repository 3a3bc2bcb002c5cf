package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// boundsMargin pads the mesh bounding sphere past the farthest vertex
const boundsMargin = 1e-3

// NoMaterial marks a face that uses the mesh default material
const NoMaterial = -1

// Face is a triangle of vertex indices with an optional material index
type Face struct {
	A, B, C  int
	Material int       // Index into Mesh.Materials, NoMaterial for the default
	Normal   core.Vec3 // Unit face normal, computed by NewMesh
}

// Mesh is a triangle mesh with per-face materials and a bounding sphere
// used to reject rays before the per-face loop
type Mesh struct {
	Vertices  []core.Vec3
	Faces     []Face
	Materials []*material.Material
	Default   *material.Material

	center core.Vec3
	radius float64
}

// NewMesh transforms vertices by transform, validates every face and
// precomputes face normals and the bounding sphere
func NewMesh(vertices []core.Vec3, faces []Face, materials []*material.Material, defaultMaterial *material.Material, transform core.Mat4) (*Mesh, error) {
	transformed := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		transformed[i] = transform.TransformPoint(v)
	}

	built := make([]Face, len(faces))
	for i, f := range faces {
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if idx < 0 || idx >= len(transformed) {
				return nil, fmt.Errorf("face %d: %w: %d (have %d vertices)", i, ErrFaceIndex, idx, len(transformed))
			}
		}
		a, b, c := transformed[f.A], transformed[f.B], transformed[f.C]
		f.Normal = b.Subtract(a).Cross(c.Subtract(a)).Normalize()
		built[i] = f
	}

	m := &Mesh{
		Vertices:  transformed,
		Faces:     built,
		Materials: materials,
		Default:   defaultMaterial,
	}
	m.center, m.radius = boundingSphere(transformed)
	return m, nil
}

// boundingSphere centers the sphere on the bounding box midpoint and reaches
// the farthest vertex plus boundsMargin
func boundingSphere(vertices []core.Vec3) (core.Vec3, float64) {
	if len(vertices) == 0 {
		return core.Vec3{}, 0
	}
	center := core.NewAABBFromPoints(vertices...).Center()

	radius := 0.0
	for _, v := range vertices {
		radius = math.Max(radius, v.Subtract(center).Length())
	}
	return center, radius + boundsMargin
}

// Bounds returns the axis-aligned box around the transformed vertices
func (m *Mesh) Bounds() core.AABB {
	return core.NewAABBFromPoints(m.Vertices...)
}

// BoundingSphere returns the culling sphere's center and radius
func (m *Mesh) BoundingSphere() (core.Vec3, float64) {
	return m.center, m.radius
}

// mayHit reports whether ray can reach the bounding sphere
func (m *Mesh) mayHit(ray core.Ray) bool {
	if len(m.Faces) == 0 {
		return false
	}
	l := ray.Origin.Subtract(m.center)
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(l)
	c := l.Dot(l) - m.radius*m.radius

	// Outside and pointing away
	if c > 0 && b > 0 {
		return false
	}
	return b*b-a*c >= 0
}

// Intersect returns the nearest face hit. Intersection.Face holds its index.
func (m *Mesh) Intersect(ray core.Ray) (core.Intersection, bool) {
	if !m.mayHit(ray) {
		return core.Intersection{}, false
	}

	best := math.Inf(1)
	bestFace := -1
	for i := range m.Faces {
		f := &m.Faces[i]
		t, ok := m.intersectFace(f, ray)
		if ok && t < best {
			best = t
			bestFace = i
		}
	}

	if bestFace < 0 {
		return core.Intersection{}, false
	}
	return core.NewIntersection(ray, best, m.Faces[bestFace].Normal, bestFace), true
}

// intersectFace hits the face's plane, then requires the point to lie
// strictly inside all three edges. Degenerate faces have a zero normal and
// never pass.
func (m *Mesh) intersectFace(f *Face, ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(f.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	a, b, c := m.Vertices[f.A], m.Vertices[f.B], m.Vertices[f.C]
	t := a.Subtract(ray.Origin).Dot(f.Normal) / denominator
	if !validDistance(t) {
		return 0, false
	}

	p := ray.At(t)
	if f.Normal.Dot(b.Subtract(a).Cross(p.Subtract(a))) <= 0 {
		return 0, false
	}
	if f.Normal.Dot(c.Subtract(b).Cross(p.Subtract(b))) <= 0 {
		return 0, false
	}
	if f.Normal.Dot(a.Subtract(c).Cross(p.Subtract(c))) <= 0 {
		return 0, false
	}
	return t, true
}

// TextureCoordinate is always (0,0): meshes carry no UVs
func (m *Mesh) TextureCoordinate(*core.Intersection) core.Vec2 {
	return core.Vec2{}
}

// MaterialFor resolves the hit face's material, falling back to the default
// material when the face has none or its index is out of range
func (m *Mesh) MaterialFor(hit *core.Intersection) *material.Material {
	if hit.Face < 0 || hit.Face >= len(m.Faces) {
		return m.Default
	}
	idx := m.Faces[hit.Face].Material
	if idx < 0 || idx >= len(m.Materials) || m.Materials[idx] == nil {
		return m.Default
	}
	return m.Materials[idx]
}
