package core

// SurfaceEpsilon is the distance a hit position is pushed off the surface so
// that secondary rays do not re-hit the surface they start on
const SurfaceEpsilon = 1e-4

// Intersection describes where a ray meets a surface
type Intersection struct {
	Distance  float64 // Ray parameter of the hit, always > 0
	Position  Vec3    // Hit point offset SurfaceEpsilon along Normal
	Normal    Vec3    // Unit normal facing the incoming ray
	Direction Vec3    // Unit incident direction
	FrontFace bool    // Whether the ray hit the outward side of the surface
	Face      int     // Mesh face index, -1 for other primitives

	reflected    Vec3
	hasReflected bool
}

// NewIntersection builds an intersection for a hit at distance t along ray.
// outwardNormal does not need to be normalized; it is flipped to face the ray.
func NewIntersection(ray Ray, t float64, outwardNormal Vec3, face int) Intersection {
	hit := Intersection{
		Distance:  t,
		Direction: ray.Direction.Normalize(),
		Face:      face,
	}
	hit.SetFaceNormal(ray, outwardNormal.Normalize())
	hit.Position = ray.At(t).Add(hit.Normal.Multiply(SurfaceEpsilon))
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *Intersection) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
	h.hasReflected = false
}

// WithNormal returns a copy of the intersection shading against normal instead
func (h Intersection) WithNormal(normal Vec3) Intersection {
	h.Normal = normal.Normalize()
	h.hasReflected = false
	return h
}

// Reflected returns the mirror direction D − 2(N·D)N, computed on first use
func (h *Intersection) Reflected() Vec3 {
	if !h.hasReflected {
		h.reflected = Reflect(h.Direction, h.Normal)
		h.hasReflected = true
	}
	return h.reflected
}

// Reflect mirrors direction d about normal n
func Reflect(d, n Vec3) Vec3 {
	return d.Subtract(n.Multiply(2 * n.Dot(d)))
}
