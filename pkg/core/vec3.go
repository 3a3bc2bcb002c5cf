package core

import (
	"math"
)

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to s
func Splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector; callers that divide by a
// length must reject it themselves.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// AngleTo returns the angle in radians between v and other.
// The cosine is clamped to [-1, 1] so rounding never pushes acos out of its domain.
func (v Vec3) AngleTo(other Vec3) float64 {
	denominator := v.Length() * other.Length()
	if denominator == 0 {
		return 0
	}
	cos := v.Dot(other) / denominator
	return math.Acos(max(-1, min(1, cos)))
}

// ProjectOnto returns the projection of v onto other
func (v Vec3) ProjectOnto(other Vec3) Vec3 {
	lengthSquared := other.LengthSquared()
	if lengthSquared == 0 {
		return Vec3{}
	}
	return other.Multiply(v.Dot(other) / lengthSquared)
}

// RotateAround rotates v by angle radians about axis using Rodrigues' formula:
// v·cosθ + (k×v)·sinθ + k·(k·v)·(1−cosθ)
func (v Vec3) RotateAround(axis Vec3, angle float64) Vec3 {
	k := axis.Normalize()
	cos := math.Cos(angle)
	sin := math.Sin(angle)

	return v.Multiply(cos).
		Add(k.Cross(v).Multiply(sin)).
		Add(k.Multiply(k.Dot(v) * (1 - cos)))
}

// ToPolar converts v to (radius, inclination, azimuth) where inclination is
// measured from +Y and azimuth from +X towards +Z
func (v Vec3) ToPolar() (radius, inclination, azimuth float64) {
	radius = v.Length()
	if radius == 0 {
		return 0, 0, 0
	}
	inclination = math.Acos(max(-1, min(1, v.Y/radius)))
	azimuth = math.Atan2(v.Z, v.X)
	return radius, inclination, azimuth
}

// FromPolar is the inverse of ToPolar
func FromPolar(radius, inclination, azimuth float64) Vec3 {
	sinInc := math.Sin(inclination)
	return Vec3{
		X: radius * sinInc * math.Cos(azimuth),
		Y: radius * math.Cos(inclination),
		Z: radius * sinInc * math.Sin(azimuth),
	}
}

// Equals checks if two vectors are approximately equal within a small tolerance
func (v Vec3) Equals(other Vec3) bool {
	const tolerance = 1e-9
	return math.Abs(v.X-other.X) < tolerance &&
		math.Abs(v.Y-other.Y) < tolerance &&
		math.Abs(v.Z-other.Z) < tolerance
}

// Vec2 represents a 2D vector, used for UV coordinates
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Fract returns the fractional part of f in [0, 1), also for negative inputs
func Fract(f float64) float64 {
	return f - math.Floor(f)
}
