package core

import (
	"math"
	"math/rand"
)

// maxRejectionDraws bounds the rejection loops; the acceptance rate is at
// least one half so this is never reached with a sane normal
const maxRejectionDraws = 64

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// RandomUnitVector draws a uniform direction on the unit sphere from random
func RandomUnitVector(random *rand.Rand) Vec3 {
	return SampleOnUnitSphere(NewVec2(random.Float64(), random.Float64()))
}

// SampleHemisphere rejection-samples a uniform direction whose angle to
// normal is below π/2: draw over the whole sphere, redraw while the
// direction points into the surface.
func SampleHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	for i := 0; i < maxRejectionDraws; i++ {
		dir := RandomUnitVector(random)
		if dir.Dot(normal) > 0 {
			return dir
		}
	}
	// Mirror the last miss into the hemisphere rather than loop forever
	dir := RandomUnitVector(random)
	if dir.Dot(normal) < 0 {
		return dir.Negate()
	}
	return dir
}

// SampleCone samples a direction uniformly within a cone
func SampleCone(direction Vec3, cosTotalWidth float64, sample Vec2) Vec3 {
	// Create coordinate system with z-axis pointing in cone direction
	w := direction.Normalize()
	var u Vec3
	if math.Abs(w.X) > 0.1 {
		u = NewVec3(0, 1, 0)
	} else {
		u = NewVec3(1, 0, 0)
	}
	u = u.Cross(w).Normalize()
	v := w.Cross(u)

	cosTheta := 1.0 - sample.X*(1.0-cosTotalWidth)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)
	z := cosTheta

	return u.Multiply(x).Add(v.Multiply(y)).Add(w.Multiply(z))
}

// SampleConeAngle returns a uniform direction within halfAngle radians of
// axis. This has the same distribution as drawing sphere directions and
// rejecting those outside the cone, without the wasted draws for narrow cones.
func SampleConeAngle(axis Vec3, halfAngle float64, random *rand.Rand) Vec3 {
	halfAngle = math.Max(0, math.Min(math.Pi, halfAngle))
	return SampleCone(axis, math.Cos(halfAngle), NewVec2(random.Float64(), random.Float64()))
}
