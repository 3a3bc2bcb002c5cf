package core

import "math"

// Mat4 is a row-major 4x4 affine transform
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Translation returns a transform moving points by offset
func Translation(offset Vec3) Mat4 {
	m := Identity()
	m.M[0][3] = offset.X
	m.M[1][3] = offset.Y
	m.M[2][3] = offset.Z
	return m
}

// Scale returns a per-axis scaling transform
func Scale(factors Vec3) Mat4 {
	m := Identity()
	m.M[0][0] = factors.X
	m.M[1][1] = factors.Y
	m.M[2][2] = factors.Z
	return m
}

// RotationX rotates by angle radians about the X axis
func RotationX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m.M[1][1], m.M[1][2] = c, -s
	m.M[2][1], m.M[2][2] = s, c
	return m
}

// RotationY rotates by angle radians about the Y axis
func RotationY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m.M[0][0], m.M[0][2] = c, s
	m.M[2][0], m.M[2][2] = -s, c
	return m
}

// RotationZ rotates by angle radians about the Z axis
func RotationZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m.M[0][0], m.M[0][1] = c, -s
	m.M[1][0], m.M[1][1] = s, c
	return m
}

// RotationAxisAngle is the matrix form of Vec3.RotateAround:
// R = cosθ·I + sinθ·[k]× + (1−cosθ)·k·kᵀ
func RotationAxisAngle(axis Vec3, angle float64) Mat4 {
	k := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	m := Identity()
	m.M[0][0] = c + t*k.X*k.X
	m.M[0][1] = t*k.X*k.Y - s*k.Z
	m.M[0][2] = t*k.X*k.Z + s*k.Y
	m.M[1][0] = t*k.Y*k.X + s*k.Z
	m.M[1][1] = c + t*k.Y*k.Y
	m.M[1][2] = t*k.Y*k.Z - s*k.X
	m.M[2][0] = t*k.Z*k.X - s*k.Y
	m.M[2][1] = t*k.Z*k.Y + s*k.X
	m.M[2][2] = c + t*k.Z*k.Z
	return m
}

// RotationFromTo returns the rotation that turns direction from onto direction to.
// The axis is cross(from, to). Parallel inputs give the identity; opposite inputs
// give a half turn about any axis perpendicular to from.
func RotationFromTo(from, to Vec3) Mat4 {
	a := from.Normalize()
	b := to.Normalize()
	if a.IsZero() || b.IsZero() {
		return Identity()
	}

	axis := a.Cross(b)
	if axis.LengthSquared() < 1e-18 {
		if a.Dot(b) > 0 {
			return Identity()
		}
		return RotationAxisAngle(Perpendicular(a), math.Pi)
	}

	return RotationAxisAngle(axis, a.AngleTo(b))
}

// Perpendicular returns some unit vector orthogonal to v
func Perpendicular(v Vec3) Vec3 {
	if math.Abs(v.X) > 0.1 {
		return NewVec3(0, 1, 0).Cross(v).Normalize()
	}
	return NewVec3(1, 0, 0).Cross(v).Normalize()
}

// Mul composes two transforms. The result applies other first, then m.
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[row][k] * other.M[k][col]
			}
			r.M[row][col] = sum
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r.M[row][col] = m.M[col][row]
		}
	}
	return r
}

// TransformPoint applies the full affine transform (w = 1)
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3]
	y := m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3]
	z := m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3]
	w := m.M[3][0]*p.X + m.M[3][1]*p.Y + m.M[3][2]*p.Z + m.M[3][3]
	if w != 1 && w != 0 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// TransformVector applies the linear part only (w = 0)
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Inverse returns the general inverse via cofactor expansion.
// ok is false when the matrix is singular.
func (m Mat4) Inverse() (inv Mat4, ok bool) {
	a := m.M
	s0 := a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s1 := a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s2 := a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s3 := a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s4 := a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s5 := a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c5 := a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c4 := a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c3 := a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c2 := a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c1 := a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c0 := a[2][0]*a[3][1] - a[3][0]*a[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 || !isFinite(det) {
		return Mat4{}, false
	}
	d := 1 / det

	inv.M[0][0] = (a[1][1]*c5 - a[1][2]*c4 + a[1][3]*c3) * d
	inv.M[0][1] = (-a[0][1]*c5 + a[0][2]*c4 - a[0][3]*c3) * d
	inv.M[0][2] = (a[3][1]*s5 - a[3][2]*s4 + a[3][3]*s3) * d
	inv.M[0][3] = (-a[2][1]*s5 + a[2][2]*s4 - a[2][3]*s3) * d

	inv.M[1][0] = (-a[1][0]*c5 + a[1][2]*c2 - a[1][3]*c1) * d
	inv.M[1][1] = (a[0][0]*c5 - a[0][2]*c2 + a[0][3]*c1) * d
	inv.M[1][2] = (-a[3][0]*s5 + a[3][2]*s2 - a[3][3]*s1) * d
	inv.M[1][3] = (a[2][0]*s5 - a[2][2]*s2 + a[2][3]*s1) * d

	inv.M[2][0] = (a[1][0]*c4 - a[1][1]*c2 + a[1][3]*c0) * d
	inv.M[2][1] = (-a[0][0]*c4 + a[0][1]*c2 - a[0][3]*c0) * d
	inv.M[2][2] = (a[3][0]*s4 - a[3][1]*s2 + a[3][3]*s0) * d
	inv.M[2][3] = (-a[2][0]*s4 + a[2][1]*s2 - a[2][3]*s0) * d

	inv.M[3][0] = (-a[1][0]*c3 + a[1][1]*c1 - a[1][2]*c0) * d
	inv.M[3][1] = (a[0][0]*c3 - a[0][1]*c1 + a[0][2]*c0) * d
	inv.M[3][2] = (-a[3][0]*s3 + a[3][1]*s1 - a[3][2]*s0) * d
	inv.M[3][3] = (a[2][0]*s3 - a[2][1]*s1 + a[2][2]*s0) * d

	return inv, true
}

// ApproxEqual compares two matrices element-wise within tolerance
func (m Mat4) ApproxEqual(other Mat4, tolerance float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m.M[row][col]-other.M[row][col]) > tolerance {
				return false
			}
		}
	}
	return true
}
