package core

import (
	"math"
	"testing"
)

func TestMat4_TransformPoint(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Mat4
		point    Vec3
		expected Vec3
	}{
		{"Identity", Identity(), NewVec3(1, 2, 3), NewVec3(1, 2, 3)},
		{"Translation", Translation(NewVec3(1, -2, 3)), NewVec3(1, 1, 1), NewVec3(2, -1, 4)},
		{"Scale", Scale(NewVec3(2, 3, 4)), NewVec3(1, 1, 1), NewVec3(2, 3, 4)},
		{"RotationY quarter", RotationY(math.Pi / 2), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"RotationX quarter", RotationX(math.Pi / 2), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"RotationZ quarter", RotationZ(math.Pi / 2), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{
			// Composition applies right to left: scale, then translate
			"Translate after scale",
			Translation(NewVec3(0, 0, -10)).Mul(Scale(Splat(0.5))),
			NewVec3(2, 2, 2),
			NewVec3(1, 1, -9),
		},
		{
			"Scale after translate",
			Scale(Splat(0.5)).Mul(Translation(NewVec3(0, 0, -10))),
			NewVec3(2, 2, 2),
			NewVec3(1, 1, -4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.matrix.TransformPoint(tt.point)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestMat4_TransformVectorIgnoresTranslation(t *testing.T) {
	m := Translation(NewVec3(5, 5, 5))
	v := m.TransformVector(NewVec3(0, 1, 0))
	if !v.Equals(NewVec3(0, 1, 0)) {
		t.Errorf("Expected translation to be ignored, got %v", v)
	}
}

func TestMat4_AxisAngleMatchesRodrigues(t *testing.T) {
	axis := NewVec3(1, 2, -0.5)
	v := NewVec3(0.3, -1, 2)
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2.5, math.Pi} {
		fromMatrix := RotationAxisAngle(axis, angle).TransformVector(v)
		fromVector := v.RotateAround(axis, angle)
		if fromMatrix.Subtract(fromVector).Length() > 1e-9 {
			t.Errorf("angle %f: matrix %v, vector %v", angle, fromMatrix, fromVector)
		}
	}
}

func TestMat4_RotationFromTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"Z to X", NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Z to tilted", NewVec3(0, 0, 1), NewVec3(0.2, -0.3, 0.9)},
		{"Same direction", NewVec3(0, 1, 0), NewVec3(0, 3, 0)},
		{"Opposite direction", NewVec3(0, 0, 1), NewVec3(0, 0, -1)},
		{"Arbitrary", NewVec3(1, 2, 3), NewVec3(-3, 1, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RotationFromTo(tt.from, tt.to).TransformVector(tt.from.Normalize())
			expected := tt.to.Normalize()
			if result.Subtract(expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", expected, result)
			}
		})
	}
}

func TestMat4_Inverse(t *testing.T) {
	m := Translation(NewVec3(1, -2, 3)).
		Mul(RotationY(0.7)).
		Mul(Scale(NewVec3(2, 0.5, 4)))

	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("Expected invertible matrix")
	}
	if !m.Mul(inv).ApproxEqual(Identity(), 1e-9) {
		t.Errorf("M * M^-1 is not identity: %v", m.Mul(inv))
	}

	p := NewVec3(4, 5, 6)
	if back := inv.TransformPoint(m.TransformPoint(p)); back.Subtract(p).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", p, back)
	}
}

func TestMat4_InverseSingular(t *testing.T) {
	if _, ok := Scale(NewVec3(1, 0, 1)).Inverse(); ok {
		t.Error("Expected singular matrix to report no inverse")
	}
}

func TestMat4_Transpose(t *testing.T) {
	m := Translation(NewVec3(1, 2, 3))
	tr := m.Transpose()
	if tr.M[3][0] != 1 || tr.M[3][1] != 2 || tr.M[3][2] != 3 {
		t.Errorf("Unexpected transpose %v", tr)
	}
	if !tr.Transpose().ApproxEqual(m, 0) {
		t.Error("Double transpose should be the original matrix")
	}
}
