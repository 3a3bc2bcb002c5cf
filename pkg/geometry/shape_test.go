package geometry

import (
	"testing"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

func TestIntersect_Dispatch(t *testing.T) {
	mat := material.NewDiffuse(core.NewColor(0.2, 0.4, 0.6))
	sphere, err := NewSphere(core.NewVec3(0, 0, -5), 1, mat)
	if err != nil {
		t.Fatal(err)
	}
	plane := NewPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), mat)
	vertices, faces := unitQuad()
	mesh, err := NewMesh(vertices, faces, nil, mat, core.Translation(core.NewVec3(0, 0, -5)))
	if err != nil {
		t.Fatal(err)
	}

	ray := core.NewRay(core.NewVec3(0.3, -0.1, 0), core.NewVec3(0, 0, -1))
	tests := []struct {
		name     string
		shape    Shape
		expected float64
	}{
		{"Sphere", sphere, 4.05},
		{"Plane", plane, 5},
		{"Mesh", mesh, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Intersect(tt.shape, ray)
			if !ok {
				t.Fatal("Expected hit")
			}
			if d := hit.Distance - tt.expected; d > 0.05 || d < -0.05 {
				t.Errorf("Expected distance near %f, got %f", tt.expected, hit.Distance)
			}
			if got := MaterialFor(tt.shape, &hit); got != mat {
				t.Errorf("Expected shape material, got %p", got)
			}
			uv := TextureCoordinate(tt.shape, &hit)
			if uv.X < 0 || uv.X >= 1 || uv.Y < 0 || uv.Y >= 1 {
				t.Errorf("UV %v out of [0,1)", uv)
			}
		})
	}
}

func TestIntersect_NilShape(t *testing.T) {
	if _, ok := Intersect(nil, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected nil shape to miss")
	}
}
