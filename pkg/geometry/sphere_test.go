package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, nil)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestNewSphere_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewSphere(core.Vec3{}, radius, nil)
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %v: expected ErrInvalidRadius, got %v", radius, err)
		}
	}
}

func TestSphere_Intersect(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectHit      bool
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "from inside uses the far root",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectHit:      true,
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectHit:      true,
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:         "miss",
			rayOrigin:    core.NewVec3(2, 0, 0),
			rayDirection: core.NewVec3(0, 1, 0),
		},
		{
			name:         "sphere behind the ray",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, 1),
		},
		{
			name:         "zero direction",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				return
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Face != -1 {
				t.Errorf("Expected face -1, got %d", hit.Face)
			}
		})
	}
}

func TestSphere_HitsLieOnSurface(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := mustSphere(t, core.NewVec3(1, -2, -5), 1.5)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		target := sphere.Center.Add(core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, random.Float64()*4-2))
		ray := core.NewRay(origin, target.Subtract(origin))

		hit, ok := sphere.Intersect(ray)
		if !ok {
			continue
		}
		hits++

		if hit.Distance <= 0 {
			t.Fatalf("Non-positive distance %f", hit.Distance)
		}
		d := hit.Position.Subtract(sphere.Center).Length()
		if math.Abs(d-sphere.Radius) > 2*core.SurfaceEpsilon {
			t.Fatalf("Hit at distance %f from center, radius %f", d, sphere.Radius)
		}
	}
	if hits == 0 {
		t.Fatal("Expected some rays to hit the sphere")
	}
}

func TestSphere_TextureCoordinateRange(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	sphere := mustSphere(t, core.Vec3{}, 2)

	for i := 0; i < 500; i++ {
		dir := core.RandomUnitVector(random)
		hit, ok := sphere.Intersect(core.NewRay(dir.Multiply(10), dir.Negate()))
		if !ok {
			t.Fatal("Expected hit towards center")
		}
		uv := sphere.TextureCoordinate(&hit)
		if uv.X < 0 || uv.X >= 1 || uv.Y < 0 || uv.Y >= 1 {
			t.Fatalf("UV %v out of [0,1)", uv)
		}
	}
}

func BenchmarkSphere_Intersect(b *testing.B) {
	sphere, _ := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0.05, 0.02, -1))
	for i := 0; i < b.N; i++ {
		sphere.Intersect(ray)
	}
}
