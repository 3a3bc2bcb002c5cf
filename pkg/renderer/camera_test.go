package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(scene.DefaultCameraConfig(), 9, 9)

	tests := []struct {
		name      string
		x, y      int
		check     func(ray core.Ray) bool
		condition string
	}{
		{
			name:      "Center pixel looks down -Z",
			x:         4,
			y:         4,
			check:     func(r core.Ray) bool { return r.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() < 1e-9 },
			condition: "direction (0,0,-1)",
		},
		{
			name:      "Top left pixel",
			x:         0,
			y:         0,
			check:     func(r core.Ray) bool { return r.Direction.X < 0 && r.Direction.Y > 0 },
			condition: "direction up and left",
		},
		{
			name:      "Bottom right pixel",
			x:         8,
			y:         8,
			check:     func(r core.Ray) bool { return r.Direction.X > 0 && r.Direction.Y < 0 },
			condition: "direction down and right",
		},
		{
			name:      "Origin on the sensor plane",
			x:         2,
			y:         7,
			check:     func(r core.Ray) bool { return math.Abs(r.Origin.Z+2) < 1e-9 },
			condition: "origin z = -2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.x, tt.y)
			if !tt.check(ray) {
				t.Errorf("Expected %s, got %+v", tt.condition, ray)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-9 {
				t.Errorf("Expected normalized direction, got length %f", ray.Direction.Length())
			}
		})
	}
}

func TestCamera_SensorAspect(t *testing.T) {
	// A 16:10 image keeps the sensor height and widens the sensor
	camera := NewCamera(scene.DefaultCameraConfig(), 16, 10)

	left := camera.GetRay(0, 5).Origin
	right := camera.GetRay(15, 5).Origin
	top := camera.GetRay(8, 0).Origin
	bottom := camera.GetRay(8, 9).Origin

	// Pixel centers sit half a pixel in from each edge
	pixel := 2.0 / 10.0
	if w := right.X - left.X; math.Abs(w-(3.2-pixel)) > 1e-9 {
		t.Errorf("Expected sensor span %f, got %f", 3.2-pixel, w)
	}
	if h := top.Y - bottom.Y; math.Abs(h-(2-pixel)) > 1e-9 {
		t.Errorf("Expected sensor span %f, got %f", 2-pixel, h)
	}
}

func TestCamera_Position(t *testing.T) {
	config := scene.DefaultCameraConfig()
	config.Position = core.NewVec3(1, 2, 3)
	camera := NewCamera(config, 5, 5)

	ray := camera.GetRay(2, 2)
	if !ray.Origin.Equals(core.NewVec3(1, 2, 1)) {
		t.Errorf("Expected origin (1,2,1), got %v", ray.Origin)
	}
}
