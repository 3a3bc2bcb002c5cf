package scene

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
)

// CameraConfig places the pinhole camera
type CameraConfig struct {
	Position     core.Vec3 // Pinhole position; the camera looks down -Z
	SensorHeight float64   // World-space sensor height; width follows the image aspect
	FocalLength  float64   // Distance from the pinhole to the sensor plane
}

// DefaultCameraConfig is a camera at the origin with a 2-unit sensor 2 units away
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:     core.Vec3{},
		SensorHeight: 2,
		FocalLength:  2,
	}
}

// Scene contains all the elements needed for rendering. It is built once and
// read concurrently, without locking, for the whole render.
type Scene struct {
	Name         string
	Shapes       []geometry.Shape // Objects in the scene, order does not matter
	CameraConfig CameraConfig
}

// New creates a scene with the default camera
func New(name string, shapes ...geometry.Shape) *Scene {
	return &Scene{
		Name:         name,
		Shapes:       shapes,
		CameraConfig: DefaultCameraConfig(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// GetPrimitiveCount returns the number of primitives, counting every mesh face
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		if mesh, ok := shape.(*geometry.Mesh); ok {
			count += len(mesh.Faces)
			continue
		}
		count++
	}
	return count
}
