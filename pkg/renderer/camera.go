package renderer

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

// Camera is a fixed pinhole camera looking down -Z. Pixels map onto a
// sensor plane FocalLength in front of the pinhole; rays start on the sensor
// and point away from the pinhole.
type Camera struct {
	position     core.Vec3
	pixelToWorld core.Mat4
}

// NewCamera creates a camera for a width×height image. The sensor keeps
// config.SensorHeight and takes its width from the image aspect ratio.
func NewCamera(config scene.CameraConfig, width, height int) *Camera {
	sensorHeight := config.SensorHeight
	sensorWidth := sensorHeight * float64(width) / float64(height)

	// Top-left corner of the sensor, then pixel units scaled to world units with +y pointing up
	topLeft := config.Position.Add(core.NewVec3(-sensorWidth/2, sensorHeight/2, -config.FocalLength))
	pixelToWorld := core.Translation(topLeft).Mul(core.Scale(core.NewVec3(
		sensorWidth/float64(width),
		-sensorHeight/float64(height),
		1,
	)))

	return &Camera{
		position:     config.Position,
		pixelToWorld: pixelToWorld,
	}
}

// GetRay returns the primary ray through the center of pixel (x, y), with
// y = 0 the top row
func (c *Camera) GetRay(x, y int) core.Ray {
	point := c.pixelToWorld.TransformPoint(core.NewVec3(float64(x)+0.5, float64(y)+0.5, 0))
	return core.NewRay(point, point.Subtract(c.position).Normalize())
}
