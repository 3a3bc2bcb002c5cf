package scene

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// NewPlaneTextureScene creates an image-textured floor under an emissive
// ceiling, useful for checking plane UV orientation
func NewPlaneTextureScene(opts Options) (*Scene, error) {
	grid, err := opts.requiredTexture(GridTextureAsset)
	if err != nil {
		return nil, err
	}

	var shapes shapeList
	shapes.plane(core.NewVec3(0, 5, 0), down, forward, material.NewEmissive(core.White, 1))
	shapes.plane(core.NewVec3(0, -1.5, 0), up, forward, &material.Material{Albedo: grid})

	return shapes.scene("plane-texture")
}

// NewSphereTextureScene creates an image-textured sphere inside a box whose
// walls all emit white, so the texture is evenly lit from every side
func NewSphereTextureScene(opts Options) (*Scene, error) {
	albedo, err := opts.requiredTexture(FloorTextureAsset)
	if err != nil {
		return nil, err
	}
	return litSphereScene("sphere-texture", albedo)
}

// NewUVSphereScene is the sphere-texture scene with UV coordinates painted
// as colors instead of an image, so it needs no assets
func NewUVSphereScene(Options) (*Scene, error) {
	return litSphereScene("uv-sphere", material.NewUVDebug())
}

func litSphereScene(name string, albedo material.Texture) (*Scene, error) {
	var shapes shapeList
	shapes.sphere(core.NewVec3(0, 0, -5), 1, &material.Material{Albedo: albedo})

	light := material.NewEmissive(core.White, 1)
	walls := []struct{ point, normal, bias core.Vec3 }{
		{core.NewVec3(0, 5, 0), down, forward},
		{core.NewVec3(0, -5, 0), up, forward},
		{core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), forward},
		{core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), forward},
		{core.NewVec3(0, 0, -15), core.NewVec3(0, 0, 1), up},
		{core.NewVec3(0, 0, 1), forward, up},
	}
	for _, w := range walls {
		shapes.plane(w.point, w.normal, w.bias, light)
	}

	sc, err := shapes.scene(name)
	if err != nil {
		return nil, err
	}
	// Closer sensor framing around the sphere
	sc.CameraConfig.SensorHeight = 1.2
	return sc, nil
}
