package scene

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// Asset names looked up in Options.AssetDir
const (
	CobblestoneSpecularAsset = "cobblestone_specular.jpg"
	FloorTextureAsset        = "texture.jpg"
	GridTextureAsset         = "grid.jpg"
	ModelAsset               = "model.obj"
)

var (
	up      = core.NewVec3(0, 1, 0)
	down    = core.NewVec3(0, -1, 0)
	forward = core.NewVec3(0, 0, -1)
)

func checkerboard() *material.ProceduralTexture {
	return material.NewCheckerboard(8, 8, core.White, core.Black)
}

// NewReflectScene creates a white light sphere over a red floor whose
// specularity alternates between mirror and matte in a checkerboard
func NewReflectScene(Options) (*Scene, error) {
	var shapes shapeList

	shapes.sphere(core.NewVec3(0, 0, -12), 1, material.NewEmissive(core.White, 1))

	floor := &material.Material{
		Albedo:   material.NewSolid(core.NewColor(1, 0, 0)),
		Specular: checkerboard(),
	}
	shapes.plane(core.NewVec3(0, -1.5, 0), up, forward, floor)

	return shapes.scene("reflect")
}

// NewMaterialScene creates a red light sphere under an emissive ceiling above
// a floor whose specularity comes from an image map
func NewMaterialScene(opts Options) (*Scene, error) {
	var shapes shapeList

	shapes.sphere(core.NewVec3(0, 0, -12), 1, material.NewEmissive(core.NewColor(1, 0, 0), 1))

	// Ceiling
	shapes.plane(core.NewVec3(0, 5, 0), down, forward, material.NewEmissive(core.White, 1))

	specular, err := opts.requiredTexture(CobblestoneSpecularAsset)
	if err != nil {
		return nil, err
	}
	shapes.plane(core.NewVec3(0, -1.5, 0), up, forward, &material.Material{Specular: specular})

	return shapes.scene("material")
}
