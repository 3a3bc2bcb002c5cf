package scene

import (
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// roomBox adds the six planes of a 10×10 box spanning z ∈ [-15, 1]: a warm
// emissive ceiling, red and green side walls, a white back wall and a blue
// wall behind the camera. floor sets the floor material.
func roomBox(shapes *shapeList, floor *material.Material) {
	// Ceiling
	shapes.plane(core.NewVec3(0, 5, 0), down, forward, material.NewEmissive(core.NewColor(1, 0.95, 0.8), 1))
	// Floor
	shapes.plane(core.NewVec3(0, -5, 0), up, forward, floor)
	// Left wall
	shapes.plane(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), forward, material.NewDiffuse(core.NewColor(1, 0, 0)))
	// Right wall
	shapes.plane(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), forward, material.NewDiffuse(core.NewColor(0, 1, 0)))
	// Back wall
	shapes.plane(core.NewVec3(0, 0, -15), core.NewVec3(0, 0, 1), up, material.NewDiffuse(core.White))
	// Near wall
	shapes.plane(core.NewVec3(0, 0, 1), forward, up, material.NewDiffuse(core.NewColor(0, 0, 1)))
}

// roomShapes builds the room with its two spheres
func roomShapes(opts Options) (*shapeList, error) {
	floorAlbedo, err := opts.requiredTexture(FloorTextureAsset)
	if err != nil {
		return nil, err
	}

	shapes := &shapeList{}

	// Cyan light sphere in the back corner
	shapes.sphere(core.NewVec3(3, -3, -13), 1, material.NewEmissive(core.NewColor(0, 1, 1), 1))
	// Mirror ball
	shapes.sphere(core.NewVec3(-2, 0, -8), 1, material.NewMirror(1))

	roomBox(shapes, &material.Material{Albedo: floorAlbedo})
	return shapes, nil
}

// NewRoomScene creates a closed colored room lit by its ceiling, holding a
// mirror ball and a cyan light sphere
func NewRoomScene(opts Options) (*Scene, error) {
	shapes, err := roomShapes(opts)
	if err != nil {
		return nil, err
	}
	return shapes.scene("room")
}

// NewMeshScene is the room scene plus the OBJ model from the asset
// directory, turned to face the camera and set on the floor at half scale.
// The model is required.
func NewMeshScene(opts Options) (*Scene, error) {
	shapes, err := roomShapes(opts)
	if err != nil {
		return nil, err
	}

	transform := core.Translation(core.NewVec3(0, -3, -10)).
		Mul(core.RotationY(math.Pi)).
		Mul(core.Scale(core.Splat(0.5)))

	model, err := opts.requiredMesh(ModelAsset, material.NewDiffuse(core.White), transform)
	if err != nil {
		return nil, err
	}
	shapes.add(model)

	return shapes.scene("mesh")
}
