package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Build for names missing from the registry
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name passed to Build and the -scene flag
	Description string
	build       func(opts Options) (*Scene, error)
}

var builtins = []SceneInfo{
	{
		ID:          "reflect",
		Description: "White light sphere over a red floor with a checkered mirror finish",
		build:       NewReflectScene,
	},
	{
		ID:          "material",
		Description: "Red light sphere under a lit ceiling above a specular-mapped floor",
		build:       NewMaterialScene,
	},
	{
		ID:          "room",
		Description: "Closed colored room with a mirror ball and a cyan light sphere",
		build:       NewRoomScene,
	},
	{
		ID:          "mesh",
		Description: "Room scene with an OBJ model loaded from the assets directory",
		build:       NewMeshScene,
	},
	{
		ID:          "plane-texture",
		Description: "Image-textured floor under an emissive ceiling",
		build:       NewPlaneTextureScene,
	},
	{
		ID:          "sphere-texture",
		Description: "Image-textured sphere inside a box of emissive walls",
		build:       NewSphereTextureScene,
	},
	{
		ID:          "uv-sphere",
		Description: "Sphere painted with its UV coordinates inside a box of emissive walls",
		build:       NewUVSphereScene,
	},
	{
		ID:          "emissive",
		Description: "Row of colored light spheres over a glossy floor",
		build:       NewEmissiveScene,
	},
	{
		ID:          "empty",
		Description: "No geometry, renders black",
		build: func(Options) (*Scene, error) {
			return New("empty"), nil
		},
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtins))
	copy(scenes, builtins)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of the built-in scenes, sorted
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.ID
	}
	return names
}

// Build constructs the built-in scene with the given ID
func Build(id string, opts Options) (*Scene, error) {
	for _, info := range builtins {
		if info.ID == id {
			sc, err := info.build(opts)
			if err != nil {
				return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
			}
			return sc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}
