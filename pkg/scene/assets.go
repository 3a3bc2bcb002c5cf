package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/loaders"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// Options controls how built-in scenes find their external assets
type Options struct {
	AssetDir       string      // Directory holding textures and models
	MaxTextureSize int         // Downscale textures whose longer side exceeds this; 0 keeps full size
	Logger         core.Logger // Receives asset loading messages; nil discards them
}

func (o Options) logger() core.Logger {
	if o.Logger == nil {
		return core.DiscardLogger{}
	}
	return o.Logger
}

func (o Options) path(name string) string {
	return filepath.Join(o.AssetDir, name)
}

// requiredTexture loads an image texture from the asset directory. A missing
// or unreadable file fails the scene build.
func (o Options) requiredTexture(name string) (*material.ImageTexture, error) {
	tex, err := loaders.LoadTexture(o.path(name), o.MaxTextureSize)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", name, err)
	}
	o.logger().Printf("Loaded texture %s (%dx%d)\n", o.path(name), tex.Width, tex.Height)
	return tex, nil
}

// requiredMesh loads an OBJ model from the asset directory
func (o Options) requiredMesh(name string, defaultMaterial *material.Material, transform core.Mat4) (*geometry.Mesh, error) {
	mesh, err := loaders.LoadMesh(o.path(name), defaultMaterial, transform, o.logger())
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}
	return mesh, nil
}

// shapeList collects shapes for a scene, keeping the first construction error
type shapeList struct {
	shapes []geometry.Shape
	err    error
}

func (l *shapeList) add(shapes ...geometry.Shape) {
	l.shapes = append(l.shapes, shapes...)
}

func (l *shapeList) sphere(center core.Vec3, radius float64, mat *material.Material) {
	s, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		if l.err == nil {
			l.err = err
		}
		return
	}
	l.add(s)
}

func (l *shapeList) plane(point, normal, bias core.Vec3, mat *material.Material) {
	l.add(geometry.NewPlane(point, normal, bias, mat))
}

// scene wraps the collected shapes with the default camera
func (l *shapeList) scene(name string) (*Scene, error) {
	if l.err != nil {
		return nil, l.err
	}
	return New(name, l.shapes...), nil
}
