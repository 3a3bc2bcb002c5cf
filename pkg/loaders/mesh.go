package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// ErrUnsupportedFormat is returned for model files that are neither OBJ nor PLY
var ErrUnsupportedFormat = errors.New("unsupported model format")

// MeshData contains the geometry and materials read from a model file
type MeshData struct {
	Vertices      []core.Vec3
	Faces         []geometry.Face      // Triangles; polygons are fan-triangulated
	Materials     []*material.Material // Table indexed by Face.Material
	MaterialNames []string             // Name of each Materials entry
}

// LoadMeshData loads an .obj or .ply file, chosen by extension
func LoadMeshData(filename string, logger core.Logger) (*MeshData, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".obj":
		return LoadOBJ(filename, logger)
	case ".ply":
		return LoadPLY(filename, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// LoadMesh loads a model file into a mesh. Faces without a known material use
// defaultMaterial; vertices are moved by transform.
func LoadMesh(filename string, defaultMaterial *material.Material, transform core.Mat4, logger core.Logger) (*geometry.Mesh, error) {
	data, err := LoadMeshData(filename, logger)
	if err != nil {
		return nil, err
	}
	mesh, err := geometry.NewMesh(data.Vertices, data.Faces, data.Materials, defaultMaterial, transform)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh from %s: %w", filename, err)
	}
	return mesh, nil
}

// useMaterial returns the table index for a material name, appending the
// material on first use. Unknown names map to geometry.NoMaterial.
func (d *MeshData) useMaterial(name string, library map[string]*material.Material, tableIndex map[string]int) int {
	if idx, ok := tableIndex[name]; ok {
		return idx
	}
	m, ok := library[name]
	if !ok {
		return geometry.NoMaterial
	}
	idx := len(d.Materials)
	d.Materials = append(d.Materials, m)
	d.MaterialNames = append(d.MaterialNames, name)
	tableIndex[name] = idx
	return idx
}

// addPolygon fan-triangulates a polygon given as vertex indices
func (d *MeshData) addPolygon(indices []int, materialIndex int) {
	for i := 1; i+1 < len(indices); i++ {
		d.Faces = append(d.Faces, geometry.Face{
			A:        indices[0],
			B:        indices[i],
			C:        indices[i+1],
			Material: materialIndex,
		})
	}
}

func logLoaded(logger core.Logger, filename string, data *MeshData, start time.Time) {
	if logger == nil {
		return
	}
	logger.Printf("Loaded %s: %d vertices, %d triangles, %d materials in %v\n",
		filepath.Base(filename), len(data.Vertices), len(data.Faces), len(data.Materials),
		time.Since(start).Round(time.Millisecond))
}
