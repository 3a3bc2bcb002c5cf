package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// MTLResolver loads the material library named by an mtllib directive
type MTLResolver func(name string) (map[string]*material.Material, error)

// LoadOBJ loads an OBJ file. mtllib paths resolve relative to the OBJ file.
// logger may be nil.
func LoadOBJ(filename string, logger core.Logger) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	dir := filepath.Dir(filename)
	resolve := func(name string) (map[string]*material.Material, error) {
		return LoadMTL(filepath.Join(dir, name))
	}

	data, err := ParseOBJ(file, filename, resolve)
	if err != nil {
		return nil, err
	}

	logLoaded(logger, filename, data, startTime)
	return data, nil
}

// ParseOBJ reads v, f, usemtl and mtllib directives; everything else is
// ignored. Face indices are 1-based, negative indices count back from the
// latest vertex, and only the vertex part of a/b/c references is used.
// name is only used in error messages. resolve may be nil when the file has
// no mtllib directive.
func ParseOBJ(r io.Reader, name string, resolve MTLResolver) (*MeshData, error) {
	data := &MeshData{}
	library := make(map[string]*material.Material)
	tableIndex := make(map[string]int)
	currentMaterial := geometry.NoMaterial

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(stripComment(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: %w: vertex needs 3 coordinates", name, lineNum, ErrSyntax)
			}
			v, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w: vertex: %v", name, lineNum, ErrSyntax, err)
			}
			data.Vertices = append(data.Vertices, core.NewVec3(v[0], v[1], v[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: %w: face needs at least 3 vertices", name, lineNum, ErrSyntax)
			}
			indices := make([]int, len(fields)-1)
			for i, ref := range fields[1:] {
				idx, err := parseVertexRef(ref, len(data.Vertices))
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w: %v", name, lineNum, ErrSyntax, err)
				}
				indices[i] = idx
			}
			data.addPolygon(indices, currentMaterial)

		case "mtllib":
			if resolve == nil {
				return nil, fmt.Errorf("%s:%d: mtllib without a resolver", name, lineNum)
			}
			for _, lib := range fields[1:] {
				materials, err := resolve(lib)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: mtllib %s: %w", name, lineNum, lib, err)
				}
				for k, m := range materials {
					library[k] = m
				}
			}

		case "usemtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("%s:%d: %w: usemtl without a name", name, lineNum, ErrSyntax)
			}
			currentMaterial = data.useMaterial(strings.Join(fields[1:], " "), library, tableIndex)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// parseVertexRef converts an OBJ vertex reference ("7", "7/1", "7//3",
// "-1/2/3") to a 0-based index into a list of vertexCount vertices
func parseVertexRef(ref string, vertexCount int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad vertex index %q", ref)
	}

	var idx int
	switch {
	case n > 0:
		idx = n - 1
	case n < 0:
		idx = vertexCount + n
	default:
		return 0, fmt.Errorf("vertex index 0 is invalid, indices start at 1")
	}
	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("vertex index %d out of range (have %d vertices)", n, vertexCount)
	}
	return idx, nil
}
