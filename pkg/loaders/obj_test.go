package loaders

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

type bufferLogger struct {
	strings.Builder
}

func (l *bufferLogger) Printf(format string, args ...interface{}) {
	l.WriteString(strings.TrimSpace(format))
	l.WriteByte('\n')
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestParseOBJ_Faces(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantFaces [][3]int
	}{
		{
			name: "Triangle",
			content: `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3`,
			wantFaces: [][3]int{{0, 1, 2}},
		},
		{
			name: "Quad is fan triangulated",
			content: `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4`,
			wantFaces: [][3]int{{0, 1, 2}, {0, 2, 3}},
		},
		{
			name: "Slash forms use the vertex index",
			content: `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2//1 3/1`,
			wantFaces: [][3]int{{0, 1, 2}},
		},
		{
			name: "Negative indices count back",
			content: `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1`,
			wantFaces: [][3]int{{0, 1, 2}},
		},
		{
			name: "Comments and groups ignored",
			content: `# a comment
o object
g group
s off
v 0 0 0 # trailing comment
v 1 0 0
v 0 1 0

f 1 2 3`,
			wantFaces: [][3]int{{0, 1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseOBJ(strings.NewReader(tt.content), "test.obj", nil)
			if err != nil {
				t.Fatalf("ParseOBJ failed: %v", err)
			}
			if len(data.Faces) != len(tt.wantFaces) {
				t.Fatalf("Expected %d faces, got %d", len(tt.wantFaces), len(data.Faces))
			}
			for i, want := range tt.wantFaces {
				f := data.Faces[i]
				if f.A != want[0] || f.B != want[1] || f.C != want[2] {
					t.Errorf("Face %d: expected %v, got (%d, %d, %d)", i, want, f.A, f.B, f.C)
				}
				if f.Material != geometry.NoMaterial {
					t.Errorf("Face %d: expected no material, got %d", i, f.Material)
				}
			}
		})
	}
}

func TestParseOBJ_Vertices(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader("v 1.5 -2 3e-1\nv 0 0 0 1\n"), "test.obj", nil)
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(data.Vertices) != 2 {
		t.Fatalf("Expected 2 vertices, got %d", len(data.Vertices))
	}
	if !data.Vertices[0].Equals(core.NewVec3(1.5, -2, 0.3)) {
		t.Errorf("Expected (1.5, -2, 0.3), got %v", data.Vertices[0])
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine string
	}{
		{"Index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", ":4:"},
		{"Forward reference", "v 0 0 0\nf 1 2 3\nv 1 0 0\nv 0 1 0\n", ":2:"},
		{"Zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ":4:"},
		{"Too few face vertices", "v 0 0 0\nv 1 0 0\nf 1 2\n", ":3:"},
		{"Bad coordinate", "v 0 zero 0\n", ":1:"},
		{"Short vertex", "v 0 0\n", ":1:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.content), "test.obj", nil)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Expected ErrSyntax, got %v", err)
			}
			if !strings.Contains(err.Error(), "test.obj"+tt.wantLine) {
				t.Errorf("Expected error to name line %q, got %v", tt.wantLine, err)
			}
		})
	}
}

func TestParseOBJ_Materials(t *testing.T) {
	red := material.NewDiffuse(core.NewColor(1, 0, 0))
	blue := material.NewDiffuse(core.NewColor(0, 0, 1))
	resolve := func(name string) (map[string]*material.Material, error) {
		if name != "scene.mtl" {
			t.Errorf("Unexpected library %q", name)
		}
		return map[string]*material.Material{"red": red, "blue": blue}, nil
	}

	content := `mtllib scene.mtl
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
usemtl blue
f 1 2 3
usemtl red
f 1 2 3
usemtl blue
f 1 2 3
usemtl missing
f 1 2 3`

	data, err := ParseOBJ(strings.NewReader(content), "test.obj", resolve)
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	wantMaterials := []int{geometry.NoMaterial, 0, 1, 0, geometry.NoMaterial}
	for i, want := range wantMaterials {
		if data.Faces[i].Material != want {
			t.Errorf("Face %d: expected material %d, got %d", i, want, data.Faces[i].Material)
		}
	}

	// Table holds only materials that were used, in first-use order
	if len(data.Materials) != 2 || data.Materials[0] != blue || data.Materials[1] != red {
		t.Errorf("Unexpected material table %v", data.MaterialNames)
	}
}

func TestLoadOBJ_WithMTL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lamp.mtl", `newmtl shade
Kd 0.8 0.7 0.6
newmtl bulb
Kd 1 1 1
Ke 4 4 3
`)
	objPath := writeFile(t, dir, "lamp.obj", `mtllib lamp.mtl
v 0 0 0
v 1 0 0
v 0 1 0
usemtl shade
f 1 2 3
usemtl bulb
f 3 2 1
`)

	logger := &bufferLogger{}
	data, err := LoadOBJ(objPath, logger)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if len(data.Materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d", len(data.Materials))
	}
	if data.Materials[0].IsEmissive() {
		t.Error("shade should not be emissive")
	}
	if !data.Materials[1].IsEmissive() {
		t.Error("bulb should be emissive")
	}
	if !strings.Contains(logger.String(), "Loaded %s") {
		t.Errorf("Expected a load summary, got %q", logger.String())
	}
}

func TestLoadOBJ_MissingMTL(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "broken.obj", "mtllib nowhere.mtl\n")

	_, err := LoadOBJ(objPath, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadMesh(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "quad.obj", `v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
f 1 2 3 4
`)

	fallback := material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5))
	mesh, err := LoadMesh(objPath, fallback, core.Translation(core.NewVec3(0, 0, -5)), nil)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if len(mesh.Faces) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(mesh.Faces))
	}

	ray := core.NewRay(core.NewVec3(0.2, -0.3, 0), core.NewVec3(0, 0, -1))
	hit, ok := geometry.Intersect(mesh, ray)
	if !ok {
		t.Fatal("Expected the translated quad to be hit")
	}
	if hit.Distance < 4.99 || hit.Distance > 5.01 {
		t.Errorf("Expected distance ~5, got %f", hit.Distance)
	}
	if geometry.MaterialFor(mesh, &hit) != fallback {
		t.Error("Expected faces without usemtl to use the default material")
	}
}

func TestLoadMesh_MissingFile(t *testing.T) {
	_, err := LoadMesh(filepath.Join(t.TempDir(), "missing.obj"), nil, core.Identity(), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}
