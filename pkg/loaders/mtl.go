package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// ErrSyntax is wrapped by every OBJ/MTL parse error
var ErrSyntax = errors.New("syntax error")

// LoadMTL loads a Wavefront material library
func LoadMTL(filename string) (map[string]*material.Material, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open MTL file: %w", err)
	}
	defer file.Close()

	materials, err := ParseMTL(file, filename)
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// ParseMTL reads newmtl, Kd (diffuse color) and Ke (emitted color) directives.
// A non-black Ke makes the material emissive at intensity 1. Other directives
// are ignored. name is only used in error messages.
func ParseMTL(r io.Reader, name string) (map[string]*material.Material, error) {
	materials := make(map[string]*material.Material)
	var current *material.Material

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(stripComment(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("%s:%d: %w: newmtl without a name", name, lineNum, ErrSyntax)
			}
			current = &material.Material{}
			materials[strings.Join(fields[1:], " ")] = current

		case "Kd", "Ke":
			if current == nil {
				return nil, fmt.Errorf("%s:%d: %w: %s before newmtl", name, lineNum, ErrSyntax, fields[0])
			}
			c, err := parseColor(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w: %s: %v", name, lineNum, ErrSyntax, fields[0], err)
			}
			if fields[0] == "Kd" {
				current.Albedo = material.NewSolid(c)
			} else if c != core.Black {
				current.EmissionColor = material.NewSolid(c)
				current.EmissionIntensity = material.NewScalar(1)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return materials, nil
}

// parseColor parses "r g b", or a single value used for all three channels
func parseColor(fields []string) (core.Color, error) {
	switch len(fields) {
	case 1:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return core.Color{}, err
		}
		return core.NewColor(v, v, v), nil
	case 3:
		v, err := parseFloats(fields)
		if err != nil {
			return core.Color{}, err
		}
		return core.NewColor(v[0], v[1], v[2]), nil
	default:
		return core.Color{}, fmt.Errorf("expected 1 or 3 values, got %d", len(fields))
	}
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// stripComment drops everything after a '#'
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
