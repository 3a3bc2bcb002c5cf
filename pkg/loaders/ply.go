package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
)

// plyProperty is a property definition from the PLY header
type plyProperty struct {
	Name      string
	Type      string // Scalar type, or the element type of a list
	CountType string // Type of the list length; empty for scalars
}

func (p plyProperty) isList() bool { return p.CountType != "" }

// plyElement is an element block ("vertex", "face", ...) from the header
type plyElement struct {
	Name       string
	Count      int
	Properties []plyProperty
}

// plyHeader represents the parsed header information from a PLY file
type plyHeader struct {
	Format   string // "ascii", "binary_little_endian" or "binary_big_endian"
	Elements []plyElement
}

// LoadPLY loads a PLY file. Vertex positions come from the x, y and z
// properties and faces from vertex_indices (or vertex_index); everything else
// is skipped. logger may be nil.
func LoadPLY(filename string, logger core.Logger) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ParsePLY(file, filename)
	if err != nil {
		return nil, err
	}

	logLoaded(logger, filename, data, startTime)
	return data, nil
}

// ParsePLY reads an ASCII or binary PLY stream. name is only used in error
// messages. Polygons are fan-triangulated and carry no material.
func ParsePLY(r io.Reader, name string) (*MeshData, error) {
	br := bufio.NewReader(r)

	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var values plyValueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(br)
		scanner.Split(bufio.ScanWords)
		values = &plyASCIIReader{scanner: scanner}
	case "binary_little_endian":
		values = &plyBinaryReader{r: br, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &plyBinaryReader{r: br, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("%s: %w: unsupported PLY format %q", name, ErrSyntax, header.Format)
	}

	data := &MeshData{}
	for _, element := range header.Elements {
		if err := readPLYElement(values, element, data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return data, nil
}

// parsePLYHeader reads up to and including the end_header line
func parsePLYHeader(r *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}

	line, err := r.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != "ply" {
		return nil, fmt.Errorf("%w: missing ply magic", ErrSyntax)
	}

	for lineNum := 2; ; lineNum++ {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: header ends without end_header", ErrSyntax)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			return header, nil
		case "comment", "obj_info":
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: line %d: bad format line", ErrSyntax, lineNum)
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: line %d: bad element line", ErrSyntax, lineNum)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: line %d: invalid element count %q", ErrSyntax, lineNum, parts[2])
			}
			header.Elements = append(header.Elements, plyElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("%w: line %d: property before element", ErrSyntax, lineNum)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNum, err)
			}
			last := &header.Elements[len(header.Elements)-1]
			last.Properties = append(last.Properties, prop)
		default:
			return nil, fmt.Errorf("%w: line %d: unknown header keyword %q", ErrSyntax, lineNum, parts[0])
		}
	}
}

// parsePLYProperty parses the fields after "property"
func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 1 && parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		if plyTypeSize(parts[1]) == 0 || plyTypeSize(parts[2]) == 0 {
			return plyProperty{}, fmt.Errorf("unknown type in list property %s", parts[3])
		}
		return plyProperty{Name: parts[3], Type: parts[2], CountType: parts[1]}, nil
	}
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	if plyTypeSize(parts[0]) == 0 {
		return plyProperty{}, fmt.Errorf("unknown type %q for property %s", parts[0], parts[1])
	}
	return plyProperty{Name: parts[1], Type: parts[0]}, nil
}

// readPLYElement reads every instance of element, keeping vertex positions
// and face indices
func readPLYElement(values plyValueReader, element plyElement, data *MeshData) error {
	var polygon []int
	for i := 0; i < element.Count; i++ {
		var position [3]float64
		polygon = polygon[:0]

		for _, prop := range element.Properties {
			if !prop.isList() {
				v, err := values.next(prop.Type)
				if err != nil {
					return fmt.Errorf("%s %d: property %s: %w", element.Name, i, prop.Name, err)
				}
				if element.Name == "vertex" {
					switch prop.Name {
					case "x":
						position[0] = v
					case "y":
						position[1] = v
					case "z":
						position[2] = v
					}
				}
				continue
			}

			n, err := values.next(prop.CountType)
			if err != nil {
				return fmt.Errorf("%s %d: property %s: %w", element.Name, i, prop.Name, err)
			}
			keep := element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index")
			for j := 0; j < int(n); j++ {
				v, err := values.next(prop.Type)
				if err != nil {
					return fmt.Errorf("%s %d: property %s: %w", element.Name, i, prop.Name, err)
				}
				if keep {
					polygon = append(polygon, int(v))
				}
			}
		}

		switch element.Name {
		case "vertex":
			data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
		case "face":
			if len(polygon) < 3 {
				return fmt.Errorf("%w: face %d has %d vertices", ErrSyntax, i, len(polygon))
			}
			for _, idx := range polygon {
				if idx < 0 || idx >= len(data.Vertices) {
					return fmt.Errorf("%w: face %d: vertex index %d out of range (have %d vertices)",
						ErrSyntax, i, idx, len(data.Vertices))
				}
			}
			data.addPolygon(polygon, geometry.NoMaterial)
		}
	}
	return nil
}

// plyTypeSize returns the size in bytes of a PLY data type, or 0 if unknown
func plyTypeSize(dataType string) int {
	switch dataType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}

// plyValueReader yields the next property value, converted to float64
type plyValueReader interface {
	next(dataType string) (float64, error)
}

type plyASCIIReader struct {
	scanner *bufio.Scanner
}

func (a *plyASCIIReader) next(string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}

type plyBinaryReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *plyBinaryReader) next(dataType string) (float64, error) {
	size := plyTypeSize(dataType)
	if _, err := io.ReadFull(b.r, b.buf[:size]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	raw := b.buf[:size]

	switch dataType {
	case "char", "int8":
		return float64(int8(raw[0])), nil
	case "uchar", "uint8":
		return float64(raw[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(raw))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(raw)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(raw))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(raw)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(raw))), nil
	default: // double
		return math.Float64frombits(b.order.Uint64(raw)), nil
	}
}
