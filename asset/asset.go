// Package asset parses model files and converts them into the vertex and
// index sequences the GPU mesh builder consumes. Everything here is CPU-side
// and needs no GL context.
package asset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toxichemicals/GO/holy-meshview/core"
)

// RawMesh is a parsed model normalized to indexed triangle form: per-vertex
// positions, an optional first texture-coordinate channel, and triangular
// faces referencing both by the same index.
type RawMesh struct {
	Positions [][3]float32
	TexCoords [][2]float32 // nil when the source carries no UV channel
	Faces     [][3]uint32
}

// Data is mesh geometry ready for upload.
type Data struct {
	Vertices []core.Vertex3D
	Indices  []uint32
}

// TriangleCount reports how many faces the index list describes.
func (d Data) TriangleCount() int {
	return len(d.Indices) / 3
}

// Validate checks the mesh invariants: a non-empty vertex list, an index
// list that is a whole number of triangles, and every index in range.
func (d Data) Validate() error {
	if len(d.Vertices) == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= len(d.Vertices) {
			return fmt.Errorf("index %d at position %d out of range for %d vertices", idx, i, len(d.Vertices))
		}
	}
	return nil
}

// FromRaw emits one output vertex per source vertex, in order, and three
// indices per face, in order. Vertices without a texture-coordinate channel
// get (0, 0). When flipUV is set the V axis is inverted (v -> 1-v) to
// reconcile bottom-left texture origins; U and positions are untouched.
func FromRaw(raw RawMesh, flipUV bool) Data {
	d := Data{
		Vertices: make([]core.Vertex3D, 0, len(raw.Positions)),
		Indices:  make([]uint32, 0, len(raw.Faces)*3),
	}
	for i, p := range raw.Positions {
		v := core.Vertex3D{X: p[0], Y: p[1], Z: p[2]}
		if i < len(raw.TexCoords) {
			v.U = raw.TexCoords[i][0]
			v.V = raw.TexCoords[i][1]
			if flipUV {
				v.V = 1 - v.V
			}
		}
		d.Vertices = append(d.Vertices, v)
	}
	for _, f := range raw.Faces {
		d.Indices = append(d.Indices, f[0], f[1], f[2])
	}
	return d
}

// Load parses the model file at path, chosen by extension (.obj, .gltf,
// .glb), and converts its first mesh. A parse failure is returned with the
// importer's message wrapped in; callers decide whether it is fatal.
func Load(path string, flipUV bool) (Data, error) {
	var (
		raw RawMesh
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		raw, err = loadOBJ(path)
	case ".gltf", ".glb":
		raw, err = loadGLTF(path)
	default:
		return Data{}, fmt.Errorf("unsupported model format %q", ext)
	}
	if err != nil {
		return Data{}, fmt.Errorf("failed to parse model %s: %w", path, err)
	}

	d := FromRaw(raw, flipUV)
	if err := d.Validate(); err != nil {
		return Data{}, fmt.Errorf("model %s: %w", path, err)
	}
	return d, nil
}
