package asset

import (
	"fmt"
	"os"

	"github.com/sheenobu/go-obj/obj"
)

// objPoint keys the deduplication map: a face point with the same position
// and texture coordinate as an earlier one reuses that vertex.
type objPoint struct {
	pos   [3]float32
	uv    [2]float32
	hasUV bool
}

// loadOBJ reads a Wavefront OBJ file. OBJ faces index positions and texture
// coordinates independently, so face points are flattened into a single
// indexed vertex stream, deduplicated in first-seen order. Only triangular
// faces are supported.
func loadOBJ(path string) (RawMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return RawMesh{}, err
	}
	defer f.Close()

	o, err := obj.NewReader(f).Read()
	if err != nil {
		return RawMesh{}, err
	}

	var raw RawMesh
	seen := make(map[objPoint]uint32)
	hasUVs := false
	for _, face := range o.Faces {
		if len(face.Points) != 3 {
			return RawMesh{}, fmt.Errorf("face with %d vertices: only triangles are supported", len(face.Points))
		}
		var tri [3]uint32
		for i, pt := range face.Points {
			key := objPoint{
				pos: [3]float32{float32(pt.Vertex.X), float32(pt.Vertex.Y), float32(pt.Vertex.Z)},
			}
			if pt.Texture != nil {
				key.uv = [2]float32{float32(pt.Texture.U), float32(pt.Texture.V)}
				key.hasUV = true
				hasUVs = true
			}
			idx, ok := seen[key]
			if !ok {
				idx = uint32(len(raw.Positions))
				seen[key] = idx
				raw.Positions = append(raw.Positions, key.pos)
				raw.TexCoords = append(raw.TexCoords, key.uv)
			}
			tri[i] = idx
		}
		raw.Faces = append(raw.Faces, tri)
	}

	if !hasUVs {
		raw.TexCoords = nil
	}
	return raw, nil
}
