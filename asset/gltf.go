package asset

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// loadGLTF reads a glTF or binary GLB file. Only the first primitive of the
// first mesh is used; multi-mesh documents are out of scope for the viewer.
func loadGLTF(path string) (RawMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return RawMesh{}, err
	}
	return fromDocument(doc)
}

// fromDocument converts a parsed glTF document into the normalized raw form.
// It is split from the file I/O so tests can feed in-memory documents.
func fromDocument(doc *gltf.Document) (RawMesh, error) {
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return RawMesh{}, fmt.Errorf("document contains no mesh primitives")
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return RawMesh{}, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return RawMesh{}, fmt.Errorf("failed to read positions: %w", err)
	}

	raw := RawMesh{Positions: positions}

	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		texCoords, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return RawMesh{}, fmt.Errorf("failed to read texture coordinates: %w", err)
		}
		raw.TexCoords = texCoords
	}

	if prim.Indices == nil {
		return RawMesh{}, fmt.Errorf("primitive has no index buffer")
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return RawMesh{}, fmt.Errorf("failed to read indices: %w", err)
	}
	if len(indices)%3 != 0 {
		return RawMesh{}, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	raw.Faces = make([][3]uint32, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		raw.Faces = append(raw.Faces, [3]uint32{indices[i], indices[i+1], indices[i+2]})
	}
	return raw, nil
}
