package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-meshview/asset"
	"github.com/toxichemicals/GO/holy-meshview/core"
)

// Name is an enumerated built-in scene choice, read once at startup.
type Name string

const (
	Triangle Name = "triangle"
	Cube     Name = "cube"
	Model    Name = "model"
)

// Config selects a scene and its inputs.
type Config struct {
	Scene       Name
	ModelPath   string // used by the model scene
	TexturePath string
	FlipUV      bool // used by the model scene
}

// Definition is everything the renderer needs to put one mesh on screen.
type Definition struct {
	Mesh        asset.Data
	TexturePath string
	Object      Object
}

// Build resolves the configured scene into mesh data. Parse failures from
// the model scene propagate up with the importer's message intact.
func Build(cfg Config) (Definition, error) {
	def := Definition{
		TexturePath: cfg.TexturePath,
		Object: Object{
			Position: mgl32.Vec3{0, 0, -3},
			Scale:    mgl32.Vec3{3, 3, 3},
		},
	}

	switch cfg.Scene {
	case Triangle:
		def.Mesh = triangleData()
	case Cube:
		def.Mesh = cubeData()
		def.Object.Orientation = mgl32.Vec3{mgl32.DegToRad(30), mgl32.DegToRad(40), 0}
		def.Object.Scale = mgl32.Vec3{1.5, 1.5, 1.5}
	case Model:
		mesh, err := asset.Load(cfg.ModelPath, cfg.FlipUV)
		if err != nil {
			return Definition{}, err
		}
		def.Mesh = mesh
	default:
		return Definition{}, fmt.Errorf("unknown scene %q (want triangle, cube or model)", cfg.Scene)
	}
	return def, nil
}

// triangleData is the classic textured-triangle scene: three vertices, one
// face.
func triangleData() asset.Data {
	return asset.Data{
		Vertices: []core.Vertex3D{
			{X: -0.5, Y: -0.5, Z: 0, U: 0, V: 1},
			{X: -0.5, Y: 0.5, Z: 0, U: 0, V: 0},
			{X: 0.5, Y: 0.5, Z: 0, U: 1, V: 0},
		},
		Indices: []uint32{2, 1, 0},
	}
}

// cubeData returns a unit cube. Each face gets its own four vertices so it
// can carry a full 0..1 UV quad.
func cubeData() asset.Data {
	quads := []struct {
		corners [4][3]float32
	}{
		// Front
		{[4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		// Back
		{[4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		// Top
		{[4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		// Bottom
		{[4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
		// Right
		{[4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		// Left
		{[4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var d asset.Data
	for _, q := range quads {
		base := uint32(len(d.Vertices))
		for i, c := range q.corners {
			d.Vertices = append(d.Vertices, core.Vertex3D{
				X: c[0], Y: c[1], Z: c[2],
				U: uvs[i][0], V: uvs[i][1],
			})
		}
		d.Indices = append(d.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return d
}
