package asset

import (
	"strings"
	"testing"

	"github.com/toxichemicals/GO/holy-meshview/core"
)

func rawTriangle() RawMesh {
	return RawMesh{
		Positions: [][3]float32{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0, 0.5, 0}},
		TexCoords: [][2]float32{{0, 1}, {1, 1}, {0.5, 0}},
		Faces:     [][3]uint32{{0, 1, 2}},
	}
}

func TestFromRawPreservesVerticesAndFaces(t *testing.T) {
	raw := rawTriangle()
	d := FromRaw(raw, false)

	if len(d.Vertices) != len(raw.Positions) {
		t.Fatalf("vertex count: have %d, want %d", len(d.Vertices), len(raw.Positions))
	}
	for i, p := range raw.Positions {
		v := d.Vertices[i]
		if v.X != p[0] || v.Y != p[1] || v.Z != p[2] {
			t.Errorf("vertex %d position: have (%v,%v,%v), want %v", i, v.X, v.Y, v.Z, p)
		}
		if v.U != raw.TexCoords[i][0] || v.V != raw.TexCoords[i][1] {
			t.Errorf("vertex %d texcoord: have (%v,%v), want %v", i, v.U, v.V, raw.TexCoords[i])
		}
	}

	want := []uint32{0, 1, 2}
	if len(d.Indices) != len(want) {
		t.Fatalf("index count: have %d, want %d", len(d.Indices), len(want))
	}
	for i := range want {
		if d.Indices[i] != want[i] {
			t.Errorf("index %d: have %d, want %d", i, d.Indices[i], want[i])
		}
	}
}

func TestFromRawFlipUVInvertsOnlyV(t *testing.T) {
	raw := rawTriangle()
	plain := FromRaw(raw, false)
	flipped := FromRaw(raw, true)

	for i := range plain.Vertices {
		p, f := plain.Vertices[i], flipped.Vertices[i]
		if f.X != p.X || f.Y != p.Y || f.Z != p.Z {
			t.Errorf("vertex %d: flip-uv changed position", i)
		}
		if f.U != p.U {
			t.Errorf("vertex %d: flip-uv changed U from %v to %v", i, p.U, f.U)
		}
		if f.V != 1-p.V {
			t.Errorf("vertex %d: V = %v after flip, want %v", i, f.V, 1-p.V)
		}
	}
	for i := range plain.Indices {
		if flipped.Indices[i] != plain.Indices[i] {
			t.Errorf("index %d: flip-uv changed face order", i)
		}
	}
}

func TestFromRawWithoutTexCoords(t *testing.T) {
	raw := rawTriangle()
	raw.TexCoords = nil
	d := FromRaw(raw, true)

	for i, v := range d.Vertices {
		if v.U != 0 || v.V != 0 {
			t.Errorf("vertex %d: texcoord (%v,%v), want (0,0)", i, v.U, v.V)
		}
	}
}

func TestTriangleCount(t *testing.T) {
	d := Data{Indices: make([]uint32, 12)}
	if n := d.TriangleCount(); n != 4 {
		t.Errorf("TriangleCount: have %d, want 4", n)
	}
}

func TestValidate(t *testing.T) {
	verts := []core.Vertex3D{{}, {}, {}}

	tests := []struct {
		name    string
		data    Data
		wantErr bool
	}{
		{"valid", Data{Vertices: verts, Indices: []uint32{0, 1, 2}}, false},
		{"no vertices", Data{Indices: []uint32{0, 1, 2}}, true},
		{"not a whole triangle", Data{Vertices: verts, Indices: []uint32{0, 1}}, true},
		{"index out of range", Data{Vertices: verts, Indices: []uint32{0, 1, 3}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load("model.stl", false)
	if err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
	if !strings.Contains(err.Error(), ".stl") {
		t.Errorf("error %q does not name the extension", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	const path = "does/not/exist.obj"
	_, err := Load(path, false)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}
}
