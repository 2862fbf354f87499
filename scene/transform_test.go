package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func vec3Near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < epsilon
}

func TestModelMatrixCompositionOrder(t *testing.T) {
	// The local origin is translated to (1,0,0), scaled to (2,0,0), then
	// rotated 90 degrees about z onto (0,2,0). Any other factor order would
	// land somewhere else, so this pins the translate-scale-z-x-y contract.
	o := Object{
		Position:    mgl32.Vec3{1, 0, 0},
		Orientation: mgl32.Vec3{0, 0, math.Pi / 2},
		Scale:       mgl32.Vec3{2, 2, 2},
	}

	got := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, o.ModelMatrix())
	want := mgl32.Vec3{0, 2, 0}
	if !vec3Near(got, want) {
		t.Errorf("origin mapped to %v, want %v", got, want)
	}
}

func TestModelMatrixTranslationOnly(t *testing.T) {
	o := Object{
		Position: mgl32.Vec3{3, -1, 2},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	got := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, o.ModelMatrix())
	if !vec3Near(got, o.Position) {
		t.Errorf("origin mapped to %v, want %v", got, o.Position)
	}
}

func TestViewMatrixIsFixedAtOrigin(t *testing.T) {
	// Eye at origin looking down -z with +y up leaves world coordinates
	// unchanged, so the view matrix is the identity.
	view := ViewMatrix()
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 2, -3}, view)
	if !vec3Near(p, mgl32.Vec3{1, 2, -3}) {
		t.Errorf("view transform moved %v to %v", mgl32.Vec3{1, 2, -3}, p)
	}
}

func TestProjectionAspectTracksWindowSize(t *testing.T) {
	// For a perspective matrix, m00 = f/aspect and m11 = f, so m11/m00
	// recovers the aspect ratio fed in.
	tests := []struct {
		width, height int
		aspect        float32
	}{
		{1200, 800, 1.5},
		{800, 800, 1.0},
		{640, 480, 4.0 / 3.0},
	}
	for _, tt := range tests {
		proj := ProjectionMatrix(tt.width, tt.height)
		got := proj.At(1, 1) / proj.At(0, 0)
		if float32(math.Abs(float64(got-tt.aspect))) > epsilon {
			t.Errorf("%dx%d: aspect = %v, want %v", tt.width, tt.height, got, tt.aspect)
		}
	}
}

func TestProjectionMatchesParameters(t *testing.T) {
	want := mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 100)
	got := ProjectionMatrix(1200, 800)
	for i := 0; i < 16; i++ {
		if got[i] != want[i] {
			t.Fatalf("projection matrix differs at element %d: have %v, want %v", i, got[i], want[i])
		}
	}
}
