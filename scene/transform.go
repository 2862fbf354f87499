// Package scene holds the built-in scene definitions and the per-frame
// transform composition: model, view, and projection.
package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	fovDegrees = 45.0
	nearPlane  = 0.1
	farPlane   = 100.0
)

// Object is one placed mesh: a position, an Euler orientation in radians,
// and a scale.
type Object struct {
	Position    mgl32.Vec3
	Orientation mgl32.Vec3
	Scale       mgl32.Vec3
}

// ModelMatrix composes the object's transform. A vertex is translated, then
// scaled, then rotated about z, x, and y, in that order. The order is
// contractual: reordering the factors changes what ends up on screen.
func (o Object) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	m = mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()).Mul4(m)
	m = mgl32.HomogRotate3DZ(o.Orientation.Z()).Mul4(m)
	m = mgl32.HomogRotate3DX(o.Orientation.X()).Mul4(m)
	m = mgl32.HomogRotate3DY(o.Orientation.Y()).Mul4(m)
	return m
}

// ViewMatrix is the fixed camera: eye at the origin, looking down -z, +y up.
func ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix is a 45 degree vertical-FOV perspective projection whose
// aspect ratio follows the current window size, so a resize is reflected on
// the next frame without a restart.
func ProjectionMatrix(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), float32(width)/float32(height), nearPlane, farPlane)
}
