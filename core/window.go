// Package core wraps the GLFW window and the OpenGL objects the viewer
// renders with: shader program, mesh buffers, and textures.
package core

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and the OpenGL context created for it. All
// methods must be called from the OS thread that called Open; the caller is
// expected to have locked it with runtime.LockOSThread before Open.
type Window struct {
	win    *glfw.Window
	width  int
	height int
}

// Open initializes GLFW and creates a window with an OpenGL 3.3 core
// context, a 24-bit depth buffer, an 8-bit stencil buffer, and 2x MSAA.
// Depth testing is enabled and the swap interval is set to 1 (vsync).
func Open(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Samples, 2)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	w := &Window{win: win, width: width, height: height}

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(width), int32(height))
	glfw.SwapInterval(1)

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, fbWidth, fbHeight int) {
		w.width = fbWidth
		w.height = fbHeight
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	})

	return w, nil
}

// PollEvents drains the pending window events. The close event (and Escape,
// as a convenience) requests shutdown; everything else is ignored.
func (w *Window) PollEvents() {
	glfw.PollEvents()
	if w.win.GetKey(glfw.KeyEscape) == glfw.Press {
		w.win.SetShouldClose(true)
	}
}

// ShouldClose reports whether a close was requested.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Size returns the current framebuffer size, tracking live resizes.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Clear clears the color and depth buffers.
func (w *Window) Clear() {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers presents the rendered frame.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// SetTitle updates the window title.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
