// Command holy-meshview renders a single textured mesh with a perspective
// camera. The scene is chosen at startup:
//
//	holy-meshview -scene triangle
//	holy-meshview -scene cube
//	holy-meshview -scene model -model models/cube.obj -texture models/checker.png
//
// Model files may be .obj, .gltf or .glb; -flip-uv inverts the texture V
// axis for assets authored with a bottom-left texture origin.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/toxichemicals/GO/holy-meshview/core"
	"github.com/toxichemicals/GO/holy-meshview/scene"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	windowTitle  = "holy-meshview"

	vertexShaderPath   = "shaders/texture_perspective.vert"
	fragmentShaderPath = "shaders/texturing.frag"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func parseFlags() scene.Config {
	sceneName := flag.String("scene", string(scene.Model), "scene to render: triangle, cube or model")
	modelPath := flag.String("model", "models/cube.obj", "model file for the model scene (.obj, .gltf, .glb)")
	texturePath := flag.String("texture", "models/checker.png", "texture image (.png or .jpg)")
	flipUV := flag.Bool("flip-uv", false, "invert the texture V axis at import time")
	flag.Parse()

	return scene.Config{
		Scene:       scene.Name(*sceneName),
		ModelPath:   *modelPath,
		TexturePath: *texturePath,
		FlipUV:      *flipUV,
	}
}

// run is the single boundary where any initialization failure becomes a
// process exit; everything below it returns errors.
func run(cfg scene.Config) error {
	def, err := scene.Build(cfg)
	if err != nil {
		return err
	}

	window, err := core.Open(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	program, err := core.LoadShaderProgram(vertexShaderPath, fragmentShaderPath)
	if err != nil {
		return err
	}
	defer program.Delete()
	program.Use()
	program.SetInt("tex", 0)

	mesh := core.UploadMesh(def.Mesh.Vertices, def.Mesh.Indices)
	defer mesh.Delete()

	rgba, err := core.LoadImageRGBA(def.TexturePath)
	if err != nil {
		return err
	}
	mesh.Texture = core.UploadTexture(rgba)
	defer mesh.Texture.Delete()

	log.Printf("Rendering %d triangles (scene %q). Starting main loop...", mesh.TriangleCount(), cfg.Scene)

	fpsFrames := 0
	fpsStart := time.Now()

	for !window.ShouldClose() {
		window.PollEvents()

		fpsFrames++
		if elapsed := time.Since(fpsStart); elapsed >= time.Second {
			fps := float64(fpsFrames) / elapsed.Seconds()
			window.SetTitle(fmt.Sprintf("%s | FPS: %.2f", windowTitle, fps))
			fpsFrames = 0
			fpsStart = time.Now()
		}

		// The transform triple is rebuilt from its source parameters every
		// frame, so the projection tracks the live window size.
		width, height := window.Size()
		program.SetMat4("view", scene.ViewMatrix())
		program.SetMat4("projection", scene.ProjectionMatrix(width, height))
		program.SetMat4("model", def.Object.ModelMatrix())

		window.Clear()
		mesh.Draw()
		window.SwapBuffers()
	}

	log.Println("Shutting down.")
	return nil
}
