package core

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImageRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 1, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	rgba, err := LoadImageRGBA(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := rgba.Rect.Size(); got.X != 2 || got.Y != 2 {
		t.Fatalf("decoded size: have %v, want 2x2", got)
	}
	if c := rgba.RGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("pixel (0,0) = %v, want opaque red", c)
	}
	if c := rgba.RGBAAt(1, 1); c.B != 255 || c.A != 255 {
		t.Errorf("pixel (1,1) = %v, want opaque blue", c)
	}
}

func TestLoadImageRGBAMissingFile(t *testing.T) {
	if _, err := LoadImageRGBA("does/not/exist.png"); err == nil {
		t.Fatal("expected an error for a missing image file")
	}
}

func TestLoadImageRGBANotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImageRGBA(path); err == nil {
		t.Fatal("expected a decode error")
	}
}
