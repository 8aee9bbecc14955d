package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/headless"
	"golang.org/x/image/bmp"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0xff, A: 0xff})
		}
	}
	return img
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(100, 50)); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "image.png", buf.Bytes())

	app := headless.New()
	tex, err := Load(app, path)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if w, h := tex.Size(); w != 100 || h != 50 {
		t.Errorf("got size %dx%d, expected 100x50", w, h)
	}
	if tex.(*headless.Image).Source == nil {
		t.Errorf("expected decoded source to be uploaded")
	}
}

func TestLoadBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage(40, 40)); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "background.bmp", buf.Bytes())

	tex, err := Load(headless.New(), path)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if w, h := tex.Size(); w != 40 || h != 40 {
		t.Errorf("got size %dx%d, expected 40x40", w, h)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	if _, err := Load(headless.New(), path); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.png", nil)
	if _, err := Load(headless.New(), path); !errors.Is(err, ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := writeFile(t, "corrupt.png", []byte("definitely not a png"))
	if _, err := Load(headless.New(), path); !errors.Is(err, image.ErrFormat) {
		t.Errorf("expected image.ErrFormat, got %v", err)
	}
}
