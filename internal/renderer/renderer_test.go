package renderer

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// drawingPackages only draw through this package, they must build and test
// without linking a platform library.
var drawingPackages = []string{
	".",
	"../compose",
	"../frame",
	"../gfx",
	"../app",
	"../asset",
	"./headless",
}

var platformImports = []string{
	"github.com/hajimehoshi/ebiten",
	"github.com/veandco/go-sdl2",
	"github.com/silbinarywolf/tile-lesson/internal/renderer/driver",
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/ebiten",
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/sdl",
}

func TestDrawingPackagesAvoidPlatformImports(t *testing.T) {
	for _, dir := range drawingPackages {
		paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) == 0 {
			t.Fatalf("no go files found in %s", dir)
		}
		fset := token.NewFileSet()
		for _, path := range paths {
			file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatal(err)
			}
			for _, spec := range file.Imports {
				importPath, err := strconv.Unquote(spec.Path.Value)
				if err != nil {
					t.Fatal(err)
				}
				for _, platform := range platformImports {
					if strings.HasPrefix(importPath, platform) {
						t.Errorf("%s imports %s", path, importPath)
					}
				}
			}
		}
	}
}
