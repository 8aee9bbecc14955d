//go:build sdl && !headless
// +build sdl,!headless

package driver

import (
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/sdl"
)

func newDriver() renderer.Driver {
	return new(sdl.App)
}
