//go:build !headless && !sdl
// +build !headless,!sdl

package driver

import (
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/ebiten"
)

func newDriver() renderer.Driver {
	return new(ebiten.App)
}
