//go:build headless
// +build headless

package driver

import (
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/headless"
)

func newDriver() renderer.Driver {
	return headless.New()
}
