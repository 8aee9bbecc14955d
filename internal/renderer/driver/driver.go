// driver picks the platform renderer by build tag:
//
//	(default)      Ebiten, for desktop and browser builds
//	-tags sdl      SDL2 through go-sdl2
//	-tags headless no window, used by servers and tests
//
// Only this package links the platform libraries, so packages that just
// draw through internal/renderer build and test without cgo or display
// headers.
package driver

import "github.com/silbinarywolf/tile-lesson/internal/renderer"

// New returns the driver selected by build tags
func New() renderer.Driver {
	return newDriver()
}
