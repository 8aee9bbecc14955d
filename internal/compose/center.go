package compose

import (
	"image"

	"github.com/silbinarywolf/tile-lesson/internal/renderer"
)

// CenterOrigin returns the top-left corner that centers a width x height
// image on the screen. Halves are truncated toward zero.
func CenterOrigin(screenWidth, screenHeight, width, height int) image.Point {
	return image.Pt(screenWidth/2-width/2, screenHeight/2-height/2)
}

// DrawCentered draws the texture at its natural size in the middle of the screen
func DrawCentered(screen renderer.Screen, tex renderer.Image, screenWidth, screenHeight int) {
	w, h := tex.Size()
	origin := CenterOrigin(screenWidth, screenHeight, w, h)
	drawRect(screen, tex, image.Rect(origin.X, origin.Y, origin.X+w, origin.Y+h))
}
