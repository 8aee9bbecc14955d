// compose draws the lesson's layers onto a screen
package compose

import (
	"image"

	"github.com/silbinarywolf/tile-lesson/internal/renderer"
)

// TileRects returns the cells covering a screen, left-to-right then
// top-to-bottom. Any strip left over on the right or bottom edge is not covered.
func TileRects(screenWidth, screenHeight, tileSize int) []image.Rectangle {
	if tileSize <= 0 {
		return nil
	}
	tilesX := screenWidth / tileSize
	tilesY := screenHeight / tileSize
	if tilesX <= 0 || tilesY <= 0 {
		return nil
	}
	rects := make([]image.Rectangle, 0, tilesX*tilesY)
	for i := 0; i < tilesX*tilesY; i++ {
		x := (i % tilesX) * tileSize
		y := (i / tilesX) * tileSize
		rects = append(rects, image.Rect(x, y, x+tileSize, y+tileSize))
	}
	return rects
}

// Tile copies the whole texture into every cell of the screen
func Tile(screen renderer.Screen, tex renderer.Image, screenWidth, screenHeight, tileSize int) {
	for _, rect := range TileRects(screenWidth, screenHeight, tileSize) {
		drawRect(screen, tex, rect)
	}
}

// drawRect stretches the full texture into dst. A texture the same size as
// dst is drawn unscaled.
func drawRect(screen renderer.Screen, tex renderer.Image, dst image.Rectangle) {
	w, h := tex.Size()
	options := renderer.ImageOptions{
		X: float32(dst.Min.X),
		Y: float32(dst.Min.Y),
	}
	if w > 0 && h > 0 && (w != dst.Dx() || h != dst.Dy()) {
		options.ScaleX = float32(dst.Dx()) / float32(w)
		options.ScaleY = float32(dst.Dy()) / float32(h)
	}
	screen.DrawImage(tex, options)
}
