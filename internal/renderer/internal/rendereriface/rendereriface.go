package rendereriface

import (
	"image"

	"github.com/pkg/errors"
)

// ErrTerminated is returned from Game.Update to stop the frame loop cleanly.
// RunGame implementations swallow it and return nil.
var ErrTerminated = errors.New("frame loop terminated")

type ImageOptions struct {
	X, Y           float32
	ScaleX, ScaleY float32
}

// Image is a texture resident on the graphics device
type Image interface {
	Size() (width, height int)
	Dispose()
}

// Screen is anything that can be drawn onto
type Screen interface {
	Clear()
	DrawImage(img Image, options ImageOptions)
}

// Canvas is an offscreen drawing surface that can also be drawn elsewhere
type Canvas interface {
	Image
	Screen
}

// Window is the on-screen display surface
type Window interface {
	Dispose()
}

type WindowOptions struct {
	Title         string
	X, Y          int
	Width, Height int
}

// Game interface was copy-pasted out of Ebiten
type Game interface {
	Update() error
	Draw(screen Screen)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

type App interface {
	SetRunnableOnUnfocused(v bool)
	SetMaxTPS(tps int)
	NewWindow(options WindowOptions) (Window, error)
	NewCanvas(width, height int, vsync bool) (Canvas, error)
	NewImageFromImage(img image.Image) (Image, error)
	RunGame(game Game) error
}
