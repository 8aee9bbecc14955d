package renderer

import (
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/rendereriface"
)

// ImageOptions are draw options for an image
type ImageOptions = rendereriface.ImageOptions

// Image is a texture loaded by the renderer
type Image = rendereriface.Image

type Screen = rendereriface.Screen

type Canvas = rendereriface.Canvas

type Window = rendereriface.Window

type WindowOptions = rendereriface.WindowOptions

type Game = rendereriface.Game

// Driver is the platform implementation of the renderer
type Driver = rendereriface.App

// ErrTerminated stops the frame loop without reporting a failure
var ErrTerminated = rendereriface.ErrTerminated
