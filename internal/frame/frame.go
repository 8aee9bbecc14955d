package frame

import (
	"github.com/silbinarywolf/tile-lesson/internal/compose"
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
)

// Surface is drawn to each frame and then presented
type Surface interface {
	renderer.Screen
	Present()
}

type Config struct {
	ScreenWidth, ScreenHeight int
	TileSize                  int
	// FrameLimit is how many frames are rendered before Step releases
	// everything and reports done.
	FrameLimit int
}

// Driver renders a fixed number of frames, one per Step, then releases its
// resources on the following Step.
type Driver struct {
	config     Config
	surface    Surface
	background renderer.Image
	foreground renderer.Image
	release    func()

	frames int
	done   bool
}

// New returns a driver that draws background tiled with foreground centered
// on top. release is called exactly once, on the terminal step.
func New(config Config, surface Surface, background, foreground renderer.Image, release func()) *Driver {
	return &Driver{
		config:     config,
		surface:    surface,
		background: background,
		foreground: foreground,
		release:    release,
	}
}

// Step runs a single tick and reports whether the driver is done. Once done,
// further calls do nothing.
func (d *Driver) Step() bool {
	if d.done {
		return true
	}
	if d.frames >= d.config.FrameLimit {
		d.done = true
		if d.release != nil {
			d.release()
		}
		return true
	}
	screenWidth, screenHeight := d.config.ScreenWidth, d.config.ScreenHeight
	d.surface.Clear()
	compose.Tile(d.surface, d.background, screenWidth, screenHeight, d.config.TileSize)
	compose.DrawCentered(d.surface, d.foreground, screenWidth, screenHeight)
	d.surface.Present()
	d.frames++
	return false
}

// Frames is the number of frames rendered so far
func (d *Driver) Frames() int {
	return d.frames
}

func (d *Driver) Done() bool {
	return d.done
}
