package lessonconf

import "github.com/pkg/errors"

type Options struct {
	// Title, X, Y, Width and Height describe the window. Width and Height
	// are also the size of the drawing surface the frames are rendered to.
	Title         string
	X, Y          int
	Width, Height int
	// TileSize is the edge length of each background tile
	TileSize int
	// FrameLimit is how many frames are rendered before shutting down
	FrameLimit int
	// TPS is how many frame ticks are scheduled per second
	TPS int
	// VSync requests a vsynced drawing surface
	VSync bool
	// BackgroundPath is tiled across the screen, ForegroundPath is drawn
	// centered on top. Both are relative to the working directory.
	BackgroundPath string
	ForegroundPath string
}

// Default returns the options for Lesson 3
func Default() Options {
	return Options{
		Title:          "Lesson 3",
		X:              100,
		Y:              100,
		Width:          640,
		Height:         480,
		TileSize:       40,
		FrameLimit:     3,
		TPS:            1,
		VSync:          true,
		BackgroundPath: "./background.png",
		ForegroundPath: "./image.png",
	}
}

func (options Options) Validate() error {
	if options.Width <= 0 || options.Height <= 0 {
		return errors.Errorf("invalid screen size %dx%d", options.Width, options.Height)
	}
	if options.TileSize <= 0 {
		return errors.Errorf("invalid tile size %d", options.TileSize)
	}
	if options.FrameLimit < 0 {
		return errors.Errorf("invalid frame limit %d", options.FrameLimit)
	}
	if options.TPS <= 0 {
		return errors.Errorf("invalid ticks per second %d", options.TPS)
	}
	if options.BackgroundPath == "" || options.ForegroundPath == "" {
		return errors.New("background and foreground paths are required")
	}
	return nil
}
