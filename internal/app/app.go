package app

import (
	"github.com/silbinarywolf/tile-lesson/internal/frame"
	"github.com/silbinarywolf/tile-lesson/internal/gfx"
	"github.com/silbinarywolf/tile-lesson/internal/lessonconf"
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
)

type App struct {
	options lessonconf.Options
	ctx     *gfx.Context
	frames  *frame.Driver
}

var _ renderer.Game = new(App)

// Update is called by the host once per tick
func (app *App) Update() error {
	if app.frames.Step() {
		return renderer.ErrTerminated
	}
	return nil
}

// Draw shows the last presented frame. The host may call this many times
// between ticks.
func (app *App) Draw(screen renderer.Screen) {
	surface := app.ctx.Surface()
	if app.ctx.Closed() || surface.Presents() == 0 {
		return
	}
	screen.DrawImage(surface.Canvas(), renderer.ImageOptions{})
}

func (app *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return app.options.Width, app.options.Height
}

// Frames is the number of frames rendered
func (app *App) Frames() int {
	return app.frames.Frames()
}

// Run creates the window and drawing surface, loads both images and then
// hands control to the host loop until the last frame has been shown.
//
// Every resource is released before Run returns, on success or failure.
func Run(driver renderer.Driver, options lessonconf.Options) error {
	_, err := run(driver, options)
	return err
}

func run(driver renderer.Driver, options lessonconf.Options) (*App, error) {
	ctx, err := gfx.Initialize(driver, options)
	if err != nil {
		return nil, err
	}
	defer ctx.Close()

	background, err := ctx.LoadTexture(options.BackgroundPath)
	if err != nil {
		return nil, err
	}
	foreground, err := ctx.LoadTexture(options.ForegroundPath)
	if err != nil {
		return nil, err
	}

	app := &App{
		options: options,
		ctx:     ctx,
	}
	app.frames = frame.New(frame.Config{
		ScreenWidth:  options.Width,
		ScreenHeight: options.Height,
		TileSize:     options.TileSize,
		FrameLimit:   options.FrameLimit,
	}, ctx.Surface(), background, foreground, ctx.Close)

	driver.SetRunnableOnUnfocused(true)
	if err := driver.RunGame(app); err != nil {
		return app, &gfx.InitError{Op: "Init", Err: err}
	}
	return app, nil
}
