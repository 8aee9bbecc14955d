//go:build !headless
// +build !headless

package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/rendereriface"
)

var _ rendereriface.App = new(App)

type App struct {
	window *Window
}

type ebitenGameAndScreen struct {
	rendereriface.Game
	screenDriver Image
}

func (game *ebitenGameAndScreen) Draw(screen *ebiten.Image) {
	game.screenDriver.img = screen
	game.Game.Draw(&game.screenDriver)
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	ebiten.SetRunnableOnUnfocused(v)
}

func (app *App) SetMaxTPS(tps int) {
	ebiten.SetMaxTPS(tps)
}

// NewWindow configures the single Ebiten window. The window itself is opened
// by RunGame and closed when RunGame returns.
func (app *App) NewWindow(options rendereriface.WindowOptions) (rendereriface.Window, error) {
	if app.window != nil {
		return nil, errors.New("window already created")
	}
	if options.Width <= 0 || options.Height <= 0 {
		return nil, errors.Errorf("invalid window size %dx%d", options.Width, options.Height)
	}
	ebiten.SetWindowTitle(options.Title)
	ebiten.SetWindowSize(options.Width, options.Height)
	ebiten.SetWindowPosition(options.X, options.Y)
	app.window = &Window{app: app}
	return app.window, nil
}

func (app *App) NewCanvas(width, height int, vsync bool) (rendereriface.Canvas, error) {
	if app.window == nil {
		return nil, errors.New("canvas requires a window")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid canvas size %dx%d", width, height)
	}
	ebiten.SetVsyncEnabled(vsync)
	return &Image{img: ebiten.NewImage(width, height)}, nil
}

func (app *App) NewImageFromImage(img image.Image) (rendereriface.Image, error) {
	if img.Bounds().Empty() {
		return nil, errors.New("cannot upload empty image")
	}
	return &Image{img: ebiten.NewImageFromImage(img)}, nil
}

func (app *App) RunGame(game rendereriface.Game) error {
	gameWrapper := ebitenGameAndScreen{}
	gameWrapper.Game = game
	if err := ebiten.RunGame(&gameWrapper); err != nil && !errors.Is(err, rendereriface.ErrTerminated) {
		return err
	}
	return nil
}

type Window struct {
	app *App
}

func (window *Window) Dispose() {
	// note: Ebiten owns the native window, this just frees the slot
	// so a later NewWindow call is allowed.
	if window.app != nil && window.app.window == window {
		window.app.window = nil
	}
}

// Image wraps an Ebiten image, it's used for textures, canvases and the
// screen passed to Draw.
type Image struct {
	img *ebiten.Image
}

var _ rendereriface.Canvas = new(Image)

func (driver *Image) Size() (int, int) {
	return driver.img.Size()
}

func (driver *Image) Dispose() {
	driver.img.Dispose()
}

func (driver *Image) Clear() {
	driver.img.Clear()
}

func (driver *Image) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(options)
	driver.img.DrawImage(img.(*Image).img, op)
}

// geoM scales about the image origin and then translates, so X and Y are
// the destination's top-left corner whatever the scale.
func geoM(options rendereriface.ImageOptions) ebiten.GeoM {
	var m ebiten.GeoM
	if options.ScaleX != 0 && options.ScaleY != 0 {
		m.Scale(float64(options.ScaleX), float64(options.ScaleY))
	}
	m.Translate(float64(options.X), float64(options.Y))
	return m
}
