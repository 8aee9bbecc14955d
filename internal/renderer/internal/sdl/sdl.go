//go:build sdl
// +build sdl

// sdl renders through SDL2. The window, accelerated renderer and textures map
// one-to-one onto SDL objects, and presenting the canvas is SDL_RenderPresent.
package sdl

import (
	"image"
	"image/draw"
	"runtime"
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/rendereriface"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL must be driven from the thread that initialised it
	runtime.LockOSThread()
}

// Byte order of image.RGBA pixels read as little-endian uint32
const (
	rmask uint32 = 0xff << 0
	gmask uint32 = 0xff << 8
	bmask uint32 = 0xff << 16
	amask uint32 = 0xff << 24
)

const defaultTPS = 60

var _ rendereriface.App = new(App)

type App struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	canvas    *Canvas
	presenter presenter
	tps       int
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	// n/a, SDL keeps running when unfocused
}

func (app *App) SetMaxTPS(tps int) {
	app.tps = tps
}

func (app *App) NewWindow(options rendereriface.WindowOptions) (rendereriface.Window, error) {
	if app.window != nil {
		return nil, errors.New("window already created")
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "init video")
	}
	window, err := sdl.CreateWindow(options.Title, int32(options.X), int32(options.Y),
		int32(options.Width), int32(options.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	app.window = window
	return &Window{app: app}, nil
}

func (app *App) NewCanvas(width, height int, vsync bool) (rendereriface.Canvas, error) {
	if app.window == nil {
		return nil, errors.New("canvas requires a window")
	}
	if app.renderer != nil {
		return nil, errors.New("canvas already created")
	}
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(app.window, -1, flags)
	if err != nil {
		return nil, err
	}
	app.renderer = renderer
	app.canvas = &Canvas{app: app, width: width, height: height}
	app.presenter.canvas = app.canvas
	return app.canvas, nil
}

// NewImageFromImage uploads img as a static texture. Same approach as
// building a surface over the pixels and letting SDL convert it.
func (app *App) NewImageFromImage(img image.Image) (rendereriface.Image, error) {
	if app.renderer == nil {
		return nil, errors.New("textures require a canvas")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errors.New("cannot upload empty image")
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	}
	surface, err := sdl.CreateRGBSurfaceFrom(unsafe.Pointer(&rgba.Pix[0]),
		int32(bounds.Dx()), int32(bounds.Dy()), 32, rgba.Stride, rmask, gmask, bmask, amask)
	if err != nil {
		return nil, err
	}
	defer surface.Free()
	tex, err := app.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	return &Texture{tex: tex, width: bounds.Dx(), height: bounds.Dy()}, nil
}

// RunGame ticks the game at the configured rate and pumps SDL events in
// between. Ticks missed while the process was suspended are skipped rather
// than caught up. Closing the window ends the loop without an error.
func (app *App) RunGame(game rendereriface.Game) error {
	if app.renderer == nil {
		return errors.New("RunGame requires a window and canvas")
	}
	tps := app.tps
	if tps <= 0 {
		tps = defaultTPS
	}
	frameTime := time.Second / time.Duration(tps)

	t0 := time.Now()
	lastFrame := int64(-1)
	for {
		frame := int64(time.Since(t0) / frameTime)
		if frame == lastFrame {
			time.Sleep(time.Millisecond)
			continue
		}
		lastFrame = frame

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		if err := game.Update(); err != nil {
			if errors.Is(err, rendereriface.ErrTerminated) {
				return nil
			}
			return err
		}
		game.Draw(&app.presenter)
	}
}

type Window struct {
	app *App
}

// Dispose destroys the window and shuts SDL down
func (window *Window) Dispose() {
	app := window.app
	if app.window == nil {
		return
	}
	app.window.Destroy()
	app.window = nil
	sdl.Quit()
}

type Texture struct {
	tex           *sdl.Texture
	width, height int
}

func (tex *Texture) Size() (int, int) {
	return tex.width, tex.height
}

func (tex *Texture) Dispose() {
	if tex.tex == nil {
		return
	}
	tex.tex.Destroy()
	tex.tex = nil
}

// Canvas is the renderer's back buffer
type Canvas struct {
	app           *App
	width, height int
}

var _ rendereriface.Canvas = new(Canvas)

func (canvas *Canvas) Size() (int, int) {
	return canvas.width, canvas.height
}

func (canvas *Canvas) Dispose() {
	app := canvas.app
	if app.renderer == nil {
		return
	}
	app.renderer.Destroy()
	app.renderer = nil
}

func (canvas *Canvas) Clear() {
	canvas.app.renderer.Clear()
}

func (canvas *Canvas) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	tex, ok := img.(*Texture)
	if !ok || tex.tex == nil {
		// the back buffer can't be copied onto itself
		return
	}
	dst := dstRect(tex.width, tex.height, options)
	canvas.app.renderer.Copy(tex.tex, nil, &dst)
}

// presenter is the screen handed to Game.Draw. Drawing the canvas onto it
// presents the back buffer.
type presenter struct {
	canvas *Canvas
}

func (p *presenter) Clear() {}

func (p *presenter) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	if img != rendereriface.Image(p.canvas) || p.canvas.app.renderer == nil {
		return
	}
	p.canvas.app.renderer.Present()
}

// dstRect is where a width x height texture lands after options are applied,
// scale first and then translate.
func dstRect(width, height int, options rendereriface.ImageOptions) sdl.Rect {
	w, h := float32(width), float32(height)
	if options.ScaleX != 0 && options.ScaleY != 0 {
		w *= options.ScaleX
		h *= options.ScaleY
	}
	return sdl.Rect{
		X: int32(options.X),
		Y: int32(options.Y),
		W: int32(w),
		H: int32(h),
	}
}
