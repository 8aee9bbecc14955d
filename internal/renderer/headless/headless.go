// headless is the headless mode driver so we can run the frame loop without
// a GPU or window. It records every clear, draw and dispose so tests can
// inspect what a frame would have put on screen.
package headless

import (
	"image"
	"time"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/tile-lesson/internal/monotime"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/internal/rendereriface"
)

var _ rendereriface.App = new(App)

const defaultTPS = 60

type App struct {
	// WindowErr and CanvasErr make NewWindow / NewCanvas fail, this simulates
	// platforms that can't give us a window or accelerated renderer.
	WindowErr error
	CanvasErr error
	// RunErr is returned by RunGame before any tick happens, this simulates
	// the video subsystem failing to start.
	RunErr error
	// MaxTicks stops RunGame with an error once exceeded, 0 means no limit.
	MaxTicks int

	// Disposed records every Dispose call in order, including repeats.
	Disposed []Disposable
	// Uploaded records every texture created by NewImageFromImage
	Uploaded []*Image
	// Ticks is the number of times Update was called by RunGame
	Ticks int
	// Screen is what the last Draw call drew onto
	Screen *Image

	tps    int
	window *Window
}

// Disposable is a resource created by the headless driver
type Disposable interface {
	Dispose()
}

func New() *App {
	return &App{}
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	// n/a for headless
}

func (app *App) SetMaxTPS(tps int) {
	app.tps = tps
}

func (app *App) NewWindow(options rendereriface.WindowOptions) (rendereriface.Window, error) {
	if app.WindowErr != nil {
		return nil, app.WindowErr
	}
	if app.window != nil {
		return nil, errors.New("window already created")
	}
	app.window = &Window{app: app, Options: options}
	return app.window, nil
}

func (app *App) NewCanvas(width, height int, vsync bool) (rendereriface.Canvas, error) {
	if app.CanvasErr != nil {
		return nil, app.CanvasErr
	}
	if app.window == nil {
		return nil, errors.New("canvas requires a window")
	}
	return &Image{app: app, width: width, height: height}, nil
}

func (app *App) NewImageFromImage(img image.Image) (rendereriface.Image, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errors.New("cannot upload empty image")
	}
	tex := &Image{app: app, width: bounds.Dx(), height: bounds.Dy(), Source: img}
	app.Uploaded = append(app.Uploaded, tex)
	return tex, nil
}

// Window returns the window created by NewWindow, or nil.
func (app *App) Window() *Window {
	return app.window
}

// RunGame calls Update at the configured ticks per second, followed by Draw,
// until Update returns an error.
func (app *App) RunGame(game rendereriface.Game) error {
	if app.RunErr != nil {
		return app.RunErr
	}
	tps := app.tps
	if tps <= 0 {
		tps = defaultTPS
	}
	step := time.Second / time.Duration(tps)
	width, height := game.Layout(0, 0)
	app.Screen = &Image{app: app, width: width, height: height}

	// Start with a full step banked so the first tick fires immediately,
	// the same as Ebiten.
	last := monotime.Now()
	accumulated := step
	for {
		now := monotime.Now()
		accumulated += now - last
		last = now
		for accumulated >= step {
			accumulated -= step
			if app.MaxTicks > 0 && app.Ticks >= app.MaxTicks {
				return errors.Errorf("exceeded %d ticks", app.MaxTicks)
			}
			app.Ticks++
			if err := game.Update(); err != nil {
				if errors.Is(err, rendereriface.ErrTerminated) {
					return nil
				}
				return err
			}
			game.Draw(app.Screen)
		}
		time.Sleep(step - accumulated)
	}
}

type Window struct {
	app     *App
	Options rendereriface.WindowOptions
}

func (window *Window) Dispose() {
	window.app.Disposed = append(window.app.Disposed, window)
}

// Op is a single recorded operation on an Image
type Op struct {
	Clear   bool
	Src     *Image
	Options rendereriface.ImageOptions
}

// Image is a texture, canvas or screen
type Image struct {
	app    *App
	width  int
	height int
	// Source is the decoded image this texture was uploaded from, if any
	Source image.Image
	// Ops are all clears and draws targeting this image
	Ops []Op
}

var _ rendereriface.Canvas = new(Image)

func (img *Image) Size() (int, int) {
	return img.width, img.height
}

func (img *Image) Dispose() {
	img.app.Disposed = append(img.app.Disposed, img)
}

func (img *Image) Clear() {
	img.Ops = append(img.Ops, Op{Clear: true})
}

func (img *Image) DrawImage(src rendereriface.Image, options rendereriface.ImageOptions) {
	img.Ops = append(img.Ops, Op{
		Src:     src.(*Image),
		Options: options,
	})
}

// Draws returns only the draw operations, skipping clears
func (img *Image) Draws() []Op {
	var r []Op
	for _, op := range img.Ops {
		if !op.Clear {
			r = append(r, op)
		}
	}
	return r
}
