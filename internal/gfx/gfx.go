// gfx owns the window, the drawing surface and every texture loaded onto it
package gfx

import (
	"github.com/pkg/errors"
	"github.com/silbinarywolf/tile-lesson/internal/asset"
	"github.com/silbinarywolf/tile-lesson/internal/lessonconf"
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
)

type Context struct {
	driver   renderer.Driver
	window   renderer.Window
	surface  *Surface
	textures []renderer.Image
	closed   bool
}

// Initialize creates the window and then the vsynced drawing surface.
// If the surface can't be created, the window is released before returning.
func Initialize(driver renderer.Driver, options lessonconf.Options) (*Context, error) {
	if err := options.Validate(); err != nil {
		return nil, &InitError{Op: "Init", Err: err}
	}
	driver.SetMaxTPS(options.TPS)
	window, err := driver.NewWindow(renderer.WindowOptions{
		Title:  options.Title,
		X:      options.X,
		Y:      options.Y,
		Width:  options.Width,
		Height: options.Height,
	})
	if err != nil {
		return nil, &InitError{Op: "CreateWindow", Err: errors.WithStack(err)}
	}
	canvas, err := driver.NewCanvas(options.Width, options.Height, options.VSync)
	if err != nil {
		window.Dispose()
		return nil, &InitError{Op: "CreateRenderer", Err: errors.WithStack(err)}
	}
	return &Context{
		driver:  driver,
		window:  window,
		surface: &Surface{canvas: canvas},
	}, nil
}

// LoadTexture loads an image file onto the context. The texture is released
// by Close.
func (ctx *Context) LoadTexture(path string) (renderer.Image, error) {
	if ctx.closed {
		return nil, &LoadError{Path: path, Err: errors.New("context is closed")}
	}
	tex, err := asset.Load(ctx.driver, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	ctx.textures = append(ctx.textures, tex)
	return tex, nil
}

func (ctx *Context) Surface() *Surface {
	return ctx.surface
}

// Closed reports whether Close has been called
func (ctx *Context) Closed() bool {
	return ctx.closed
}

// Close releases the textures in the order they were loaded, then the drawing
// surface, then the window. Calling it again does nothing.
func (ctx *Context) Close() {
	if ctx.closed {
		return
	}
	ctx.closed = true
	for _, tex := range ctx.textures {
		tex.Dispose()
	}
	ctx.textures = nil
	ctx.surface.canvas.Dispose()
	ctx.window.Dispose()
}

// Surface is the drawing surface frames are rendered into before being
// presented to the host screen.
type Surface struct {
	canvas   renderer.Canvas
	presents int
}

func (s *Surface) Clear() {
	s.canvas.Clear()
}

func (s *Surface) DrawImage(img renderer.Image, options renderer.ImageOptions) {
	s.canvas.DrawImage(img, options)
}

// Present makes the current contents the frame shown by the host
func (s *Surface) Present() {
	s.presents++
}

// Presents is the number of frames presented so far
func (s *Surface) Presents() int {
	return s.presents
}

// Canvas returns the image backing the surface
func (s *Surface) Canvas() renderer.Canvas {
	return s.canvas
}
