// Lesson 3 tiles a background image across a 640x480 window and draws a
// second image centered on top, for three frames, then exits.
//
// It expects ./background.png and ./image.png in the working directory.
// Build with "-tags sdl" to render through SDL2 instead of Ebiten. Tests
// here link the platform driver, run them with "go test -tags headless".
package main

import (
	"io"
	"log"
	"os"

	"github.com/silbinarywolf/tile-lesson/internal/app"
	"github.com/silbinarywolf/tile-lesson/internal/gfx"
	"github.com/silbinarywolf/tile-lesson/internal/lessonconf"
	"github.com/silbinarywolf/tile-lesson/internal/renderer"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/driver"
)

func main() {
	os.Exit(run(os.Stdout, driver.New(), lessonconf.Default()))
}

// run returns the process exit code. Failures are reported on out as
// "<context> error: <cause>".
func run(out io.Writer, driver renderer.Driver, options lessonconf.Options) int {
	if err := app.Run(driver, options); err != nil {
		logger := log.New(out, "", 0)
		context, cause := gfx.Describe(err)
		logger.Printf("%s error: %v", context, cause)
		return 1
	}
	return 0
}
