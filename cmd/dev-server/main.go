// dev-server builds the lesson for the browser on request and serves it
// with the images from the working directory.
//
//	go run ./cmd/dev-server
package main

import (
	"os"

	"github.com/silbinarywolf/tile-lesson/cmd/dev-server/internal/devwebserver"
)

func main() {
	devwebserver.Serve(os.Args[1:])
}
