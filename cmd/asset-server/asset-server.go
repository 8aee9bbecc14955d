package main

import (
	"flag"
	"log"
	"mime"
	"net/http"
)

// main will start serving all files in the "dist" folder on the server
// on port 8080. Copy main.wasm, wasm_exec.js, index.html and the lesson's
// images into it.
func main() {
	dir := flag.String("dir", "./dist", "directory to serve")
	port := flag.String("port", ":8080", "address to listen on")
	flag.Parse()

	// older systems don't map .wasm, browsers refuse streaming compile without it
	if err := mime.AddExtensionType(".wasm", "application/wasm"); err != nil {
		log.Fatal(err)
	}
	fs := http.FileServer(http.Dir(*dir))
	http.Handle("/", fs)

	log.Printf("Listening on %s, serving %s...", *port, *dir)
	err := http.ListenAndServe(*port, nil)
	if err != nil {
		log.Fatal(err)
	}
}
