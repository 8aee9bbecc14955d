package devwebserver

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

const (
	packagePath = "github.com/silbinarywolf/tile-lesson/cmd/dev-server/internal/devwebserver"
)

var flagSet = flag.NewFlagSet("serve", flag.ExitOnError)

// Serve will serve a wasm build of the lesson to the web browser.
// This function will block until exit.
func Serve(argv []string) {
	tags := flagSet.String("tags", "", "a list of build tags to consider satisfied during the build")
	port := flagSet.String("port", ":8080", "address to listen on")
	pkg := flagSet.String("pkg", "./cmd/lesson3", "package to build as main.wasm")
	if err := flagSet.Parse(argv); err != nil {
		log.Fatal(err)
	}

	// Setup
	args := Arguments{}
	args.Port = *port
	args.Directory = "."
	args.Tags = *tags
	args.Package = *pkg
	arguments = args

	// Get default resources
	var err error
	wasmJSPath, err = getDefaultWasmJSPath(args.Directory)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	indexHTMLPath, err = getDefaultIndexHTMLPath(args.Directory)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Start server
	fmt.Printf("Listening on http://localhost%s...\n", args.Port)
	http.HandleFunc("/", handle)
	if err := http.ListenAndServe(args.Port, nil); err != nil {
		log.Fatal(err)
	}
}

var wasmJSPath string

var indexHTMLPath string

var (
	arguments    Arguments
	tmpOutputDir = ""
)

type Arguments struct {
	Port      string // :8080
	Directory string // .
	Tags      string // ie. "headless"
	Package   string // ./cmd/lesson3
}

// assetExtensions are served straight from the working directory so the
// browser build can fetch its images
var assetExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
}

func isAsset(upath string) bool {
	return assetExtensions[strings.ToLower(filepath.Ext(upath))]
}

func handle(w http.ResponseWriter, r *http.Request) {
	output, err := ensureTmpOutputDir()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dir := arguments.Directory

	upath := strings.TrimPrefix(r.URL.Path, "/")
	fpath := filepath.Base(upath)
	if strings.HasSuffix(r.URL.Path, "/") {
		fpath = "index.html"
	}

	if isAsset(upath) {
		log.Print("serving asset: " + upath)
		http.ServeFile(w, r, filepath.Join(dir, filepath.Clean("/"+upath)))
		return
	}

	switch fpath {
	case "index.html":
		log.Print("serving index.html: " + indexHTMLPath)
		http.ServeFile(w, r, indexHTMLPath)
	case "wasm_exec.js":
		log.Print("serving wasm_exec.js: " + wasmJSPath)
		http.ServeFile(w, r, wasmJSPath)
	case "main.wasm":
		outputPath := filepath.Join(output, "main.wasm")
		args := buildArgs(outputPath, arguments)
		log.Print("go ", strings.Join(args, " "))
		cmdBuild := exec.Command(gobin(), args...)
		cmdBuild.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
		cmdBuild.Dir = dir
		out, err := cmdBuild.CombinedOutput()
		if err != nil {
			log.Print(err)
			log.Print(string(out))
			http.Error(w, string(out), http.StatusInternalServerError)
			return
		}
		if len(out) > 0 {
			log.Print(string(out))
		}

		f, err := os.Open(outputPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeContent(w, r, "main.wasm", time.Now(), f)
	default:
		http.NotFound(w, r)
	}
}

func buildArgs(outputPath string, arguments Arguments) []string {
	args := []string{"build", "-o", outputPath}
	if arguments.Tags != "" {
		args = append(args, "-tags", arguments.Tags)
	}
	return append(args, arguments.Package)
}

func gobin() string {
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

func ensureTmpOutputDir() (string, error) {
	if tmpOutputDir != "" {
		return tmpOutputDir, nil
	}

	tmp, err := ioutil.TempDir("", "")
	if err != nil {
		return "", errors.Wrap(err, "unable to create build output directory")
	}
	tmpOutputDir = tmp
	return tmpOutputDir, nil
}

var (
	cmdDir string
	cmdErr error
)

func computeCmdSourceDir(gameDir string) (string, error) {
	if cmdDir == "" && cmdErr == nil {
		cmdDir, cmdErr = computeCmdSourceDirUncached(gameDir)
	}
	return cmdDir, cmdErr
}

func computeCmdSourceDirUncached(gameDir string) (string, error) {
	currentDir, err := filepath.Abs(gameDir)
	if err != nil {
		return "", errors.WithStack(err)
	}
	cfg := &packages.Config{
		Dir: currentDir,
	}
	pkgs, err := packages.Load(cfg, packagePath)
	if err != nil {
		return "", errors.Wrapf(err, "unable to load package: %s", packagePath)
	}
	if len(pkgs) == 0 {
		return "", errors.New("Unable to find package: " + packagePath)
	}
	pkg := pkgs[0]
	if len(pkg.GoFiles) == 0 {
		return "", errors.New("Cannot find *.go files in:" + currentDir)
	}
	dir := filepath.Dir(pkg.GoFiles[0])
	return dir, nil
}

// wasmExecCandidates are the places Go distributions keep wasm_exec.js,
// newer releases moved it from misc/wasm to lib/wasm.
func wasmExecCandidates(goroot string) []string {
	return []string{
		filepath.Join(goroot, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(goroot, "misc", "wasm", "wasm_exec.js"),
	}
}

func getDefaultWasmJSPath(gameDir string) (string, error) {
	const baseName = "wasm_exec.js"
	for _, path := range wasmExecCandidates(runtime.GOROOT()) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	// Look for a copy next to the dev server
	dir, err := computeCmdSourceDir(gameDir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, baseName)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(err, "unable to find %s in GOROOT or %s", baseName, dir)
	}
	return path, nil
}

func getDefaultIndexHTMLPath(gameDir string) (string, error) {
	const baseName = "index.html"
	dir, err := computeCmdSourceDir(gameDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName), nil
}
