package devwebserver

import (
	"path/filepath"
	"reflect"
	"testing"
)

type assetTestCase struct {
	Path   string
	Output bool
}

var assetTests = []assetTestCase{
	{Path: "background.png", Output: true},
	{Path: "image.PNG", Output: true},
	{Path: "textures/tile.webp", Output: true},
	{Path: "main.wasm", Output: false},
	{Path: "wasm_exec.js", Output: false},
	{Path: "", Output: false},
}

func TestIsAsset(t *testing.T) {
	for _, test := range assetTests {
		if res := isAsset(test.Path); res != test.Output {
			t.Errorf("failed on input %q, returned %v but expected %v", test.Path, res, test.Output)
		}
	}
}

func TestBuildArgs(t *testing.T) {
	args := buildArgs("out/main.wasm", Arguments{Tags: "headless", Package: "./cmd/lesson3"})
	expected := []string{"build", "-o", "out/main.wasm", "-tags", "headless", "./cmd/lesson3"}
	if !reflect.DeepEqual(args, expected) {
		t.Errorf("got %v but expected %v", args, expected)
	}
	args = buildArgs("out/main.wasm", Arguments{Package: "./cmd/lesson3"})
	expected = []string{"build", "-o", "out/main.wasm", "./cmd/lesson3"}
	if !reflect.DeepEqual(args, expected) {
		t.Errorf("got %v but expected %v", args, expected)
	}
}

func TestWasmExecCandidates(t *testing.T) {
	candidates := wasmExecCandidates("/usr/local/go")
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[1] != filepath.Join("/usr/local/go", "misc", "wasm", "wasm_exec.js") {
		t.Errorf("unexpected legacy candidate: %s", candidates[1])
	}
}
