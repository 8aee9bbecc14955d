package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/tile-lesson/internal/lessonconf"
	"github.com/silbinarywolf/tile-lesson/internal/renderer/headless"
)

func testOptions(t *testing.T) lessonconf.Options {
	t.Helper()
	dir := t.TempDir()
	options := lessonconf.Default()
	options.TPS = 1000
	options.BackgroundPath = filepath.Join(dir, "background.png")
	options.ForegroundPath = filepath.Join(dir, "image.png")
	for _, path := range []string{options.BackgroundPath, options.ForegroundPath} {
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 40))); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return options
}

func TestRunSuccess(t *testing.T) {
	var out bytes.Buffer
	driver := headless.New()
	driver.MaxTicks = 100
	if code := run(&out, driver, testOptions(t)); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestRunFailures(t *testing.T) {
	type testCase struct {
		Name   string
		Setup  func(driver *headless.App, options *lessonconf.Options)
		Output string
	}
	tests := []testCase{
		{
			Name:   "window",
			Setup:  func(driver *headless.App, options *lessonconf.Options) { driver.WindowErr = errors.New("no display") },
			Output: "CreateWindow error: no display\n",
		},
		{
			Name:   "renderer",
			Setup:  func(driver *headless.App, options *lessonconf.Options) { driver.CanvasErr = errors.New("no renderer") },
			Output: "CreateRenderer error: no renderer\n",
		},
		{
			Name:   "video",
			Setup:  func(driver *headless.App, options *lessonconf.Options) { driver.RunErr = errors.New("no video") },
			Output: "Init error: no video\n",
		},
		{
			Name: "background",
			Setup: func(driver *headless.App, options *lessonconf.Options) {
				options.BackgroundPath = filepath.Join(filepath.Dir(options.BackgroundPath), "missing.png")
			},
			Output: "LoadTexture error: open ",
		},
	}
	for _, test := range tests {
		var out bytes.Buffer
		driver := headless.New()
		driver.MaxTicks = 100
		options := testOptions(t)
		test.Setup(driver, &options)
		if code := run(&out, driver, options); code != 1 {
			t.Errorf("%s: expected exit code 1, got %d", test.Name, code)
		}
		if !strings.HasPrefix(out.String(), test.Output) {
			t.Errorf("%s: got output %q, expected it to start with %q", test.Name, out.String(), test.Output)
		}
		if strings.Count(out.String(), "\n") != 1 {
			t.Errorf("%s: expected a single diagnostic line, got %q", test.Name, out.String())
		}
	}
}
