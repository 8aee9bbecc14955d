package lessonconf

import "testing"

func TestDefaultIsValid(t *testing.T) {
	options := Default()
	if err := options.Validate(); err != nil {
		t.Fatalf("default options should be valid: %v", err)
	}
	if options.Width/options.TileSize != 16 || options.Height/options.TileSize != 12 {
		t.Errorf("expected a 16x12 tile grid, got %dx%d", options.Width/options.TileSize, options.Height/options.TileSize)
	}
}

type validateTestCase struct {
	Name   string
	Modify func(options *Options)
}

var invalidTests = []validateTestCase{
	{
		Name:   "zero width",
		Modify: func(options *Options) { options.Width = 0 },
	},
	{
		Name:   "negative height",
		Modify: func(options *Options) { options.Height = -480 },
	},
	{
		Name:   "zero tile size",
		Modify: func(options *Options) { options.TileSize = 0 },
	},
	{
		Name:   "negative frame limit",
		Modify: func(options *Options) { options.FrameLimit = -1 },
	},
	{
		Name:   "zero tps",
		Modify: func(options *Options) { options.TPS = 0 },
	},
	{
		Name:   "missing foreground",
		Modify: func(options *Options) { options.ForegroundPath = "" },
	},
}

func TestValidateRejects(t *testing.T) {
	for _, test := range invalidTests {
		options := Default()
		test.Modify(&options)
		if err := options.Validate(); err == nil {
			t.Errorf("%s: expected error but got nil", test.Name)
		}
	}
}
