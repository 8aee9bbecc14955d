package monotime

import (
	"testing"
	"time"
)

type counterTestCase struct {
	Counter   uint64
	Frequency uint64
	Output    time.Duration
}

var counterTests = []counterTestCase{
	{
		Counter:   15000000,
		Frequency: 10000000,
		Output:    1500 * time.Millisecond,
	},
	{
		Counter:   1,
		Frequency: 10000000,
		Output:    100 * time.Nanosecond,
	},
	// 1e9 * counter wraps uint64 past ~30 minutes at 10MHz
	{
		Counter:   10000000 * 60 * 60,
		Frequency: 10000000,
		Output:    time.Hour,
	},
	{
		Counter:   10000000*60*60*24*365 + 5000000,
		Frequency: 10000000,
		Output:    365*24*time.Hour + 500*time.Millisecond,
	},
	{
		Counter:   3579545 * 7200,
		Frequency: 3579545,
		Output:    2 * time.Hour,
	},
}

func TestCounterToDuration(t *testing.T) {
	for _, test := range counterTests {
		if res := counterToDuration(test.Counter, test.Frequency); res != test.Output {
			t.Errorf("failed on input (%d, %d), returned %v but expected %v", test.Counter, test.Frequency, res, test.Output)
		}
	}
}

func TestNowIsMonotonic(t *testing.T) {
	a := Now()
	time.Sleep(time.Millisecond)
	if b := Now(); b < a {
		t.Errorf("clock went backwards: %v then %v", a, b)
	}
}
