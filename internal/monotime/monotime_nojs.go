//go:build !js && !windows
// +build !js,!windows

package monotime

import (
	"time"
)

var start = time.Now()

func now() time.Duration {
	// time.Since reads the monotonic clock reading stored in start
	return time.Since(start)
}
