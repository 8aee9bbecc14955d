package monotime

import "time"

// Now returns a monotonic clock reading, more precise for Web and Windows targets.
//
// Only differences between two readings are meaningful.
func Now() time.Duration {
	return now()
}

// counterToDuration converts a tick counter running at freq ticks per second.
// Whole seconds and the remainder are converted separately so ctr*1e9 never
// overflows uint64.
func counterToDuration(ctr, freq uint64) time.Duration {
	whole := ctr / freq
	rem := ctr % freq
	return time.Duration(whole)*time.Second + time.Duration(rem*uint64(time.Second)/freq)
}
