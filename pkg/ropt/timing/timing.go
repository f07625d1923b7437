package timing

import "time"

// Elapsed runs f exactly once and returns its result together with the
// wall-clock time the call took, measured on the monotonic clock.
func Elapsed[T any](f func() T) (T, time.Duration) {
	start := time.Now()
	v := f()
	return v, time.Since(start)
}
