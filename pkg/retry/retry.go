package retry

import (
	"time"
)

const window = time.Second

type fn func() error
type shouldRetry func(err error, attempt int) bool

// WrapWithRetry wraps the given function and retries it while shouldRetry
// returns true. Gives up when more than rate errors land inside a one
// second window, so a tight crash loop exits instead of spinning.
func WrapWithRetry(f fn, shouldRetry shouldRetry, rate float32) func() error {
	size := int(rate + 1)
	var errorTimestamps []time.Time

	return func() error {
		attempt := 0

		for {
			err := f()
			if err == nil {
				return nil
			}

			attempt++

			if !shouldRetry(err, attempt) {
				return err
			}

			errorTimestamps = append(errorTimestamps, time.Now())
			if len(errorTimestamps) > size {
				errorTimestamps = errorTimestamps[1:]
			}
			if len(errorTimestamps) < size {
				continue
			}

			first := errorTimestamps[0]
			last := errorTimestamps[len(errorTimestamps)-1]

			currErrorRate := float32(len(errorTimestamps)) / float32(window.Seconds())
			if last.Sub(first) <= window && currErrorRate >= rate {
				return err
			}
		}
	}
}
