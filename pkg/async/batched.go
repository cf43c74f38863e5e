package async

import (
	"context"
	"time"
)

// Batched groups results from ch into slices of up to size items. A partial
// batch is flushed once wait elapses without new input. The first error is
// forwarded and terminates the output channel.
func Batched[T any](ctx context.Context, ch <-chan Result[T], size int, wait time.Duration) <-chan Result[[]T] {
	out := make(chan Result[[]T], 1)

	go func() {
		defer close(out)

		var batch []T
		idle := time.NewTimer(wait)
		defer idle.Stop()

		flush := func() {
			if len(batch) == 0 {
				return
			}
			out <- NewResult(batch)
			batch = nil
		}

		for {
			select {
			case <-ctx.Done():
				flush()
				return

			case <-idle.C:
				flush()
				idle.Reset(wait)

			case res, ok := <-ch:
				if !ok {
					flush()
					return
				}

				item, err := res.Unpack()
				if err != nil {
					var none []T
					out <- NewResult(none, err)
					return
				}

				batch = append(batch, item)
				if len(batch) >= size {
					flush()
				}
				idle.Reset(wait)
			}
		}
	}()

	return out
}
