package async

import "context"

type Yielder[T any] func(T, error)

// Generator runs gen on its own goroutine and exposes everything it
// yields as a channel. The channel is closed when gen returns; a final
// non-nil error is delivered as the last Result.
func Generator[T any](ctx context.Context, gen func(context.Context, Yielder[T]) error) <-chan Result[T] {
	ch := make(chan Result[T], 1)

	y := func(t T, err error) {
		select {
		case <-ctx.Done():
		case ch <- NewResult(t, err):
		}
	}

	go func() {
		defer close(ch)

		if err := gen(ctx, y); err != nil {
			var zero T
			select {
			case <-ctx.Done():
			case ch <- NewResult(zero, err):
			}
		}
	}()

	return ch
}
