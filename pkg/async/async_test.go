package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"socialite/pkg/async"
)

var errTest = errors.New("test error")

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("unpack", func(t *testing.T) {
		t.Parallel()

		value, err := async.NewResult(42).Unpack()
		require.NoError(t, err)
		require.Equal(t, 42, value)

		_, err = async.NewResult(0, errTest).Unpack()
		require.ErrorIs(t, err, errTest)
	})

	t.Run("unpack all stops at the first error", func(t *testing.T) {
		t.Parallel()

		values, err := async.UnpackAll([]async.Result[int]{
			async.NewResult(1),
			async.NewResult(2),
		})
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, values)

		_, err = async.UnpackAll([]async.Result[int]{
			async.NewResult(1),
			async.NewResult(0, errTest),
		})
		require.ErrorIs(t, err, errTest)
	})
}

func TestGenerator(t *testing.T) {
	t.Parallel()

	t.Run("yields values then closes", func(t *testing.T) {
		t.Parallel()

		ch := async.Generator(t.Context(), func(_ context.Context, yield async.Yielder[int]) error {
			yield(1, nil)
			yield(2, nil)
			return nil
		})

		values, err := async.UnpackAll(lo.ChannelToSlice(ch))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, values)
	})

	t.Run("final error is the last result", func(t *testing.T) {
		t.Parallel()

		ch := async.Generator(t.Context(), func(_ context.Context, yield async.Yielder[int]) error {
			yield(1, nil)
			return errTest
		})

		results := lo.ChannelToSlice(ch)
		require.Len(t, results, 2)
		require.NoError(t, results[0].Err)
		require.ErrorIs(t, results[1].Err, errTest)
	})
}

func TestJob(t *testing.T) {
	t.Parallel()

	t.Run("wait returns the result", func(t *testing.T) {
		t.Parallel()

		job := async.Job(func(_ context.Context) (int, error) {
			return 42, nil
		})

		value, err := job.Wait()
		require.NoError(t, err)
		require.Equal(t, 42, value)
		require.NoError(t, job.Error())
	})

	t.Run("stop cancels the job context", func(t *testing.T) {
		t.Parallel()

		job := async.Job(func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})

		_, err := job.StopWait()
		require.ErrorIs(t, err, context.Canceled)
		require.ErrorIs(t, job.Error(), context.Canceled)
	})
}

func TestBatched(t *testing.T) {
	t.Parallel()

	t.Run("full batches", func(t *testing.T) {
		t.Parallel()

		in := make(chan async.Result[int])
		go func() {
			defer close(in)
			for i := range 6 {
				in <- async.NewResult(i)
			}
		}()

		out := async.Batched(t.Context(), in, 3, time.Minute)

		first, err := (<-out).Unpack()
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2}, first)

		second, err := (<-out).Unpack()
		require.NoError(t, err)
		require.Equal(t, []int{3, 4, 5}, second)

		_, ok := <-out
		require.False(t, ok)
	})

	t.Run("partial batch flushes on timeout", func(t *testing.T) {
		t.Parallel()

		in := make(chan async.Result[int])
		go func() {
			in <- async.NewResult(1)
			in <- async.NewResult(2)
		}()

		out := async.Batched(t.Context(), in, 10, 50*time.Millisecond)

		batch, err := (<-out).Unpack()
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, batch)
	})

	t.Run("error terminates the stream", func(t *testing.T) {
		t.Parallel()

		in := make(chan async.Result[int], 2)
		in <- async.NewResult(1)
		in <- async.NewResult(0, errTest)

		out := async.Batched(t.Context(), in, 10, time.Minute)

		_, err := (<-out).Unpack()
		require.ErrorIs(t, err, errTest)

		_, ok := <-out
		require.False(t, ok)
	})
}
