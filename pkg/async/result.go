package async

type Result[T any] struct {
	Value T
	Err   error
}

func NewResult[T any](value T, errs ...error) Result[T] {
	var err error
	if len(errs) > 0 {
		err = errs[0]
	}
	return Result[T]{Value: value, Err: err}
}

func (r Result[T]) Unpack() (T, error) {
	return r.Value, r.Err
}

func UnpackAll[T any](results []Result[T]) ([]T, error) {
	unpacked := make([]T, len(results))
	for i, result := range results {
		item, err := result.Unpack()
		if err != nil {
			return nil, err
		}
		unpacked[i] = item
	}
	return unpacked, nil
}
