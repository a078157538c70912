package either

// Either represents a value which is either a success value of type T or an
// error. By convention the error occupies the "left" side and the value the
// "right" side.
type Either[T any] struct {
	value T
	error error
}

// Success wraps a value in an Either which represents success.
func Success[T any](value T) Either[T] {
	return Either[T]{value: value}
}

// Error wraps an error in an Either; the value is the zero value of T.
func Error[T any](err error) Either[T] {
	var zero T
	return Either[T]{value: zero, error: err}
}

// ValueOrError returns the wrapped value and error.
func (m Either[T]) ValueOrError() (T, error) {
	return m.value, m.error
}
