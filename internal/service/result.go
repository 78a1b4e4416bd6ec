package service

// Result is the outcome of a service operation that can be refused on
// business grounds. Exactly one of Value or Rejected is meaningful:
// Rejected is non-empty when the operation was refused, in which case Value
// is the zero value. Hard failures are reported through the accompanying
// error return instead.
type Result[T any] struct {
	Value    T
	Rejected string
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Reject builds a Result carrying a business rejection reason.
func Reject[T any](reason string) Result[T] {
	return Result[T]{Rejected: reason}
}

// IsRejected reports whether the operation was refused.
func (r Result[T]) IsRejected() bool {
	return r.Rejected != ""
}
