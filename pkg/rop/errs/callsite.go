package errs

import (
	"runtime"

	"github.com/ib-77/roperr/pkg/rop"
)

// caller reports the location of the function that called the exported helper.
// Every exported helper below must call it directly.
func caller() (string, uint) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown", 0
	}
	return file, uint(line)
}

// New returns a leaf Error with message, stamped with the caller's location.
func New(message string) *Error {
	file, line := caller()
	return FromMessage(message, file, line)
}

// Wrap stamps err with the caller's location. A nil err, including a typed
// nil pointer, becomes a nil error.
//
//	if err := store.Save(ctx, v); err != nil {
//		return errs.Wrap(err)
//	}
func Wrap(err error) error {
	if rop.IsNil(err) {
		return nil
	}
	file, line := caller()
	return FromCause(err, file, line)
}

// Try passes v through when err is nil and otherwise wraps err with the
// caller's location. It is meant to take a call's results directly:
//
//	n, err := errs.Try(strconv.Atoi(s))
//	if err != nil {
//		return 0, err
//	}
func Try[T any](v T, err error) (T, error) {
	if rop.IsNil(err) {
		return v, nil
	}
	file, line := caller()
	var zero T
	return zero, FromCause(err, file, line)
}

// TryResult re-stamps a failed or cancelled result with the caller's location.
// Successful results pass through untouched.
func TryResult[T any](r rop.Result[T]) rop.Result[T] {
	if !r.IsFailure() {
		return r
	}
	file, line := caller()
	err := FromCause(r.Err(), file, line)
	if r.IsCancel() || rop.IsCancellationError(r.Err()) {
		return rop.Cancel[T](err)
	}
	return rop.Fail[T](err)
}

// Fail returns the zero value of T and a leaf Error with message, stamped with
// the caller's location.
//
//	return errs.Fail[int]("this function always returns an error")
func Fail[T any](message string) (T, error) {
	file, line := caller()
	var zero T
	return zero, FromMessage(message, file, line)
}

// FailResult is Fail for the result alias.
func FailResult[T any](message string) rop.Result[T] {
	file, line := caller()
	return rop.Fail[T](FromMessage(message, file, line))
}

// Opt returns v when ok is true and otherwise a leaf Error with message,
// stamped with the caller's location.
//
//	top, ok := stack.Pop()
//	top, err := errs.Opt(top, ok, "stack underflow")
func Opt[T any](v T, ok bool, message string) (T, error) {
	if ok {
		return v, nil
	}
	file, line := caller()
	var zero T
	return zero, FromMessage(message, file, line)
}

// OptRef returns p when it is not nil and otherwise a leaf Error with message,
// stamped with the caller's location.
func OptRef[T any](p *T, message string) (*T, error) {
	if p != nil {
		return p, nil
	}
	file, line := caller()
	return nil, FromMessage(message, file, line)
}
