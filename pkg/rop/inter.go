package rop

import "time"

// Outcome is the read surface of Result, for code that accepts any result
// type without depending on the concrete struct.
type Outcome[T any] interface {
	// Result returns the value of a successful result
	Result() T
	// Err returns the error of a failed or cancelled result
	Err() error
	IsSuccess() bool
	// IsFailure is true for failed and cancelled results
	IsFailure() bool
	IsCancel() bool
	// Unpack returns the result as a (value, error) pair
	Unpack() (T, error)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var _ Outcome[int] = Result[int]{}
