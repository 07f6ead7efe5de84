package oks

import (
	"context"

	"github.com/ib-77/roperr/pkg/rop"
)

// Handlers are optional callbacks for the channel forms.
type Handlers[T any] struct {
	// OnStartFail is called with all values when ctx is already done.
	OnStartFail func(ctx context.Context, values []T)
	// OnSuccess is called after each value is delivered.
	OnSuccess func(ctx context.Context, value T)
	// OnBreak is called with the undelivered values when ctx is done mid-way.
	OnBreak func(ctx context.Context, rest []T)
}

// FromValues sends each value as a successful result on the returned channel,
// which is closed when all values are sent or ctx is done.
func FromValues[T any](ctx context.Context, handlers Handlers[T], values ...T) <-chan rop.Result[T] {
	out := make(chan rop.Result[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case out <- rop.Success(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return out
}

func FromSlice[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	return FromValues(ctx, Handlers[T]{}, values...)
}

// Chan forwards every item of in as a successful result until in is closed or
// ctx is done.
func Chan[T any](ctx context.Context, in <-chan T) <-chan rop.Result[T] {
	out := make(chan rop.Result[T])

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- rop.Success(v):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Collect drains ch into a slice, stopping early when ctx is done.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
