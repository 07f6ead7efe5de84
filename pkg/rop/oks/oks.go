package oks

import (
	"iter"

	"github.com/ib-77/roperr/pkg/rop"
)

// Cursor is a forward sequence. Next returns false once it is exhausted.
type Cursor[T any] interface {
	Next() (T, bool)
}

// Cloner is a Cursor that can duplicate its position.
type Cloner[T any] interface {
	Cursor[T]
	Clone() Cursor[T]
}

// Adapter yields each element of its source as a successful result.
type Adapter[T any] struct {
	source Cursor[T]
}

func Wrap[T any](source Cursor[T]) *Adapter[T] {
	return &Adapter[T]{source: source}
}

func (a *Adapter[T]) Next() (rop.Result[T], bool) {
	v, ok := a.source.Next()
	if !ok {
		return rop.Result[T]{}, false
	}
	return rop.Success(v), true
}

// Clone returns an independent adapter positioned where a is. It reports
// false when the source cannot be cloned.
func (a *Adapter[T]) Clone() (*Adapter[T], bool) {
	c, ok := a.source.(Cloner[T])
	if !ok {
		return nil, false
	}
	return &Adapter[T]{source: c.Clone()}, true
}

// All consumes the adapter as an iter.Seq.
func (a *Adapter[T]) All() iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		for {
			r, ok := a.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// SliceCursor walks a slice without copying it.
type SliceCursor[T any] struct {
	values []T
	pos    int
}

func Slice[T any](values []T) *SliceCursor[T] {
	return &SliceCursor[T]{values: values}
}

func (s *SliceCursor[T]) Next() (T, bool) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

func (s *SliceCursor[T]) Clone() Cursor[T] {
	return &SliceCursor[T]{values: s.values, pos: s.pos}
}

// Seq lifts seq into successful results. The returned sequence can be ranged
// over again whenever seq can.
func Seq[T any](seq iter.Seq[T]) iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		for v := range seq {
			if !yield(rop.Success(v)) {
				return
			}
		}
	}
}
