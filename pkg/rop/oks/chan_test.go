package oks

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/roperr/pkg/rop"
)

func TestFromSlice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := Collect(ctx, FromSlice(ctx, []int{0, 1, 2, 3}))

	require.Len(t, res, 4)
	for i, r := range res {
		assert.True(t, r.IsSuccess())
		assert.Equal(t, i, r.Result())
	}
}

func TestFromValues_Handlers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var delivered atomic.Int32
	handlers := Handlers[string]{
		OnSuccess: func(ctx context.Context, value string) { delivered.Add(1) },
	}

	res := Collect(ctx, FromValues(ctx, handlers, "a", "b"))

	assert.Len(t, res, 2)
	assert.Equal(t, int32(2), delivered.Load())
}

func TestFromValues_StartFail(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []int
	done := make(chan struct{})
	handlers := Handlers[int]{
		OnStartFail: func(ctx context.Context, values []int) {
			got = values
			close(done)
		},
	}

	ch := FromValues(ctx, handlers, 1, 2, 3)
	<-done
	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestFromValues_Break(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	rest := make(chan []int, 1)
	handlers := Handlers[int]{
		OnBreak: func(ctx context.Context, r []int) { rest <- r },
	}

	ch := FromValues(ctx, handlers, 1, 2, 3)
	first := <-ch
	require.Equal(t, 1, first.Result())
	cancel()

	assert.Equal(t, []int{2, 3}, <-rest)
	for range ch {
	}
}

func TestChan(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := make(chan int)
	go func() {
		defer close(in)
		for i := 0; i < 3; i++ {
			in <- i
		}
	}()

	res := Collect(ctx, Chan(ctx, in))
	want := []int{0, 1, 2}
	require.Len(t, res, len(want))
	for i, r := range res {
		assert.Equal(t, rop.Success(want[i]).Result(), r.Result())
		assert.True(t, r.IsSuccess())
	}
}

func TestChan_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan int)
	_, ok := <-Chan(ctx, in)
	assert.False(t, ok)
}

func TestCollect_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, Collect(ctx, make(chan int)))
}
