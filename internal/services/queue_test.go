package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskQueuePreservesOrder(t *testing.T) {
	queue := NewTaskQueue(16)

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		queue.Submit(func(ctx context.Context) { got = append(got, i) })
	}

	require.NoError(t, queue.Close(time.Second))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestTaskQueueCloseFlushesPendingWork(t *testing.T) {
	queue := NewTaskQueue(16)

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		queue.Submit(func(ctx context.Context) {
			time.Sleep(5 * time.Millisecond)
			done.Add(1)
		})
	}

	require.NoError(t, queue.Close(time.Second))
	assert.Equal(t, int32(5), done.Load())
}

func TestTaskQueueSubmitAfterCloseIsDropped(t *testing.T) {
	queue := NewTaskQueue(4)
	require.NoError(t, queue.Close(time.Second))

	// Must not panic on the closed channel
	queue.Submit(func(ctx context.Context) { t.Error("task ran after close") })
}
