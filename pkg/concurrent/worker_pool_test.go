package concurrent

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsEveryJob(t *testing.T) {
	wp := NewWorkerPool[int, int](3, 10)
	wp.Start(context.Background(), func(ctx context.Context, job int) int {
		return job * job
	})

	for i := 1; i <= 10; i++ {
		require.NoError(t, wp.AddJob(context.Background(), i))
	}
	wp.Close()
	go wp.Wait()

	got := make([]int, 0, 10)
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)
	assert.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, got)
}

func TestWorkerPoolCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wp := NewWorkerPool[int, int](0, 0)
	wp.Start(ctx, func(ctx context.Context, job int) int {
		return job
	})

	err := wp.AddJob(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	wp.Close()
	wp.Close()
	wp.Wait()

	count := 0
	for range wp.CollectResults() {
		count++
	}
	assert.Equal(t, 0, count)
}
