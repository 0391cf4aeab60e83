package transaction

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runQueued submits a job and waits for its result
func runQueued(ctx context.Context, qm *QueueManager, key string, run JobFunc) error {
	resultChan, err := qm.Submit(ctx, key, run)
	if err != nil {
		return err
	}
	return <-resultChan
}

func TestQueueManager_Submit(t *testing.T) {
	t.Run("Returns job result", func(t *testing.T) {
		qm := NewQueueManager(quietLogger(t), 1, 10)
		defer qm.Shutdown()

		err := runQueued(context.Background(), qm, "mobileMoney", func(ctx context.Context) error { return nil })
		require.NoError(t, err)

		expectedErr := errors.New("status query failed")
		err = runQueued(context.Background(), qm, "mobileMoney", func(ctx context.Context) error { return expectedErr })
		assert.Equal(t, expectedErr, err)
	})

	t.Run("Single worker keeps submission order", func(t *testing.T) {
		qm := NewQueueManager(quietLogger(t), 1, 100)
		defer qm.Shutdown()

		var mu sync.Mutex
		var order []int
		var results []<-chan error

		for i := 0; i < 20; i++ {
			i := i
			resultChan, err := qm.Submit(context.Background(), "card", func(ctx context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
			results = append(results, resultChan)
		}
		for _, resultChan := range results {
			require.NoError(t, <-resultChan)
		}

		for i := range order {
			assert.Equal(t, i, order[i])
		}
	})

	t.Run("Slow queue does not block another key", func(t *testing.T) {
		qm := NewQueueManager(quietLogger(t), 1, 10)
		defer qm.Shutdown()

		release := make(chan struct{})
		slow, err := qm.Submit(context.Background(), "mobileMoney", func(ctx context.Context) error {
			<-release
			return nil
		})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			done <- runQueued(context.Background(), qm, "card", func(ctx context.Context) error { return nil })
		}()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("card queue was blocked by mobileMoney queue")
		}

		close(release)
		require.NoError(t, <-slow)
	})

	t.Run("Panicking job is reported as error", func(t *testing.T) {
		qm := NewQueueManager(quietLogger(t), 1, 10)
		defer qm.Shutdown()

		err := runQueued(context.Background(), qm, "card", func(ctx context.Context) error { panic("boom") })
		assert.Error(t, err)

		// The worker survives
		err = runQueued(context.Background(), qm, "card", func(ctx context.Context) error { return nil })
		assert.NoError(t, err)
	})

	t.Run("Workers run concurrently within a key", func(t *testing.T) {
		qm := NewQueueManager(quietLogger(t), 4, 10)
		defer qm.Shutdown()

		var running, peak int32
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = runQueued(context.Background(), qm, "card", func(ctx context.Context) error {
					n := atomic.AddInt32(&running, 1)
					for {
						p := atomic.LoadInt32(&peak)
						if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
							break
						}
					}
					time.Sleep(50 * time.Millisecond)
					atomic.AddInt32(&running, -1)
					return nil
				})
			}()
		}
		wg.Wait()

		assert.Greater(t, atomic.LoadInt32(&peak), int32(1))
	})
}

func TestQueueManager_Shutdown(t *testing.T) {
	qm := NewQueueManager(quietLogger(t), 2, 10)

	var completed int32
	var results []<-chan error
	for i := 0; i < 5; i++ {
		resultChan, err := qm.Submit(context.Background(), "mobileMoney", func(ctx context.Context) error {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		})
		require.NoError(t, err)
		results = append(results, resultChan)
	}

	qm.Shutdown()

	assert.Equal(t, int32(5), atomic.LoadInt32(&completed))
	for _, resultChan := range results {
		assert.NoError(t, <-resultChan)
	}

	_, err := qm.Submit(context.Background(), "mobileMoney", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrQueueClosed)

	// Second shutdown is a no-op
	qm.Shutdown()
}

func TestQueueManager_CanceledContext(t *testing.T) {
	qm := NewQueueManager(quietLogger(t), 1, 1)
	defer qm.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int32
	err := runQueued(ctx, qm, "card", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
}
