package transaction

import (
	"context"
	"errors"
	"sync"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// ErrQueueClosed is returned when work is submitted after Shutdown
var ErrQueueClosed = errors.New("queue manager is shut down")

// JobFunc is a unit of work run by a queue worker
type JobFunc func(ctx context.Context) error

// queuedJob represents a job waiting on a queue
type queuedJob struct {
	ctx        context.Context
	run        JobFunc
	resultChan chan error
}

// QueueManager runs jobs on per-key worker queues. Each key, typically a gateway name,
// gets its own fixed set of workers so a slow gateway can't hold up the others.
type QueueManager struct {
	logger          coreport.Logger
	workersPerQueue int
	queueSize       int

	mu             sync.RWMutex // guards closed against sends on closed queues
	closed         bool
	queues         sync.Map // map[string]chan *queuedJob
	queueWaitGroup sync.WaitGroup
}

// NewQueueManager creates a new queue manager
func NewQueueManager(logger coreport.Logger, workersPerQueue, queueSize int) *QueueManager {
	if workersPerQueue < 1 {
		workersPerQueue = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &QueueManager{
		logger:          logger,
		workersPerQueue: workersPerQueue,
		queueSize:       queueSize,
	}
}

// Submit adds a job to the key's queue and returns a channel that receives its result
func (m *QueueManager) Submit(ctx context.Context, key string, run JobFunc) (<-chan error, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrQueueClosed
	}

	queue := m.queueFor(key)
	job := &queuedJob{
		ctx:        ctx,
		run:        run,
		resultChan: make(chan error, 1),
	}

	select {
	case queue <- job:
		return job.resultChan, nil
	case <-ctx.Done():
		m.logger.Warn("Context canceled while enqueueing job", map[string]any{
			"queue": key,
			"error": ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// queueFor gets or creates the queue of a key, starting its workers on creation
func (m *QueueManager) queueFor(key string) chan *queuedJob {
	if queue, ok := m.queues.Load(key); ok {
		return queue.(chan *queuedJob)
	}

	queueIface, loaded := m.queues.LoadOrStore(key, make(chan *queuedJob, m.queueSize))
	queue := queueIface.(chan *queuedJob)
	if !loaded {
		m.logger.Info("Starting queue workers", map[string]any{
			"queue":   key,
			"workers": m.workersPerQueue,
		})
		for w := 0; w < m.workersPerQueue; w++ {
			m.queueWaitGroup.Add(1)
			go m.work(key, queue)
		}
	}
	return queue
}

// work drains a queue until it is closed
func (m *QueueManager) work(key string, queue chan *queuedJob) {
	defer m.queueWaitGroup.Done()

	for job := range queue {
		if err := job.ctx.Err(); err != nil {
			job.resultChan <- err
			close(job.resultChan)
			continue
		}

		job.resultChan <- m.runJob(key, job)
		close(job.resultChan)
	}

	m.logger.Debug("Queue worker stopped", map[string]any{
		"queue": key,
	})
}

// runJob keeps one panicking job from taking the worker down with it
func (m *QueueManager) runJob(key string, job *queuedJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Queue job panicked", map[string]any{
				"queue": key,
				"panic": r,
			})
			err = errors.New("queue job panicked")
		}
	}()
	return job.run(job.ctx)
}

// Shutdown stops all worker goroutines after they finish queued jobs
func (m *QueueManager) Shutdown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true

	m.queues.Range(func(key, queueIface any) bool {
		if queue, ok := queueIface.(chan *queuedJob); ok {
			close(queue)
		}
		return true
	})
	m.mu.Unlock()

	m.queueWaitGroup.Wait()
	m.logger.Info("Queue manager shut down", nil)
}
