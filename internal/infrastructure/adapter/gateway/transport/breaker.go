package transport

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// BreakerConfig tunes every breaker in a set
type BreakerConfig struct {
	MaxRequests         uint32        // Probes allowed while half-open
	Interval            time.Duration // Closed-state counter reset period; 0 never resets
	Timeout             time.Duration // Open period before probing
	ConsecutiveFailures uint32        // Failures that trip the breaker
}

// DefaultBreakerConfig returns the defaults used when nothing is configured
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// StateRecorder receives breaker transitions
type StateRecorder interface {
	BreakerStateChanged(name string, state int, tripped bool)
}

// BreakerStatus is a point-in-time view of one breaker
type BreakerStatus struct {
	Name                string     `json:"name"`
	State               string     `json:"state"`
	OpenedAt            *time.Time `json:"openedAt,omitempty"`
	ResetAt             *time.Time `json:"resetAt,omitempty"` // When an open breaker starts probing
	ConsecutiveFailures uint32     `json:"consecutiveFailures"`
	Requests            uint32     `json:"requests"`
}

// BreakerSet owns one circuit breaker per external dependency
type BreakerSet struct {
	mu           sync.Mutex
	cfg          BreakerConfig
	breakers     map[string]*gobreaker.CircuitBreaker
	openedAt     map[string]time.Time
	recorder     StateRecorder
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewBreakerSet creates an empty set. recorder may be nil.
func NewBreakerSet(cfg BreakerConfig, recorder StateRecorder, logger coreport.Logger, timeProvider coreport.TimeProvider) *BreakerSet {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultBreakerConfig().Timeout
	}
	return &BreakerSet{
		cfg:          cfg,
		breakers:     make(map[string]*gobreaker.CircuitBreaker),
		openedAt:     make(map[string]time.Time),
		recorder:     recorder,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Get returns the breaker for name, creating it on first use
func (s *BreakerSet) Get(name string) *gobreaker.CircuitBreaker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cb, ok := s.breakers[name]; ok {
		return cb
	}

	threshold := s.cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = DefaultBreakerConfig().ConsecutiveFailures
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: s.cfg.MaxRequests,
		Interval:    s.cfg.Interval,
		Timeout:     s.cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful:  isBreakerSuccess,
		OnStateChange: s.onStateChange,
	})
	s.breakers[name] = cb
	if s.recorder != nil {
		s.recorder.BreakerStateChanged(name, int(gobreaker.StateClosed), false)
	}
	return cb
}

// Execute runs fn through the named breaker. An open breaker fails fast with ErrGatewayUnavailable.
func (s *BreakerSet) Execute(name string, fn func() error) error {
	_, err := s.Get(name).Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(errs.ErrGatewayUnavailable, err)
	}
	return err
}

// Snapshot lists every breaker sorted by name
func (s *BreakerSet) Snapshot() []BreakerStatus {
	s.mu.Lock()
	breakers := make(map[string]*gobreaker.CircuitBreaker, len(s.breakers))
	openedAt := make(map[string]time.Time, len(s.openedAt))
	for name, cb := range s.breakers {
		breakers[name] = cb
	}
	for name, at := range s.openedAt {
		openedAt[name] = at
	}
	s.mu.Unlock()

	// Breaker locks are taken only after s.mu is released; onStateChange locks in the other order
	statuses := make([]BreakerStatus, 0, len(breakers))
	for name, cb := range breakers {
		state := cb.State()
		counts := cb.Counts()
		status := BreakerStatus{
			Name:                name,
			State:               state.String(),
			ConsecutiveFailures: counts.ConsecutiveFailures,
			Requests:            counts.Requests,
		}
		if opened, ok := openedAt[name]; ok && state != gobreaker.StateClosed {
			resetAt := opened.Add(s.cfg.Timeout)
			status.OpenedAt = &opened
			status.ResetAt = &resetAt
		}
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}

// onStateChange runs under the breaker's own lock, never under s.mu
func (s *BreakerSet) onStateChange(name string, from, to gobreaker.State) {
	tripped := to == gobreaker.StateOpen
	if tripped {
		now := s.timeProvider.Now()
		s.mu.Lock()
		s.openedAt[name] = now
		s.mu.Unlock()
	}

	if s.recorder != nil {
		s.recorder.BreakerStateChanged(name, int(to), tripped)
	}

	fields := map[string]any{"breaker": name, "from": from.String(), "to": to.String()}
	if tripped {
		s.logger.Warn("Circuit breaker opened", fields)
		return
	}
	s.logger.Info("Circuit breaker state changed", fields)
}

// isBreakerSuccess keeps business rejections from tripping the breaker
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var rejected *RejectedError
	return errors.As(err, &rejected)
}
