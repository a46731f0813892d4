// pkg/input/tracking.go
package input

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-asterdodge/pkg/gesture"
	"github.com/opd-ai/go-asterdodge/pkg/logging"
)

// TrackingConfig tunes the circuit breaker around a gesture provider.
type TrackingConfig struct {
	MaxRequests         int
	Interval            time.Duration
	Timeout             time.Duration
	MaxConsecutiveFails int
}

// DefaultTrackingConfig returns breaker settings suited to a 60 Hz
// poll loop: trip after half a second of consecutive failures, probe
// again after one second.
func DefaultTrackingConfig() TrackingConfig {
	return TrackingConfig{
		MaxRequests:         3,
		Interval:            10 * time.Second,
		Timeout:             time.Second,
		MaxConsecutiveFails: 30,
	}
}

// TrackingService wraps a gesture provider with a circuit breaker so a
// flaky input source degrades to the untracked result instead of
// stalling the tick loop. While the circuit is open the scene simply
// sees no tracked body, which pauses the ship.
type TrackingService struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
	logger   *logging.Logger
}

// NewTrackingService builds the service around the given provider.
func NewTrackingService(provider Provider, cfg TrackingConfig) *TrackingService {
	logger := logging.NewLogger()

	settings := gobreaker.Settings{
		Name:        "asterdodge-gesture-input",
		MaxRequests: uint32(cfg.MaxRequests),
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.MaxConsecutiveFails)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(context.Background(), "gesture input circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &TrackingService{
		provider: provider,
		breaker:  gobreaker.NewCircuitBreaker(settings),
		logger:   logger,
	}
}

// Next polls the provider through the breaker and classifies the
// detection into a steering result. Any failure, including an open
// circuit, degrades to the untracked result.
func (ts *TrackingService) Next(ctx context.Context) gesture.Result {
	raw, err := ts.breaker.Execute(func() (interface{}, error) {
		return ts.provider.Poll()
	})
	if err != nil {
		ts.logger.Debug(ctx, "gesture poll failed, degrading to untracked",
			"error", err.Error(),
			"state", ts.breaker.State().String(),
		)
		return gesture.Untracked()
	}
	return gesture.Classify(raw.(gesture.Detection))
}

// State returns the breaker state, for health reporting.
func (ts *TrackingService) State() gobreaker.State {
	return ts.breaker.State()
}

// Counts returns the breaker's success/failure counters.
func (ts *TrackingService) Counts() gobreaker.Counts {
	return ts.breaker.Counts()
}
