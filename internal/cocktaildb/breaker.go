package cocktaildb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/mwhite7112/woodpantry-drinks/internal/metrics"
)

var _ Source = (*BreakerClient)(nil)

// BreakerConfig configures NewBreakerClient.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the
	// circuit.
	MaxFailures uint32
	// OpenTimeout is how long the circuit stays open before a probe request
	// is let through.
	OpenTimeout time.Duration
}

// BreakerClient wraps a Source with a circuit breaker. While the circuit is
// open calls fail immediately with gobreaker.ErrOpenState; nothing is retried.
type BreakerClient struct {
	source Source
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewBreakerClient wraps source. Context cancellation by the caller does not
// count as an upstream failure.
func NewBreakerClient(source Source, cfg BreakerConfig) *BreakerClient {
	name := "cocktaildb"
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &BreakerClient{source: source, cb: cb, name: name}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func (b *BreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	}
	return result, err
}

func (b *BreakerClient) Search(ctx context.Context, name string) ([]Drink, error) {
	result, err := b.execute(func() (any, error) {
		return b.source.Search(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	drinks, _ := result.([]Drink)
	return drinks, nil
}

func (b *BreakerClient) Random(ctx context.Context) (Drink, error) {
	result, err := b.execute(func() (any, error) {
		return b.source.Random(ctx)
	})
	if err != nil {
		return nil, err
	}
	drink, _ := result.(Drink)
	return drink, nil
}

func (b *BreakerClient) FilterByAlcoholic(ctx context.Context, filter AlcoholicFilter) ([]DrinkSummary, error) {
	result, err := b.execute(func() (any, error) {
		return b.source.FilterByAlcoholic(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	drinks, _ := result.([]DrinkSummary)
	return drinks, nil
}

// State reports the current circuit state.
func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}
