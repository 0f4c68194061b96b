package resilience

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/kbukum/fnkit/logger"
	"github.com/kbukum/fnkit/result"
)

// Errors returned by Breaker.Execute when the call was rejected.
var (
	ErrCircuitOpen     = gobreaker.ErrOpenState
	ErrTooManyRequests = gobreaker.ErrTooManyRequests
)

// BreakerConfig configures a circuit breaker guarding operations whose error
// payload has type E.
type BreakerConfig[E any] struct {
	// Name identifies this circuit breaker in logs.
	Name string
	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures uint32
	// Timeout is how long to wait before transitioning from open to half-open.
	Timeout time.Duration
	// HalfOpenMaxCalls is the number of calls allowed in half-open state.
	HalfOpenMaxCalls uint32
	// Interval clears the counts while closed. Zero never clears them.
	Interval time.Duration
	// IsFailure decides whether an Err payload counts against the circuit.
	// Nil counts every Err.
	IsFailure func(E) bool
	// Logger receives state transitions. Nil uses the logger registered for
	// logger.ComponentBreaker.
	Logger *logger.Logger
}

// DefaultBreakerConfig returns sensible defaults.
func DefaultBreakerConfig[E any](name string) BreakerConfig[E] {
	return BreakerConfig[E]{
		Name:             name,
		MaxFailures:      5,
		Timeout:          30 * time.Second,
		HalfOpenMaxCalls: 1,
	}
}

// Breaker is a circuit breaker over operations returning result.Result.
// Err results count as failures; once MaxFailures consecutive failures are
// seen, calls are rejected until Timeout elapses.
type Breaker[T, E any] struct {
	cb *gobreaker.CircuitBreaker
}

// failure carries an Err payload through gobreaker, which only understands
// Go errors.
type failure[E any] struct {
	payload E
}

func (failure[E]) Error() string { return "result is Err" }

// NewBreaker creates a circuit breaker.
func NewBreaker[T, E any](cfg BreakerConfig[E]) *Breaker[T, E] {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.HalfOpenMaxCalls == 0 {
		cfg.HalfOpenMaxCalls = 1
	}
	log := logger.Get(logger.ComponentBreaker)
	if cfg.Logger != nil {
		log = cfg.Logger.WithComponent(logger.ComponentBreaker)
	}

	return &Breaker[T, E]{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        cfg.Name,
			MaxRequests: cfg.HalfOpenMaxCalls,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.MaxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				fields := logger.Fields("breaker", name, "from", from.String(), "to", to.String())
				switch to {
				case gobreaker.StateOpen:
					log.Error("circuit has been opened", fields)
				case gobreaker.StateHalfOpen:
					log.Warn("circuit is half open", fields)
				case gobreaker.StateClosed:
					log.Info("circuit has been closed", fields)
				}
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				var f failure[E]
				if errors.As(err, &f) && cfg.IsFailure != nil {
					return !cfg.IsFailure(f.payload)
				}
				return false
			},
		}),
	}
}

// Name returns the breaker name.
func (b *Breaker[T, E]) Name() string { return b.cb.Name() }

// State returns the current state name: "closed", "half-open" or "open".
func (b *Breaker[T, E]) State() string { return b.cb.State().String() }

// Execute runs fn through the breaker and returns its Result. The error is
// ErrCircuitOpen or ErrTooManyRequests when fn was not called.
func (b *Breaker[T, E]) Execute(fn func() result.Result[T, E]) (result.Result[T, E], error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		r := fn()
		if payload, failed := r.Err().Get(); failed {
			return r, failure[E]{payload: payload}
		}
		return r, nil
	})
	var f failure[E]
	if err != nil && !errors.As(err, &f) {
		return result.Result[T, E]{}, err
	}
	return v.(result.Result[T, E]), nil
}
