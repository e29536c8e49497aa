package patrol

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Option configures CountLoopObstructions via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*SearchOptions)

// SearchOptions holds the parameters of a candidate search.
type SearchOptions struct {
	// Workers is the number of candidates evaluated concurrently.
	// 1 runs the search sequentially.
	Workers int

	// OnStart is called once, before any walk, with the number of candidates.
	OnStart func(candidates int)

	// OnCandidate is called once per evaluated candidate with its verdict.
	// With Workers > 1 it is called from several goroutines at once.
	OnCandidate func(obstruction Coordinate, looped bool)

	// Logger receives debug-level progress records.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns SearchOptions with:
//   - sequential evaluation (Workers == 1)
//   - no-op OnStart and OnCandidate hooks
//   - a no-op logger
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Workers:     1,
		OnStart:     func(int) {},
		OnCandidate: func(Coordinate, bool) {},
		Logger:      zap.NewNop(),
	}
}

// WithWorkers sets the size of the worker pool.
//
//	n > 0:  evaluate up to n candidates at once
//	n == 0: use runtime.GOMAXPROCS(0) workers
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *SearchOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithOnStart registers a callback run once the candidate list is known.
func WithOnStart(fn func(candidates int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnStart = fn
		}
	}
}

// WithOnCandidate registers a callback run after each candidate walk.
func WithOnCandidate(fn func(obstruction Coordinate, looped bool)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// WithLogger sets the logger used for progress records.
func WithLogger(l *zap.Logger) Option {
	return func(o *SearchOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}
