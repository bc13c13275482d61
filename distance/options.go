// Package distance: functional configuration for the kernels.
//
// Design goals:
//   - Deterministic behavior: no global state; options only change how rows
//     are scheduled or which checks run, never the arithmetic.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error); callers' data errors are returned, never panicked.
package distance

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers evaluates rows on the calling goroutine.
	DefaultWorkers = 1

	// DefaultCheckCovariance leaves Sinv unvalidated beyond its shape.
	DefaultCheckCovariance = false

	// DefaultCovarianceTolerance is the symmetry/PSD slack used by
	// WithCovarianceCheck when callers have no better estimate.
	DefaultCovarianceTolerance = 1e-9

	// minRowsPerBlock keeps parallel blocks large enough to amortize scheduling.
	minRowsPerBlock = 64

	// cancelCheckEvery is how many rows a worker evaluates between context polls.
	cancelCheckEvery = 256
)

const panicCovarianceTolerance = "distance: WithCovarianceCheck: tol must be finite and >= 0"

// Option mutates internal options. Later options win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers  int     // >= 1 after gatherOptions
	checkCov bool    // DefaultCheckCovariance
	covTol   float64 // >= 0
	logger   *Logger // never nil after gatherOptions
}

// WithWorkers sets how many goroutines evaluate rows.
// n <= 0 selects runtime.GOMAXPROCS(0). Results do not depend on n.
func WithWorkers(n int) Option {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return func(o *Options) {
		o.workers = n
	}
}

// WithCovarianceCheck validates Sinv before any row is evaluated:
// |Sinv[i,j]-Sinv[j,i]| <= tol for all i<j, and the smallest eigenvalue
// must be >= -tol. Violations return ErrInvalidCovariance.
//
// Panics if tol is NaN, ±Inf or negative.
func WithCovarianceCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicCovarianceTolerance)
	}

	return func(o *Options) {
		o.checkCov = true
		o.covTol = tol
	}
}

// WithLogger routes kernel diagnostics to l. A nil l disables logging.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// gatherOptions applies user setters on top of the defaults and
// normalizes derived fields.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:  DefaultWorkers,
		checkCov: DefaultCheckCovariance,
		covTol:   DefaultCovarianceTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return o
}
