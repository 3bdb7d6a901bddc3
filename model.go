package simplex

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/sparselp/engine/sparse"
)

// Infinity is the sentinel value used for unbounded lb/ub entries,
// compared by value (never by bit pattern) throughout the core.
const Infinity = 1e100

// Default tolerances, per spec.md section 6.
const (
	DefaultFeasibilityTol = 1e-6
	DefaultOptimalityTol  = 1e-6
	DefaultPivotTol       = 1e-10
	DefaultZeroTol        = 1e-12
)

// Model is the read-only view of an LP the core consumes during a solve.
// It is supplied by an external collaborator (environment/model layer);
// the core never mutates it.
type Model interface {
	// Dims returns variable count n, constraint count m, and nnz of A.
	Dims() (n, m, nnz int)

	// Objective returns c[n].
	Objective() []float64

	// Bounds returns lb[n], ub[n], using Infinity as the unbounded sentinel.
	Bounds() (lb, ub []float64)

	// Constraints returns the constraint matrix in CSC form plus rhs[m]
	// and sense[m].
	Constraints() (a *sparse.CSC, rhs []float64, sense []sparse.Sense)
}

// WhereCode identifies the point in the solve at which Environment.Callback
// is invoked.
type WhereCode int

const (
	WherePreSolve WhereCode = iota
	WherePolling
	WhereMIPSolution // reserved, unused by this core
	WherePostSolve
)

// CallbackFunc is invoked by the driver with model/user-data context and a
// WhereCode; a non-zero return requests cancellation. userPtr is an opaque
// value threaded through unmodified for the caller's own bookkeeping.
type CallbackFunc func(model Model, userData interface{}, where WhereCode, userPtr interface{}) int

// Environment is the read-only set of tolerances, limits, and hooks the
// driver consults during a solve. DefaultEnvironment returns one populated
// with the defaults from spec.md section 6.
type Environment struct {
	FeasibilityTol float64
	OptimalityTol  float64
	PivotTol       float64
	ZeroTol        float64
	Infinity       float64

	MaxIterations    int
	RefactorInterval int
	MaxEtaCount      int
	MaxEtaMemory     int64

	Verbose       bool
	OutputEnabled bool

	// Terminated is polled once per iteration (never mid-FTRAN/BTRAN); a
	// non-zero value requests cooperative cancellation.
	Terminated *int32

	Callback CallbackFunc
	UserData interface{}
	UserPtr  interface{}

	Logger *zap.SugaredLogger
}

// DefaultEnvironment returns an Environment populated with this package's
// documented defaults. Callers override individual fields as needed.
func DefaultEnvironment() Environment {
	return Environment{
		FeasibilityTol:   DefaultFeasibilityTol,
		OptimalityTol:    DefaultOptimalityTol,
		PivotTol:         DefaultPivotTol,
		ZeroTol:          DefaultZeroTol,
		Infinity:         Infinity,
		MaxIterations:    20000,
		RefactorInterval: 100,
		MaxEtaCount:      500,
		MaxEtaMemory:     64 << 20,
		OutputEnabled:    true,
		Terminated:       new(int32),
		Logger:           zap.NewNop().Sugar(),
	}
}

// logger returns a usable logger, falling back to a no-op sugared logger if
// the caller left Environment.Logger nil.
func (e *Environment) logger() *zap.SugaredLogger {
	if e.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return e.Logger
}

// isTerminated checks the cooperative cancellation flag.
func (e *Environment) isTerminated() bool {
	return e.Terminated != nil && atomic.LoadInt32(e.Terminated) != 0
}

func (e *Environment) fireCallback(model Model, where WhereCode) (cancel bool) {
	if e.Callback == nil {
		return false
	}
	return e.Callback(model, e.UserData, where, e.UserPtr) != 0
}

// SolutionSink is the write-only destination for a completed solve.
type SolutionSink interface {
	SetSolution(x []float64)
	SetDuals(pi []float64)
	SetObjective(v float64)
	SetStatus(s Status)
}
