// Package simplex implements the core of a sparse, revised primal simplex
// engine: dual CSC/CSR matrix storage, Product-Form-of-Inverse basis
// factorization, multi-strategy pricing, a Harris two-pass ratio test, and
// the iteration driver tying them together. The public API surface
// (environment/model construction, MPS parsing, callbacks plumbing beyond
// the narrow hook in Environment) is deliberately out of scope — this
// package is the engine a thicker API wraps.
package simplex

import "fmt"

// Status is the terminal outcome of a solve. It is never itself an error;
// Infeasible/Unbounded/IterationLimit/NumericDifficulty are first-class
// outcomes a caller branches on, not failures of the call.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
	StatusIterationLimit
	StatusNumericDifficulty
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusIterationLimit:
		return "IterationLimit"
	case StatusNumericDifficulty:
		return "NumericDifficulty"
	default:
		return "Unknown"
	}
}

// ErrorKind categorizes precondition/resource failures detected at the API
// boundary, distinct from the terminal Status outcomes above.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrOutOfMemory
	ErrNullArgument
	ErrInvalidArgument
	ErrNotSupported
)

func (k ErrorKind) String() string {
	switch k {
	case ErrOutOfMemory:
		return "OutOfMemory"
	case ErrNullArgument:
		return "NullArgument"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrNotSupported:
		return "NotSupported"
	default:
		return "None"
	}
}

// SolveError wraps an ErrorKind with context. Solve returns one for a nil
// model or sink; the sparse construction helpers and deep kernels never
// construct one — they panic or return a kernel-level outcome that the
// driver maps to a Status.
type SolveError struct {
	Kind ErrorKind
	Msg  string
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("simplex: %s: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, format string, args ...interface{}) *SolveError {
	return &SolveError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// VarStatus is the tagged variant replacing the source's magic-number
// variable-status encoding described in spec.md section 9: Basic(row),
// AtLower, AtUpper, or Free. Integer codes are used for the dense
// varStatus array the hot loop touches millions of times. This type is not
// the only mapping: the basis and ratiotest packages declare their own
// int32 status constants and work on raw int32 codes without it.
type VarStatus int32

// Nonbasic tags. A non-negative VarStatus is Basic, carrying its basis row
// as the value itself (see IsBasic).
const (
	CodeAtLower VarStatus = -1
	CodeAtUpper VarStatus = -2
	CodeFree    VarStatus = -3
)

// IsBasic reports whether code represents a basic variable, and if so its
// basis row.
func IsBasic(code int32) (row int, ok bool) {
	if code >= 0 {
		return int(code), true
	}
	return -1, false
}
