package ratiotest

import "github.com/sparselp/engine/blas"

// unboundedSentinel is an improvement magnitude threshold for declaring an
// unblocked direction unbounded; SpecialPivot does not consult it.
const unboundedSentinel = 1e50

// SpecialPivot handles a nonbasic variable with an improving direction but
// no ordinary blocking row: either every column coefficient has the wrong
// sign, or the bound it would move toward is infinite. If a finite
// blocking bound exists despite that, it returns a bound pivot target
// (Theta is the bound value, LeaveStatus the entering variable's new
// status); otherwise it reports Unbounded. The improvement argument is
// not read: Unbounded is reported whatever its magnitude.
//
// isEquality disables the bound-pivot return, so an equality-row caller
// always gets Unbounded.
func SpecialPivot(enterVar int32, dj float64, lb, ub float64, improvement float64, isEquality bool) Result {
	if !isEquality {
		if dj < 0 && ub < 1e100 {
			return Result{Outcome: OutcomeBoundFlip, Theta: ub, LeaveStatus: statusAtUpper}
		}
		if dj > 0 && lb > -1e100 {
			return Result{Outcome: OutcomeBoundFlip, Theta: lb, LeaveStatus: statusAtLower}
		}
	}
	// No finite bound to move to (or an equality row): the direction is
	// reported unbounded regardless of the caller's measured improvement.
	return Result{Outcome: OutcomeUnbounded, UnboundedVar: enterVar}
}

// BoundPivot applies the rhs side of moving nonbasic variable j to value
// v, per spec.md section 4.4: every row's rhs copy is adjusted by -a_ij*v
// and c_j*v is returned for the objective. It does not touch bounds, cost
// or status; fixing lb=ub=v, zeroing the cost, deciding the resulting
// status and invalidating pricing state are left to the caller.
//
// rhs is the solver-owned copy of the constraint right-hand side (never
// the model's own rhs — see DESIGN.md on the source's questionable direct
// mutation of matrix.rhs). colRowIdx uses the plain-int convention shared
// with the rest of the sparse BLAS-1 routines in blas.
func BoundPivot(rhs []float64, colRowIdx []int, colVals []float64, v, cj float64) (objDelta float64) {
	blas.Dusaxpy(-v, colVals, colRowIdx, rhs, 1)
	return cj * v
}
