package simplex

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sparselp/engine/numeric"
)

// refine implements spec.md section 4.5's post-optimum cleanup: snap
// values within tolerance of a bound to that bound exactly, zero out
// values too small to be meaningful, and recompute the objective from the
// cleaned solution so it reflects exactly what is reported.
func (sc *SolverContext) refine() {
	tau := sc.env.FeasibilityTol

	for j := range sc.x {
		switch {
		case numeric.SafeAbs(sc.x[j]-sc.lb[j]) <= tau:
			sc.x[j] = sc.lb[j]
		case numeric.SafeAbs(sc.x[j]-sc.ub[j]) <= tau:
			sc.x[j] = sc.ub[j]
		}
		if numeric.SafeAbs(sc.x[j]) < refineZeroTol {
			sc.x[j] = 0
		}
	}
	for i := range sc.pi {
		if numeric.SafeAbs(sc.pi[i]) < refineZeroTol {
			sc.pi[i] = 0
		}
	}

	sc.objValue = floats.Dot(sc.trueObj[:sc.n], sc.x[:sc.n])
}

// refineZeroTol is the small-value floor applied to x/pi during refine,
// per spec.md section 4.5 ("zero out |values| < 10^-12").
const refineZeroTol = 1e-12

// cleanup is the structural placeholder from spec.md section 4.5: unscale
// is a no-op until scaling exists, and there are no eliminated variables
// to restore since applyBoundPivot never removes a column: it fixes the
// variable's bounds at its value, zeroes its cost and pins its status.
func (sc *SolverContext) cleanup() {}

// extract copies the solved state into sink, per spec.md section 6.
func (sc *SolverContext) extract(sink SolutionSink) {
	solution := append([]float64(nil), sc.x[:sc.n]...)
	pi := append([]float64(nil), sc.pi[:sc.m]...)
	sink.SetSolution(solution)
	sink.SetDuals(pi)
	sink.SetObjective(sc.objValue)
	sink.SetStatus(sc.status)
}
