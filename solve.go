package simplex

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sparselp/engine/pricing"
	"github.com/sparselp/engine/ratiotest"
)

// stallThreshold is the number of consecutive (near-)degenerate pivots
// (theta below ZeroTol) that triggers the anti-cycling perturbation,
// per spec.md section 4.5.
const stallThreshold = 50

// Solve runs the engine against model under env and writes the result
// into sink, per the state machine in spec.md section 4.5:
// init -> crash -> phase1 -> phase2 -> refine -> cleanup -> done.
//
// model and env must be non-nil; Solve itself never panics on a
// malformed model (that is the caller's responsibility per spec.md
// section 7) beyond what the kernels it calls already enforce.
func Solve(model Model, env Environment, sink SolutionSink) error {
	if model == nil {
		return newError(ErrNullArgument, "model is nil")
	}
	if sink == nil {
		return newError(ErrNullArgument, "sink is nil")
	}

	sc := newContext(model, &env)
	defer sc.release()

	sc.setup()

	n, _, _ := model.Dims()
	for j := 0; j < n; j++ {
		if sc.lb[j] > sc.ub[j]+env.FeasibilityTol {
			sc.status = StatusInfeasible
			sc.extract(sink)
			return nil
		}
	}

	sc.crash()

	env.logger().Debugw("crash complete", "n", sc.n, "m", sc.m, "phase", sc.phase)
	if env.fireCallback(model, WherePreSolve) {
		sc.status = StatusIterationLimit
		sc.extract(sink)
		return nil
	}

	if sc.phase == phaseOne {
		sc.recomputeDuals(sc.phaseOneCost())
	} else {
		sc.recomputeDuals(sc.trueObj)
	}

	sc.status = sc.run()

	sc.unperturb()
	sc.refine()
	sc.cleanup()

	env.fireCallback(model, WherePostSolve)
	env.logger().Infow("solve complete", "status", sc.status, "iterations", sc.basisSt.Iteration, "objective", sc.objValue)

	sc.extract(sink)
	return nil
}

// run executes the main iteration loop described in spec.md section 4.5
// until a terminal status is reached.
func (sc *SolverContext) run() Status {
	for sc.basisSt.Iteration < sc.env.MaxIterations {
		if sc.env.isTerminated() {
			return StatusIterationLimit
		}
		if sc.env.fireCallback(sc.model, WherePolling) {
			return StatusIterationLimit
		}

		cands := sc.scan()
		if len(cands) == 0 {
			cands = sc.pricingSt.Step2(sc.dj, sc.varStatus, sc.env.OptimalityTol)
		}
		if len(cands) == 0 {
			if status, done := sc.endOfCandidates(); done {
				return status
			}
			continue
		}

		enterVar := cands[0].Var
		status, err := sc.iterate(enterVar)
		if err != nil {
			if refactored := sc.forceRefactorOnce(); !refactored {
				return StatusNumericDifficulty
			}
			continue
		}
		if status != StatusUnknown {
			return status
		}
		sc.numericRetry = false

		if sc.phase == phaseOne {
			cost, infeas := sc.phaseOneCostAndInfeasibility()
			sc.objValue = infeas
			sc.recomputeDuals(cost)
			if infeas <= sc.env.FeasibilityTol {
				sc.phaseEnd()
			}
		}

		sc.maybePerturb()
	}
	return StatusIterationLimit
}

// endOfCandidates handles an empty candidate set after step2 escalation:
// in phase 1 this means either infeasibility (objective still positive)
// or a feasible basis found with no improving phase-2 direction yet
// (phase-end then re-enters the loop in phase 2); in phase 2 it is
// optimality.
func (sc *SolverContext) endOfCandidates() (Status, bool) {
	if sc.phase == phaseOne {
		_, infeas := sc.phaseOneCostAndInfeasibility()
		sc.objValue = infeas
		if infeas > sc.env.FeasibilityTol {
			return StatusInfeasible, true
		}
		sc.phaseEnd()
		return StatusUnknown, false
	}
	return StatusOptimal, true
}

// iterate performs one candidate's ratio test and applies whatever it
// decides: a bounded-variable flip, a row pivot, a special-case flip on
// an otherwise-unbounded direction, or termination with Unbounded.
// StatusUnknown with a nil error means the loop should simply continue.
func (sc *SolverContext) iterate(enterVar int32) (Status, error) {
	lbE, ubE := sc.lb[enterVar], sc.ub[enterVar]
	djE := sc.dj[enterVar]
	enterStatus := sc.varStatus[enterVar]

	sc.pivotColumn(enterVar, sc.d)

	harris := ratiotest.Harris(sc.d, sc.basisSt.BasicVars, sc.x, sc.lb, sc.ub, sc.env.FeasibilityTol, sc.env.Infinity)

	thetaMin := sc.env.Infinity
	if harris.Outcome == ratiotest.OutcomeRowFound {
		thetaMin = harris.Theta
	}

	if flip := ratiotest.CheckBoundFlip(enterStatus, lbE, ubE, djE, thetaMin); flip.Flip {
		sc.applyFlip(enterVar, flip.NewStatus, flip.NewValue, flip.ObjDelta)
		return StatusUnknown, nil
	}

	switch harris.Outcome {
	case ratiotest.OutcomeUnbounded:
		special := ratiotest.SpecialPivot(enterVar, djE, lbE, ubE, 0, false)
		if special.Outcome == ratiotest.OutcomeBoundFlip {
			sc.applyBoundPivot(enterVar, special.Theta, special.LeaveStatus)
			return StatusUnknown, nil
		}
		return StatusUnbounded, nil

	case ratiotest.OutcomeRowFound:
		if err := sc.applyPivot(enterVar, harris); err != nil {
			return StatusUnknown, err
		}
		return StatusUnknown, nil

	default:
		return StatusUnbounded, nil
	}
}

// forceRefactorOnce implements the retry-after-refactor policy from
// spec.md section 4.5/7: a tiny pivot forces one refactor; a second
// failure in a row (tracked by numericRetry) is terminal.
func (sc *SolverContext) forceRefactorOnce() (retried bool) {
	if sc.numericRetry {
		return false
	}
	sc.numericRetry = true
	sc.basisSt.Refactor()
	return true
}

// scan dispatches to the pricing state's scan method for its configured
// strategy.
func (sc *SolverContext) scan() []pricing.Candidate {
	tau := sc.env.OptimalityTol
	switch sc.pricingSt.Strategy {
	case pricing.Partial:
		return sc.pricingSt.ScanPartial(sc.dj, sc.varStatus, tau)
	case pricing.SteepestEdge, pricing.Devex:
		return sc.pricingSt.ScanSteepestEdge(sc.dj, sc.varStatus, tau)
	default:
		return sc.pricingSt.ScanDantzig(sc.dj, sc.varStatus, tau, 1)
	}
}

// phaseOneCostAndInfeasibility rebuilds the composite infeasibility cost
// vector (spec.md section 4.5's "minimize infeasibilities") and returns
// it along with the total infeasibility, the phase-1 objective. Every
// nonbasic entry is zero; a basic variable outside its bounds gets -1 (to
// reward increasing it back toward feasibility) or +1 (to reward
// decreasing it).
func (sc *SolverContext) phaseOneCostAndInfeasibility() ([]float64, float64) {
	tau := sc.env.FeasibilityTol
	for i := range sc.phaseCost {
		sc.phaseCost[i] = 0
	}
	var infeas float64
	for i := 0; i < sc.m; i++ {
		v := sc.basisSt.BasicVars[i]
		switch {
		case sc.x[v] < sc.lb[v]-tau:
			sc.phaseCost[v] = -1
			infeas += sc.lb[v] - sc.x[v]
		case sc.x[v] > sc.ub[v]+tau:
			sc.phaseCost[v] = 1
			infeas += sc.x[v] - sc.ub[v]
		}
	}
	return sc.phaseCost, infeas
}

func (sc *SolverContext) phaseOneCost() []float64 {
	cost, _ := sc.phaseOneCostAndInfeasibility()
	return cost
}

// phaseEnd implements spec.md section 4.5's phase transition: restore the
// real objective, recompute obj_value and duals under it, and switch to
// phase 2.
func (sc *SolverContext) phaseEnd() {
	sc.phase = phaseTwo
	sc.numericRetry = false
	sc.recomputeDuals(sc.trueObj)
	obj := floats.Dot(sc.trueObj[:sc.n], sc.x[:sc.n])
	sc.objValue = obj
	sc.env.logger().Debugw("phase 1 complete", "iteration", sc.basisSt.Iteration, "objective", obj)
}

// maybePerturb applies the Wolfe-style bound perturbation once, the
// first time stallThreshold consecutive pivots have been (near-)
// degenerate. Idempotent: a second call after perturbed is a no-op.
func (sc *SolverContext) maybePerturb() {
	if sc.perturbed || sc.degenerateRun < stallThreshold {
		return
	}
	sc.perturb()
}
