package simplex

import (
	"github.com/sparselp/engine/blas"
	"github.com/sparselp/engine/pricing"
	"github.com/sparselp/engine/ratiotest"
)

// scatterIndices reuses sc.idxScratch to hold a column's row indices as
// plain ints, the index type blas's sparse BLAS-1 routines expect, without
// allocating on every pivot.
func (sc *SolverContext) scatterIndices(idx []int32) []int {
	sc.idxScratch = sc.idxScratch[:0]
	for _, row := range idx {
		sc.idxScratch = append(sc.idxScratch, int(row))
	}
	return sc.idxScratch
}

// pivotColumn extracts the FTRAN pivot column for enterVar into dst: a
// dense scatter of A's column for a structural variable, or the unit
// vector shortcut for an artificial/slack, per spec.md section 4.5
// ("Artificial variables ... FTRAN treats them by zeroing the dense input
// and setting one position to 1").
func (sc *SolverContext) pivotColumn(enterVar int32, dst []float64) {
	if int(enterVar) < sc.n {
		idx, vals := sc.a.Col(int(enterVar))
		for i := range sc.unit {
			sc.unit[i] = 0
		}
		blas.Dussc(vals, sc.unit, 1, sc.scatterIndices(idx))
		sc.basisSt.FTRAN(dst, sc.unit)
		return
	}
	sc.basisSt.FTRANUnit(dst, int(enterVar)-sc.n)
}

// pivotRowOfBasisInverse computes e_r^T B^-1 into sc.rho by solving
// B^T y = e_r, per spec.md section 4.3's "pivot row of B^-1" used in the
// exact reduced-cost update.
func (sc *SolverContext) pivotRowOfBasisInverse(row int) {
	for i := range sc.unit {
		sc.unit[i] = 0
	}
	sc.unit[row] = 1
	sc.basisSt.BTRAN(sc.rho, sc.unit)
}

// applyFlip performs a bounded-variable flip (spec.md section 4.4): the
// entering variable moves between its two bounds without any basis
// change, so no eta is appended and the pivot column computed for it is
// simply discarded by the caller.
func (sc *SolverContext) applyFlip(enterVar, newStatus int32, newValue, objDelta float64) {
	sc.x[enterVar] = newValue
	sc.varStatus[enterVar] = newStatus
	sc.basisSt.VarStatus[enterVar] = newStatus
	sc.objValue += objDelta
	sc.pricingSt.Invalidate(pricing.InvalidateCandidates)
}

// applyBoundPivot fixes nonbasic enterVar at value v when the ratio test
// found no blocking row and no ordinary flip range (spec.md section 4.4's
// "special/unboundedness" case with a finite target bound): the variable
// is permanently pinned there, its true cost is folded into the running
// objective and zeroed, and every row's rhs copy absorbs its contribution
// so the rest of the solve proceeds as if it were never free to move.
func (sc *SolverContext) applyBoundPivot(enterVar int32, v float64, newStatus int32) {
	var idx []int
	var vals []float64
	if int(enterVar) < sc.n {
		rowIdx, colVals := sc.a.Col(int(enterVar))
		idx, vals = sc.scatterIndices(rowIdx), colVals
	} else {
		idx = []int{int(enterVar) - sc.n}
		vals = []float64{1}
	}

	cj := sc.trueObj[enterVar]
	sc.objValue += ratiotest.BoundPivot(sc.rhs, idx, vals, v, cj)
	sc.trueObj[enterVar] = 0
	sc.lb[enterVar] = v
	sc.ub[enterVar] = v
	sc.x[enterVar] = v
	sc.varStatus[enterVar] = newStatus
	sc.basisSt.VarStatus[enterVar] = newStatus
	sc.pricingSt.Invalidate(pricing.InvalidateCandidates)
}

// applyPivot performs the simplex step from spec.md section 4.4's
// "Simplex step" paragraph: update every basic value along the pivot
// column, move the entering variable to its new value, append the eta,
// advance the objective, and refresh reduced costs (exact update in
// phase 2, full recompute in phase 1 — see recomputeDuals).
func (sc *SolverContext) applyPivot(enterVar int32, r ratiotest.Result) error {
	leaveVar := sc.basisSt.BasicVars[r.Row]
	theta := r.Theta

	for i, v := range sc.basisSt.BasicVars {
		sc.x[v] -= theta * sc.d[i]
	}

	if sc.varStatus[enterVar] == int32(CodeAtUpper) {
		sc.x[enterVar] = sc.ub[enterVar] - theta
	} else {
		sc.x[enterVar] = sc.lb[enterVar] + theta
	}

	dq := sc.dj[enterVar]
	alphaQ := r.PivotValue

	sc.pivotRowOfBasisInverse(r.Row)
	if sc.phase == phaseTwo {
		pricing.UpdateAfterPivot(sc.dj, sc.varStatus, sc.a, sc.n, sc.rho, dq, alphaQ,
			sc.pricingSt.Strategy, sc.pricingSt.Weights, sc.d, leaveVar)
	}

	if err := sc.basisSt.Pivot(r.Row, enterVar, leaveVar, r.LeaveStatus, sc.d, sc.env.PivotTol); err != nil {
		return err
	}
	sc.varStatus[enterVar] = int32(sc.basisSt.VarStatus[enterVar])
	sc.varStatus[leaveVar] = r.LeaveStatus
	sc.dj[enterVar] = 0

	sc.objValue += dq * theta
	sc.pricingSt.Invalidate(pricing.InvalidateCandidates)

	if theta < sc.env.ZeroTol {
		sc.degenerateRun++
	} else {
		sc.degenerateRun = 0
	}
	return nil
}

// recomputeDuals rebuilds pi via BTRAN against the basic variables' cost
// and every nonbasic reduced cost from scratch, per spec.md section 4.4's
// "recompute dual" step. cost is the cost vector to use: trueObj in phase
// 2, the composite infeasibility cost in phase 1.
func (sc *SolverContext) recomputeDuals(cost []float64) {
	for i, v := range sc.basisSt.BasicVars {
		sc.cB[i] = cost[v]
	}
	sc.basisSt.BTRAN(sc.pi, sc.cB)

	for j := 0; j < sc.n; j++ {
		if _, ok := IsBasic(sc.varStatus[j]); ok {
			sc.dj[j] = 0
			continue
		}
		idx, vals := sc.a.Col(j)
		piDotA := blas.Dusdot(vals, sc.scatterIndices(idx), sc.pi, 1)
		sc.dj[j] = cost[j] - piDotA
	}
	for i := 0; i < sc.m; i++ {
		j := sc.n + i
		if _, ok := IsBasic(sc.varStatus[j]); ok {
			sc.dj[j] = 0
			continue
		}
		sc.dj[j] = cost[j] - sc.pi[i]
	}
}
