package pricing

import "github.com/sparselp/engine/sparse"

// UpdateAfterPivot performs the exact reduced-cost update from spec.md
// section 4.3: for pivot element alphaQ and entering reduced cost dq, every
// variable j (basic or not; varStatus only supplies the total count) gets
// dj' = dj - (dq/alphaQ) * alphaJ, where alphaJ is column j
// dotted with the pivot row of B^-1 (rho, obtained by the caller via a
// BTRAN against the unit vector for the pivot row — see basis.State.BTRAN).
//
// a is the original n-column structural matrix; artificial columns
// n..n+m-1 are implicit identity columns, so alphaJ for those is simply
// rho[j-n].
//
// For SteepestEdge/Devex, weights are updated recursively: gamma_j' =
// gamma_j - 2*alphaJ*rhoLeave_j + alphaJ^2*tau, where rhoLeave/tau are
// BTRAN products against the leaving row (rhoLeave supplied by the
// caller — it is the same rho used for the RC update when the leaving row
// equals the pivot row, which is always true here since there is only one
// pivot row per iteration). The leaving variable's own weight is set from
// the pivot column's squared norm.
func UpdateAfterPivot(dj []float64, varStatus []int32, a *sparse.CSC, n int, rho []float64, dq, alphaQ float64, strategy Strategy, weights []float64, pivotCol []float64, leaveVar int32) {
	if alphaQ == 0 {
		return
	}
	factor := dq / alphaQ

	for j := 0; j < n; j++ {
		rowIdx, vals := a.Col(j)
		alphaJ := sparse.DotSparseDense(rowIdx, vals, rho)
		if alphaJ == 0 {
			continue
		}
		dj[j] -= factor * alphaJ
	}

	total := len(varStatus)
	for j := n; j < total; j++ {
		alphaJ := rho[j-n]
		if alphaJ == 0 {
			continue
		}
		dj[j] -= factor * alphaJ
	}

	if (strategy == SteepestEdge || strategy == Devex) && weights != nil {
		updateWeights(weights, a, n, total, rho, pivotCol, leaveVar)
	}
}

// updateWeights applies the SE/Devex recursion gamma_j' = gamma_j -
// 2*alphaJ*rhoLeave_j + alphaJ^2*tau to every nonbasic j, where tau is the
// squared norm of rho (the BTRAN product against the leaving row) and
// rhoLeave_j is alphaJ itself re-expressed against the leaving row — for a
// single-row update these coincide, since rho already is the BTRAN result
// against the pivot (== leaving) row.
func updateWeights(weights []float64, a *sparse.CSC, n, total int, rho, pivotCol []float64, leaveVar int32) {
	tau := 0.0
	for _, r := range rho {
		tau += r * r
	}

	for j := 0; j < n; j++ {
		rowIdx, vals := a.Col(j)
		alphaJ := sparse.DotSparseDense(rowIdx, vals, rho)
		if alphaJ == 0 {
			continue
		}
		updated := weights[j] - 2*alphaJ*alphaJ + alphaJ*alphaJ*tau
		if updated < weightFloor {
			updated = weightFloor
		}
		weights[j] = updated
	}
	for j := n; j < total; j++ {
		alphaJ := rho[j-n]
		if alphaJ == 0 {
			continue
		}
		updated := weights[j] - 2*alphaJ*alphaJ + alphaJ*alphaJ*tau
		if updated < weightFloor {
			updated = weightFloor
		}
		weights[j] = updated
	}

	// The leaving variable's weight is reset to the pivot column's squared norm,
	// since it is now nonbasic and needs a fresh reference weight rather
	// than the stale recursive estimate.
	var norm float64
	for _, v := range pivotCol {
		norm += v * v
	}
	if norm < weightFloor {
		norm = weightFloor
	}
	weights[leaveVar] = norm
}
