// Package ratiotest implements the Harris two-pass leaving-variable
// selection, the bounded-variable flip shortcut, and the special-pivot /
// unboundedness handling described in spec.md section 4.4.
package ratiotest

import "math"

// Outcome tags what Harris decided.
type Outcome int

const (
	OutcomeRowFound Outcome = iota
	OutcomeUnbounded
	OutcomeBoundFlip
)

// Result carries a ratio test decision back to the driver.
type Result struct {
	Outcome Outcome

	Row         int     // valid when Outcome == OutcomeRowFound
	PivotValue  float64 // d[Row]
	Theta       float64 // step length (OutcomeBoundFlip from SpecialPivot: the target bound value)
	LeaveStatus int32   // which bound the leaving basic variable hits (OutcomeBoundFlip: the entering variable's new status)

	// UnboundedVar is set to the entering variable by SpecialPivot when it
	// reports OutcomeUnbounded, for diagnostics; Harris leaves it zero.
	UnboundedVar int32
}

// permissiveFactor widens pass 1's tolerance relative to the feasibility
// tolerance, per spec.md section 4.4 ("use tolerance 10*tau").
const permissiveFactor = 10

// Harris runs the two-pass ratio test. d is the dense pivot column from
// FTRAN, basicVars[i] identifies the basic variable in row i, x/lb/ub are
// the working value/bound arrays indexed by variable, tau is the
// feasibility tolerance, and infinity is the unboundedness sentinel.
//
// Pass 1 (permissive, tolerance 10*tau) finds the minimum blocking ratio
// across every row whose |d_i| clears the permissive tolerance. Pass 2
// (stability) then re-examines every row within tau of that minimum and
// picks the one with the largest |d_i| magnitude, trading a little
// feasibility slack for numerical robustness.
func Harris(d []float64, basicVars []int32, x, lb, ub []float64, tau, infinity float64) Result {
	const noRow = -1
	thetaMin := math.Inf(1)
	found := false

	for i, di := range d {
		if di > -permissiveFactor*tau && di < permissiveFactor*tau {
			continue
		}
		v := basicVars[i]
		ratio, ok := blockingRatio(di, x[v], lb[v], ub[v], tau, infinity)
		if !ok {
			continue
		}
		if ratio < thetaMin {
			thetaMin = ratio
			found = true
		}
	}

	if !found {
		return Result{Outcome: OutcomeUnbounded}
	}
	if thetaMin < -tau {
		thetaMin = -tau
	}

	bestRow := noRow
	bestMag := -1.0
	bestStatus := int32(0)
	for i, di := range d {
		if di > -permissiveFactor*tau && di < permissiveFactor*tau {
			continue
		}
		v := basicVars[i]
		ratio, ok := blockingRatio(di, x[v], lb[v], ub[v], tau, infinity)
		if !ok || ratio > thetaMin+tau {
			continue
		}
		mag := math.Abs(di)
		if mag > bestMag {
			bestMag = mag
			bestRow = i
			switch {
			case x[v] > ub[v]+tau:
				bestStatus = statusAtUpper
			case x[v] < lb[v]-tau:
				bestStatus = statusAtLower
			case di > 0:
				bestStatus = statusAtLower
			default:
				bestStatus = statusAtUpper
			}
		}
	}

	if bestRow == noRow {
		return Result{Outcome: OutcomeUnbounded}
	}

	return Result{
		Outcome:     OutcomeRowFound,
		Row:         bestRow,
		PivotValue:  d[bestRow],
		Theta:       thetaMin,
		LeaveStatus: bestStatus,
	}
}

// Nonbasic status tags, mirrored locally to avoid an import cycle with the
// basis package (which itself has none back to ratiotest).
const (
	statusAtLower int32 = -1
	statusAtUpper int32 = -2
)

// blockingRatio computes the candidate ratio for one row, per spec.md
// section 4.4: di > 0 blocks on the basic variable's lower bound, di < 0 on
// its upper bound; an infinite blocking bound means this row cannot block.
//
// A basic variable that is already outside its bounds by more than tau — the
// phase-1 composite objective starts the basis in exactly this state — is a
// special case the plain sign rule above doesn't cover: it only blocks when
// moving back toward the bound it violates, right at the point it becomes
// feasible again. Moving further past the violated bound never blocks here;
// phase 1 recomputes the infeasibility set fresh after every pivot, so an
// overshoot just becomes next iteration's problem, not this row's.
func blockingRatio(di, xv, lbv, ubv, tau, infinity float64) (ratio float64, ok bool) {
	switch {
	case xv < lbv-tau:
		if di < 0 {
			return (xv - lbv) / di, true
		}
		return 0, false
	case xv > ubv+tau:
		if di > 0 {
			return (xv - ubv) / di, true
		}
		return 0, false
	case di > 0:
		if lbv <= -infinity {
			return 0, false
		}
		return (xv - lbv) / di, true
	case di < 0:
		if ubv >= infinity {
			return 0, false
		}
		return (xv - ubv) / di, true
	default:
		return 0, false
	}
}
