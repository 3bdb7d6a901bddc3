package simplex

import (
	"github.com/sparselp/engine/basis"
	"github.com/sparselp/engine/pricing"
	"github.com/sparselp/engine/sparse"
)

// phase names which objective the driver is currently minimizing: the
// composite infeasibility measure (phase 1) or the model's own cost
// (phase 2).
type phase int

const (
	phaseOne phase = iota
	phaseTwo
)

// dantzigThreshold is the small-problem cutoff below which pricing always
// uses Dantzig's full scan, per spec.md section 4.3.
const dantzigThreshold = 200

// partialSectionSize is the default section size for partial pricing,
// per spec.md section 4.3 ("default 100").
const partialSectionSize = 100

// SolverContext owns every array and piece of state exclusive to one
// solve: the working copies of bounds/objective/values, the basis state,
// the pricing state, and solve-local scratch. It is single-use; build a
// fresh one per Solve call.
type SolverContext struct {
	model Model
	env   *Environment

	n, m, total int

	a     *sparse.CSC
	rhs   []float64
	sense []sparse.Sense

	lb, ub     []float64
	trueObj    []float64 // c[n] extended with zero cost for slacks; applyBoundPivot zeroes a pinned variable's entry
	x          []float64
	dj         []float64
	pi         []float64
	varStatus  []int32

	origLB, origUB []float64
	perturbed      bool
	degenerateRun  int

	basisSt   *basis.State
	pricingSt *pricing.State

	phase        phase
	objValue     float64
	status       Status
	numericRetry bool

	// d, rho, unit, cB are length-m scratch reused every iteration: d is
	// the FTRAN pivot column, rho is the pivot row of B^-1 from BTRAN
	// against a unit vector, unit is that unit vector, cB holds the
	// current basic variables' cost for the dual BTRAN.
	d, rho, unit, cB []float64

	// phaseCost is a length-(n+m) scratch buffer for the phase-1 composite
	// infeasibility cost vector, rebuilt every phase-1 iteration.
	phaseCost []float64

	// idxScratch reuses one backing array across every sparse BLAS-1 call
	// this iteration makes (scatter, dot), converting a column's int32 row
	// indices to the plain-int convention those routines use.
	idxScratch []int
}

// newContext allocates a SolverContext for model under env. It does not
// yet decide phase or crash the basis — call setup then crash.
func newContext(model Model, env *Environment) *SolverContext {
	n, m, _ := model.Dims()
	total := n + m
	a, rhs, sense := model.Constraints()

	sc := &SolverContext{
		model: model,
		env:   env,
		n:     n,
		m:     m,
		total: total,
		a:     a,
		sense: sense,

		lb:        getFloats(total),
		ub:        getFloats(total),
		trueObj:   getFloats(total),
		x:         getFloats(total),
		dj:        getFloats(total),
		pi:        getFloats(m),
		varStatus: make([]int32, total),

		basisSt:   basis.New(n, m),
		d:         getFloats(m),
		rho:       getFloats(m),
		unit:      getFloats(m),
		cB:        getFloats(m),
		phaseCost: getFloats(total),
	}
	sc.rhs = append([]float64(nil), rhs...) // solver-owned copy, see spec.md section 9

	return sc
}

// release returns every pooled scratch buffer this context holds. Call
// once the solve is complete; the context must not be used afterward.
func (sc *SolverContext) release() {
	putFloats(sc.lb)
	putFloats(sc.ub)
	putFloats(sc.trueObj)
	putFloats(sc.x)
	putFloats(sc.dj)
	putFloats(sc.pi)
	putFloats(sc.d)
	putFloats(sc.rho)
	putFloats(sc.unit)
	putFloats(sc.cB)
	putFloats(sc.phaseCost)
}

// setup copies bounds/objective from the model, extends them with one
// slack/artificial column per row, and initializes reduced costs to the
// true objective with pi at zero — per spec.md section 4.5.
func (sc *SolverContext) setup() {
	lb, ub := sc.model.Bounds()
	copy(sc.lb[:sc.n], lb)
	copy(sc.ub[:sc.n], ub)
	copy(sc.trueObj[:sc.n], sc.model.Objective())

	for i := 0; i < sc.m; i++ {
		j := sc.n + i
		switch sc.sense[i] {
		case sparse.LessEqual:
			sc.lb[j], sc.ub[j] = 0, sc.env.Infinity
		case sparse.GreaterEqual:
			sc.lb[j], sc.ub[j] = -sc.env.Infinity, 0
		default: // Equal
			sc.lb[j], sc.ub[j] = 0, 0
		}
		sc.trueObj[j] = 0
	}

	copy(sc.dj, sc.trueObj)
	for i := range sc.pi {
		sc.pi[i] = 0
	}
}

// crash installs the all-slack basis described in spec.md section 4.5:
// every row's slack/artificial is basic, every structural variable is
// nonbasic at whichever finite bound it has (free if neither is finite).
func (sc *SolverContext) crash() {
	atUpper := make([]bool, sc.n)
	for j := 0; j < sc.n; j++ {
		switch {
		case sc.lb[j] > -sc.env.Infinity:
			atUpper[j] = false
		case sc.ub[j] < sc.env.Infinity:
			atUpper[j] = true
		default:
			atUpper[j] = false // overridden to Free below
		}
	}
	sc.basisSt.CrashAllSlack(sc.n, atUpper)

	for j := 0; j < sc.n; j++ {
		switch {
		case sc.lb[j] > -sc.env.Infinity:
			sc.x[j] = sc.lb[j]
		case sc.ub[j] < sc.env.Infinity:
			sc.x[j] = sc.ub[j]
		default:
			sc.basisSt.VarStatus[j] = int32(CodeFree)
			sc.x[j] = 0
		}
	}
	copy(sc.varStatus, sc.basisSt.VarStatus)

	// Row i's slack is basic with coefficient +1, so its value is whatever
	// makes the row balance given the structurals just pinned above.
	ax := getFloats(sc.m)
	defer putFloats(ax)
	sc.a.MulVec(ax, sc.x[:sc.n], true)
	for i := 0; i < sc.m; i++ {
		sc.x[sc.n+i] = sc.rhs[i] - ax[i]
	}

	strategy := pricing.ChooseStrategy(sc.n, dantzigThreshold, pricing.Dantzig, false)
	sc.pricingSt = pricing.New(strategy, sc.total, partialSectionSize)

	sc.phase = sc.decidePhase()
}

// decidePhase reports whether the crash basis is already feasible
// (Phase II) or needs the composite-infeasibility objective (Phase I),
// per spec.md section 4.5.
func (sc *SolverContext) decidePhase() phase {
	tau := sc.env.FeasibilityTol
	for i := 0; i < sc.m; i++ {
		v := sc.basisSt.BasicVars[i]
		if sc.x[v] < sc.lb[v]-tau || sc.x[v] > sc.ub[v]+tau {
			return phaseOne
		}
	}
	return phaseTwo
}
