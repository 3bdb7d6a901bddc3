package simplex

import "testing"

func newTestContextForRefine() *SolverContext {
	env := DefaultEnvironment()
	return &SolverContext{
		env:     &env,
		n:       2,
		m:       1,
		trueObj: []float64{2, 3, 0},
		x:       []float64{1.0000000001, 4.9999999999, 1e-13},
		lb:      []float64{1, 0, 0},
		ub:      []float64{5, 5, Infinity},
		pi:      []float64{1e-13},
	}
}

func TestRefineSnapsValuesWithinToleranceToTheirBound(t *testing.T) {
	sc := newTestContextForRefine()
	sc.refine()

	if sc.x[0] != sc.lb[0] {
		t.Errorf("x[0] = %v, want snapped to lb %v", sc.x[0], sc.lb[0])
	}
	if sc.x[1] != sc.ub[1] {
		t.Errorf("x[1] = %v, want snapped to ub %v", sc.x[1], sc.ub[1])
	}
}

func TestRefineZeroesNegligibleValues(t *testing.T) {
	sc := newTestContextForRefine()
	sc.refine()

	if sc.x[2] != 0 {
		t.Errorf("x[2] = %v, want zeroed", sc.x[2])
	}
	if sc.pi[0] != 0 {
		t.Errorf("pi[0] = %v, want zeroed", sc.pi[0])
	}
}

func TestRefineRecomputesObjectiveFromCleanedSolution(t *testing.T) {
	sc := newTestContextForRefine()
	sc.refine()

	want := sc.trueObj[0]*sc.x[0] + sc.trueObj[1]*sc.x[1]
	if sc.objValue != want {
		t.Errorf("objValue = %v, want %v", sc.objValue, want)
	}
}

func TestExtractCopiesStateIntoSink(t *testing.T) {
	sc := newTestContextForRefine()
	sc.objValue = 42
	sc.status = StatusOptimal
	sink := &testSink{}

	sc.extract(sink)

	if len(sink.x) != sc.n || len(sink.pi) != sc.m {
		t.Fatalf("extract copied wrong lengths: x=%d pi=%d", len(sink.x), len(sink.pi))
	}
	if sink.obj != 42 || sink.status != StatusOptimal {
		t.Errorf("obj/status = %v/%v, want 42/Optimal", sink.obj, sink.status)
	}

	// Mutating the sink's copy must not alias sc's own arrays.
	sink.x[0] = -999
	if sc.x[0] == -999 {
		t.Error("extract did not defensively copy x")
	}
}
