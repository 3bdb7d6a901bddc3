package simplex

import (
	"testing"

	"github.com/sparselp/engine/sparse"
)

func TestCrashPlacesStructuralsAtTheirFiniteBound(t *testing.T) {
	model := &testModel{
		n: 3, m: 1,
		obj: []float64{1, 1, 1},
		lb:  []float64{0, -Infinity, -5},
		ub:  []float64{Infinity, 4, Infinity},
		a:   sparse.FromTriplets(1, 3, []int32{0, 0, 0}, []int32{0, 1, 2}, []float64{1, 1, 1}),
		rhs: []float64{10},
		sns: []sparse.Sense{sparse.LessEqual},
	}
	env := DefaultEnvironment()
	sc := newContext(model, &env)
	defer sc.release()
	sc.setup()
	sc.crash()

	if sc.x[0] != 0 {
		t.Errorf("x[0] (finite lb) = %v, want 0", sc.x[0])
	}
	if sc.x[1] != 4 {
		t.Errorf("x[1] (only finite bound is ub) = %v, want 4", sc.x[1])
	}
	if sc.x[2] != -5 {
		t.Errorf("x[2] (finite lb) = %v, want -5", sc.x[2])
	}
	if sc.varStatus[1] != int32(CodeAtUpper) {
		t.Errorf("varStatus[1] = %v, want CodeAtUpper", sc.varStatus[1])
	}
}

func TestCrashFreeVariableStartsAtZero(t *testing.T) {
	model := &testModel{
		n: 1, m: 0,
		obj: []float64{1},
		lb:  []float64{-Infinity},
		ub:  []float64{Infinity},
		a:   sparse.FromTriplets(0, 1, nil, nil, nil),
	}
	env := DefaultEnvironment()
	sc := newContext(model, &env)
	defer sc.release()
	sc.setup()
	sc.crash()

	if sc.x[0] != 0 {
		t.Errorf("x[0] = %v, want 0", sc.x[0])
	}
	if sc.varStatus[0] != int32(CodeFree) {
		t.Errorf("varStatus[0] = %v, want CodeFree", sc.varStatus[0])
	}
}

func TestDecidePhaseFeasibleCrashIsPhaseTwo(t *testing.T) {
	model := &testModel{
		n: 1, m: 1,
		obj: []float64{1},
		lb:  []float64{0},
		ub:  []float64{Infinity},
		a:   sparse.FromTriplets(1, 1, []int32{0}, []int32{0}, []float64{1}),
		rhs: []float64{5},
		sns: []sparse.Sense{sparse.LessEqual},
	}
	env := DefaultEnvironment()
	sc := newContext(model, &env)
	defer sc.release()
	sc.setup()
	sc.crash()

	if sc.phase != phaseTwo {
		t.Errorf("phase = %v, want phaseTwo (slack = 5 is within [0,inf))", sc.phase)
	}
}

func TestDecidePhaseInfeasibleCrashIsPhaseOne(t *testing.T) {
	model := &testModel{
		n: 1, m: 1,
		obj: []float64{1},
		lb:  []float64{0},
		ub:  []float64{Infinity},
		a:   sparse.FromTriplets(1, 1, []int32{0}, []int32{0}, []float64{1}),
		rhs: []float64{5},
		sns: []sparse.Sense{sparse.GreaterEqual},
	}
	env := DefaultEnvironment()
	sc := newContext(model, &env)
	defer sc.release()
	sc.setup()
	sc.crash()

	if sc.phase != phaseOne {
		t.Errorf("phase = %v, want phaseOne (surplus = 5 violates (-inf,0])", sc.phase)
	}
}

func TestSetupExtendsBoundsWithSenseDependentSlack(t *testing.T) {
	model := &testModel{
		n: 1, m: 3,
		obj: []float64{1},
		lb:  []float64{0},
		ub:  []float64{Infinity},
		a: sparse.FromTriplets(3, 1, []int32{0, 1, 2}, []int32{0, 0, 0},
			[]float64{1, 1, 1}),
		rhs: []float64{1, 2, 3},
		sns: []sparse.Sense{sparse.LessEqual, sparse.GreaterEqual, sparse.Equal},
	}
	env := DefaultEnvironment()
	sc := newContext(model, &env)
	defer sc.release()
	sc.setup()

	if sc.lb[1] != 0 || sc.ub[1] != Infinity {
		t.Errorf("<= slack bounds = [%v,%v], want [0,inf)", sc.lb[1], sc.ub[1])
	}
	if sc.lb[2] != -Infinity || sc.ub[2] != 0 {
		t.Errorf(">= slack bounds = [%v,%v], want (-inf,0]", sc.lb[2], sc.ub[2])
	}
	if sc.lb[3] != 0 || sc.ub[3] != 0 {
		t.Errorf("= slack bounds = [%v,%v], want [0,0]", sc.lb[3], sc.ub[3])
	}
}
