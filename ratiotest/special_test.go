package ratiotest

import "testing"

func TestSpecialPivotFlipsOnFiniteBoundNegativeDj(t *testing.T) {
	r := SpecialPivot(3, -1, -1e100, 10, 0, false)
	if r.Outcome != OutcomeBoundFlip {
		t.Fatalf("Outcome = %v, want OutcomeBoundFlip", r.Outcome)
	}
	if r.Theta != 10 {
		t.Errorf("Theta = %v, want 10 (upper bound)", r.Theta)
	}
	if r.LeaveStatus != statusAtUpper {
		t.Errorf("LeaveStatus = %d, want statusAtUpper", r.LeaveStatus)
	}
}

func TestSpecialPivotFlipsOnFiniteBoundPositiveDj(t *testing.T) {
	r := SpecialPivot(3, 1, -5, 1e100, 0, false)
	if r.Outcome != OutcomeBoundFlip {
		t.Fatalf("Outcome = %v, want OutcomeBoundFlip", r.Outcome)
	}
	if r.Theta != -5 {
		t.Errorf("Theta = %v, want -5 (lower bound)", r.Theta)
	}
	if r.LeaveStatus != statusAtLower {
		t.Errorf("LeaveStatus = %d, want statusAtLower", r.LeaveStatus)
	}
}

func TestSpecialPivotUnboundedWhenNoFiniteBound(t *testing.T) {
	r := SpecialPivot(7, -1, -1e100, 1e100, 0, false)
	if r.Outcome != OutcomeUnbounded {
		t.Fatalf("Outcome = %v, want OutcomeUnbounded", r.Outcome)
	}
	if r.UnboundedVar != 7 {
		t.Errorf("UnboundedVar = %d, want 7", r.UnboundedVar)
	}
}

func TestSpecialPivotEqualityDisablesBoundFlip(t *testing.T) {
	// Even with a finite crossable bound, equality rows must not eliminate
	// via a trivial bound flip.
	r := SpecialPivot(3, -1, -1e100, 10, 0, true)
	if r.Outcome != OutcomeUnbounded {
		t.Fatalf("Outcome = %v, want OutcomeUnbounded for an equality row", r.Outcome)
	}
}

func TestBoundPivotAdjustsRHSAndObjective(t *testing.T) {
	rhs := []float64{10, 20}
	colRowIdx := []int{0, 1}
	colVals := []float64{2, 3}
	objDelta := BoundPivot(rhs, colRowIdx, colVals, 5, 7)

	if got, want := rhs[0], 10-2*5.0; got != want {
		t.Errorf("rhs[0] = %v, want %v", got, want)
	}
	if got, want := rhs[1], 20-3*5.0; got != want {
		t.Errorf("rhs[1] = %v, want %v", got, want)
	}
	if got, want := objDelta, 7*5.0; got != want {
		t.Errorf("objDelta = %v, want %v", got, want)
	}
}

func TestBoundPivotSparseColumnSkipsUntouchedRows(t *testing.T) {
	rhs := []float64{1, 2, 3}
	colRowIdx := []int{1}
	colVals := []float64{4}
	BoundPivot(rhs, colRowIdx, colVals, 2, 0)

	if rhs[0] != 1 || rhs[2] != 3 {
		t.Errorf("rows not referenced by the column must stay untouched: rhs = %v", rhs)
	}
	if got, want := rhs[1], 2-4*2.0; got != want {
		t.Errorf("rhs[1] = %v, want %v", got, want)
	}
}
