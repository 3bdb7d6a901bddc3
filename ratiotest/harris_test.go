package ratiotest

import (
	"math"
	"testing"
)

const testInfinity = 1e100

func TestHarrisPicksMinimumRatio(t *testing.T) {
	// Two candidate blocking rows: row 0 blocks at theta=2, row 1 at theta=5.
	d := []float64{1, 1}
	basicVars := []int32{0, 1}
	x := []float64{5, 10}
	lb := []float64{3, 5}
	ub := []float64{testInfinity, testInfinity}

	r := Harris(d, basicVars, x, lb, ub, 1e-9, testInfinity)
	if r.Outcome != OutcomeRowFound {
		t.Fatalf("Outcome = %v, want OutcomeRowFound", r.Outcome)
	}
	if r.Row != 0 {
		t.Errorf("Row = %d, want 0", r.Row)
	}
	if math.Abs(r.Theta-2) > 1e-12 {
		t.Errorf("Theta = %v, want 2", r.Theta)
	}
}

func TestHarrisStabilityPassPrefersLargerPivot(t *testing.T) {
	// Both rows tie at theta=2 within tau, but row 1 has a larger |d|, which
	// the stability pass must prefer over row 0.
	d := []float64{0.01, 5}
	basicVars := []int32{0, 1}
	x := []float64{0.02, 10}
	lb := []float64{0, 0}
	ub := []float64{testInfinity, testInfinity}

	r := Harris(d, basicVars, x, lb, ub, 1e-6, testInfinity)
	if r.Outcome != OutcomeRowFound {
		t.Fatalf("Outcome = %v, want OutcomeRowFound", r.Outcome)
	}
	if r.Row != 1 {
		t.Errorf("Row = %d, want 1 (larger pivot magnitude)", r.Row)
	}
}

func TestHarrisUnboundedWhenNoBlockingRow(t *testing.T) {
	d := []float64{1, -1}
	basicVars := []int32{0, 1}
	x := []float64{5, 5}
	lb := []float64{-testInfinity, -testInfinity}
	ub := []float64{testInfinity, testInfinity}

	r := Harris(d, basicVars, x, lb, ub, 1e-9, testInfinity)
	if r.Outcome != OutcomeUnbounded {
		t.Fatalf("Outcome = %v, want OutcomeUnbounded", r.Outcome)
	}
}

func TestHarrisIgnoresNegligibleCoefficients(t *testing.T) {
	// Row 0's coefficient is within the permissive tolerance band and must
	// be skipped entirely, leaving row 1 as the only candidate.
	d := []float64{1e-10, 2}
	basicVars := []int32{0, 1}
	x := []float64{0.0001, 8}
	lb := []float64{-testInfinity, 0}
	ub := []float64{testInfinity, testInfinity}

	r := Harris(d, basicVars, x, lb, ub, 1e-6, testInfinity)
	if r.Outcome != OutcomeRowFound {
		t.Fatalf("Outcome = %v, want OutcomeRowFound", r.Outcome)
	}
	if r.Row != 1 {
		t.Errorf("Row = %d, want 1", r.Row)
	}
}

func TestHarrisNeverReturnsThetaBelowNegativeTau(t *testing.T) {
	// A slightly infeasible basic variable (x below lb by less than tau)
	// produces a small negative raw ratio (-1e-7, above -tau); the
	// returned step must not fall below -tau.
	d := []float64{1}
	basicVars := []int32{0}
	x := []float64{4.9999999}
	lb := []float64{5}
	ub := []float64{testInfinity}

	r := Harris(d, basicVars, x, lb, ub, 1e-6, testInfinity)
	if r.Outcome != OutcomeRowFound {
		t.Fatalf("Outcome = %v, want OutcomeRowFound", r.Outcome)
	}
	if r.Theta < -1e-6-1e-12 {
		t.Errorf("Theta = %v, want >= -tau", r.Theta)
	}
}

func TestHarrisLeaveStatusMatchesBlockingDirection(t *testing.T) {
	dPos := []float64{1}
	r := Harris(dPos, []int32{0}, []float64{5}, []float64{2}, []float64{testInfinity}, 1e-9, testInfinity)
	if r.LeaveStatus != statusAtLower {
		t.Errorf("positive d: LeaveStatus = %d, want statusAtLower", r.LeaveStatus)
	}

	dNeg := []float64{-1}
	r = Harris(dNeg, []int32{0}, []float64{5}, []float64{-testInfinity}, []float64{8}, 1e-9, testInfinity)
	if r.LeaveStatus != statusAtUpper {
		t.Errorf("negative d: LeaveStatus = %d, want statusAtUpper", r.LeaveStatus)
	}
}

func TestBlockingRatioInfiniteBoundNeverBlocks(t *testing.T) {
	if _, ok := blockingRatio(1, 5, -testInfinity, testInfinity, 1e-9, testInfinity); ok {
		t.Errorf("positive d with infinite lower bound should not block")
	}
	if _, ok := blockingRatio(-1, 5, -testInfinity, testInfinity, 1e-9, testInfinity); ok {
		t.Errorf("negative d with infinite upper bound should not block")
	}
}

func TestBlockingRatioComputesCorrectRatio(t *testing.T) {
	ratio, ok := blockingRatio(2, 10, 4, testInfinity, 1e-9, testInfinity)
	if !ok {
		t.Fatal("expected a blocking ratio")
	}
	if math.Abs(ratio-3) > 1e-12 {
		t.Errorf("ratio = %v, want 3", ratio)
	}

	ratio, ok = blockingRatio(-2, 10, -testInfinity, 16, 1e-9, testInfinity)
	if !ok {
		t.Fatal("expected a blocking ratio")
	}
	if math.Abs(ratio-3) > 1e-12 {
		t.Errorf("ratio = %v, want 3", ratio)
	}
}

func TestBlockingRatioInfeasibleBasicBlocksOnlyTowardItsBound(t *testing.T) {
	// A basic variable currently above its upper bound (phase-1 start state)
	// blocks when decreasing (di>0) reaches that same bound, and never
	// blocks while increasing further past it (di<0).
	ratio, ok := blockingRatio(1, 7, 0, 5, 1e-6, testInfinity)
	if !ok {
		t.Fatal("expected a block restoring the violated upper bound")
	}
	if math.Abs(ratio-2) > 1e-12 {
		t.Errorf("ratio = %v, want 2", ratio)
	}
	if _, ok := blockingRatio(-1, 7, 0, 5, 1e-6, testInfinity); ok {
		t.Errorf("moving further past the violated bound should not block")
	}

	// Symmetric case: below its lower bound.
	ratio, ok = blockingRatio(-1, -3, 0, 5, 1e-6, testInfinity)
	if !ok {
		t.Fatal("expected a block restoring the violated lower bound")
	}
	if math.Abs(ratio-3) > 1e-12 {
		t.Errorf("ratio = %v, want 3", ratio)
	}
	if _, ok := blockingRatio(1, -3, 0, 5, 1e-6, testInfinity); ok {
		t.Errorf("moving further past the violated bound should not block")
	}
}
