package basis

// Pivot appends a new eta recording the pivot at row r, entering variable
// enterVar, given the dense pivot column d (as computed by FTRAN) and pivot
// tolerance. It updates BasicVars[r] and VarStatus for both the entering
// and leaving variable, and bumps the iteration/pivot counters.
//
// leaveVar and leaveStatus come from the ratio test's blocking-bound
// decision (per spec.md section 9's redesign note: the leaving variable's
// post-pivot status must reflect which bound it hit, not be hardcoded to
// "at lower"). If |d[r]| is below pivotTol, Pivot performs no mutation and
// returns ErrTinyPivot so the driver can force a refactor.
func (s *State) Pivot(r int, enterVar, leaveVar int32, leaveStatus int32, d []float64, pivotTol float64) error {
	pivotVal := d[r]
	if pivotVal < 0 {
		pivotVal = -pivotVal
	}
	if pivotVal < pivotTol {
		return ErrTinyPivot
	}

	idx := make([]int32, 0, len(d)/4+1)
	val := make([]float64, 0, len(d)/4+1)
	for i, v := range d {
		if i == r || v == 0 {
			continue
		}
		idx = append(idx, int32(i))
		val = append(val, v)
	}

	e := &Eta{
		Kind:        EtaPivot,
		Row:         r,
		EnterVar:    enterVar,
		Idx:         idx,
		Val:         val,
		Pivot:       d[r],
		LeaveVar:    leaveVar,
		LeaveStatus: leaveStatus,
	}
	s.chain.append(e)
	s.EtaCount++
	s.PivotsSinceRefactor++
	s.Iteration++

	s.BasicVars[r] = enterVar
	s.VarStatus[enterVar] = int32(r)
	s.VarStatus[leaveVar] = leaveStatus

	return nil
}
