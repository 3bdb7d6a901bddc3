package basis

// FTRAN solves B*y = a for y, where B is the current basis implied by the
// identity plus this State's eta chain. a is consumed by copying into
// State.Work and the result is written back into dst (which may alias a).
//
// Walking the chain oldest-to-newest mirrors how each eta was appended: eta
// k encodes the basis update applied at pivot k, so replaying them in
// chronological order reconstructs B^-1 * a.
func (s *State) FTRAN(dst, a []float64) {
	y := s.Work
	copy(y, a)
	s.walkForward(y)
	copy(dst, y)
}

// FTRANUnit solves B*y = e_col for y, where e_col is the col'th standard
// basis vector — used to extract the pivot column of an artificial
// (identity) variable without materializing a dense unit vector first.
func (s *State) FTRANUnit(dst []float64, col int) {
	y := s.Work
	for i := range y {
		y[i] = 0
	}
	y[col] = 1
	s.walkForward(y)
	copy(dst, y)
}

// walkForward replays the eta chain oldest-to-newest against y in place.
func (s *State) walkForward(y []float64) {
	for _, e := range s.chain.etas {
		r := e.Row
		alpha := y[r] / e.Pivot
		for k, idx := range e.Idx {
			y[idx] -= alpha * e.Val[k]
		}
		y[r] = alpha
	}
}
