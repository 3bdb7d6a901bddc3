package ratiotest

// FlipResult describes a bounded-variable flip: the entering variable
// itself moves from one finite bound to the other without any basis
// change, so the driver must not append an eta.
type FlipResult struct {
	Flip      bool
	NewStatus int32 // the entering variable's new nonbasic status
	NewValue  float64
	ObjDelta  float64 // dj * signed move (+range up, -range down), added to the running objective
}

// CheckBoundFlip implements spec.md section 4.4's bounded-variable flip: if
// the entering variable j (currently at status enterStatus, reduced cost
// dj) can cross its entire [lb,ub] range in a distance shorter than
// thetaMin, it is cheaper to flip it to the opposite bound than to bring a
// new variable into the basis.
func CheckBoundFlip(enterStatus int32, lb, ub, dj, thetaMin float64) FlipResult {
	if lb <= -1e100 || ub >= 1e100 {
		return FlipResult{}
	}
	rng := ub - lb
	if rng >= thetaMin {
		return FlipResult{}
	}

	var newStatus int32
	var newValue, delta float64
	switch enterStatus {
	case statusAtLower:
		newStatus = statusAtUpper
		newValue = ub
		delta = rng
	case statusAtUpper:
		newStatus = statusAtLower
		newValue = lb
		delta = -rng
	default:
		return FlipResult{}
	}

	return FlipResult{
		Flip:      true,
		NewStatus: newStatus,
		NewValue:  newValue,
		ObjDelta:  dj * delta,
	}
}
