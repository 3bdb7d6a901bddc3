package simplex

// perturbFraction scales FeasibilityTol down to the maximum perturbation
// magnitude, per spec.md section 4.5 ("ε in [0, feas_tol * 10^-3]").
const perturbFraction = 1e-3

// perturb applies a deterministic Wolfe-style bound perturbation to break
// cycling: every variable's bounds are nudged inward by a pseudo-random
// amount seeded only by its index, preserving determinism (spec.md
// section 5). origLB/origUB capture the exact pre-perturbation bounds so
// unperturb can restore them byte-for-byte.
func (sc *SolverContext) perturb() {
	sc.origLB = append(sc.origLB[:0], sc.lb...)
	sc.origUB = append(sc.origUB[:0], sc.ub...)

	maxEps := sc.env.FeasibilityTol * perturbFraction
	for j := range sc.lb {
		eps := hashEpsilon(j, maxEps)
		if sc.lb[j] > -sc.env.Infinity {
			sc.lb[j] += eps
		}
		if sc.ub[j] < sc.env.Infinity {
			sc.ub[j] -= eps
		}
		if sc.lb[j] > sc.ub[j] {
			mid := (sc.origLB[j] + sc.origUB[j]) / 2
			sc.lb[j] = mid
			sc.ub[j] = mid
		}
	}
	sc.perturbed = true
}

// unperturb restores the bounds perturb read, exactly. A no-op if perturb
// was never called.
func (sc *SolverContext) unperturb() {
	if !sc.perturbed {
		return
	}
	copy(sc.lb, sc.origLB)
	copy(sc.ub, sc.origUB)
	sc.perturbed = false
}

// hashEpsilon derives a deterministic pseudo-random value in [0, max) from
// variable index j alone — no wall-clock or global RNG state, so a solve
// is bit-for-bit reproducible given the same input and parameters
// (spec.md section 5).
func hashEpsilon(j int, max float64) float64 {
	h := uint64(j)*2654435761 + 1
	h ^= h >> 13
	h *= 0x2545F4914F6CDD1D
	h ^= h >> 29
	const bucket = 1 << 20
	return float64(h%bucket) / bucket * max
}
