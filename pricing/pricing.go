// Package pricing implements entering-variable selection: Dantzig (full),
// partial (sectioned), steepest-edge, and Devex, sharing a single
// attractiveness rule and a two-phase "step2" completion that guarantees
// an empty candidate set truly means optimality.
package pricing

// Strategy selects which candidate-scanning rule State.Scan uses.
type Strategy int

const (
	Dantzig Strategy = iota
	Partial
	SteepestEdge
	Devex
)

// InvalidateMask selects what Invalidate resets.
type InvalidateMask int

const (
	InvalidateCandidates InvalidateMask = 1 << iota
	InvalidateWeights
	InvalidateAll = InvalidateCandidates | InvalidateWeights
)

// candidateLevels is the number of escalation levels (L in spec.md
// section 3, L ~ 3-5). It sizes the per-level candidate buffers; Scan and
// Step2 neither fill nor read those buffers.
const candidateLevels = 4

// Candidate is one entering-variable candidate: its index and the score
// used to rank it (|reduced cost| for Dantzig/partial, dj^2/gamma for
// SE/Devex).
type Candidate struct {
	Var   int32
	Score float64
}

// State holds everything persistent across pricing calls for one solve:
// the strategy tag, per-level candidate buffers, SE/Devex weights, partial
// pricing's section cursor, and invalidation flags.
type State struct {
	Strategy Strategy
	N        int // total variables, n+m

	SectionSize int
	NumSections int
	CurrentSection int

	// Weights holds steepest-edge/Devex reference weights, length N,
	// initialized to 1.0. Unused for Dantzig/Partial.
	Weights []float64

	candidates     [candidateLevels][]Candidate
	candidateCount [candidateLevels]int
	cachedCount    [candidateLevels]int // -1 = invalid

	candidatesInvalid bool
	weightsInvalid    bool

	IterationOfLastPivot int
	ScanCount            int
	EscalationCount      int
}

// New constructs pricing state for n+m variables. sectionSize is only used
// for Partial (the caller picks section size per spec.md section 4.3 —
// default 100, or smaller for tiny problems); it is ignored for other
// strategies.
func New(strategy Strategy, total, sectionSize int) *State {
	s := &State{
		Strategy:    strategy,
		N:           total,
		SectionSize: sectionSize,
	}
	for l := 0; l < candidateLevels; l++ {
		s.cachedCount[l] = -1
	}
	if strategy == Partial {
		if sectionSize < 1 {
			sectionSize = 1
		}
		s.NumSections = (total + sectionSize - 1) / sectionSize
		if s.NumSections < 1 {
			s.NumSections = 1
		}
	}
	if strategy == SteepestEdge || strategy == Devex {
		s.Weights = make([]float64, total)
		for i := range s.Weights {
			s.Weights[i] = 1.0
		}
	}
	return s
}

// ChooseStrategy implements the setup-time selection rule from spec.md
// section 4.3: Dantzig below a small-problem threshold, the caller's
// explicit request for SE/Devex otherwise honored, and partial pricing as
// the default for larger problems with no explicit request.
func ChooseStrategy(n int, smallThreshold int, requested Strategy, requestedExplicitly bool) Strategy {
	if n < smallThreshold {
		return Dantzig
	}
	if requestedExplicitly && (requested == SteepestEdge || requested == Devex) {
		return requested
	}
	return Partial
}

// Invalidate clears candidate counts and/or resets weights per mask,
// deferring the actual rebuild to the next Scan call.
func (s *State) Invalidate(mask InvalidateMask) {
	if mask&InvalidateCandidates != 0 {
		s.candidatesInvalid = true
		for l := range s.cachedCount {
			s.cachedCount[l] = -1
		}
	}
	if mask&InvalidateWeights != 0 {
		s.weightsInvalid = true
		for i := range s.Weights {
			s.Weights[i] = 1.0
		}
		s.weightsInvalid = false
	}
}
