package basis

import "fmt"

// ErrTinyPivot is the kernel-level outcome signaling that the pivot element
// magnitude fell below the pivot tolerance; the driver maps this to a
// forced refactor, and a second occurrence after a fresh refactor to
// NumericDifficulty, per spec.md section 4.5.
var ErrTinyPivot = fmt.Errorf("basis: pivot element below tolerance")

// Nonbasic variable-status tags, mirrored from the root package's
// VarStatus so this package has no import cycle back to it.
const (
	AtLower int32 = -1
	AtUpper int32 = -2
	Free    int32 = -3
)

// State owns the basis header (which variable is basic in which row, and
// every variable's status), the eta chain representing B^-1, iteration
// counters, and the one dense m-length scratch array FTRAN/BTRAN write
// into. It is exclusively owned by a single solve; concurrent use from two
// goroutines is not supported (spec.md section 5).
type State struct {
	M int

	// BasicVars[i] is the variable basic in row i.
	BasicVars []int32
	// VarStatus[j] is AtLower/AtUpper/Free, or >=0 meaning basic in that row.
	VarStatus []int32

	chain etaChain

	EtaCount            int
	PivotsSinceRefactor int
	Iteration           int
	LastRefactorIter    int

	// Work is the single dense m-length scratch array FTRAN/BTRAN use;
	// callers must not assume its contents survive across calls.
	Work []float64

	// baselineFTRANNanos is the refactor trigger's FTRAN-time baseline;
	// set via RecordFTRANTiming, read by RefactorNeeded.
	baselineFTRANNanos int64
	lastFTRANNanos     int64
}

// New allocates a basis State for n+m total variables (n structural plus m
// artificial/slack) over m rows, initialized to an empty eta chain.
func New(n, m int) *State {
	return &State{
		M:         m,
		BasicVars: make([]int32, m),
		VarStatus: make([]int32, n+m),
		Work:      make([]float64, m),
	}
}

// EtaCountInChain reports the current chain length (0 right after a
// refactor).
func (s *State) EtaCountInChain() int { return s.chain.len() }

// EtaMemoryBytes reports the estimated footprint of the eta chain.
func (s *State) EtaMemoryBytes() int64 { return s.chain.mem }

// RecordFTRANTiming feeds the driver's measured FTRAN duration (in
// nanoseconds) into the refactor heuristic. The first measurement after a
// refactor establishes the baseline.
func (s *State) RecordFTRANTiming(nanos int64) {
	s.lastFTRANNanos = nanos
	if s.baselineFTRANNanos == 0 {
		s.baselineFTRANNanos = nanos
	}
}

// RefactorNeeded reports whether any of the three triggers in spec.md
// section 4.2 has fired: pivot count, eta memory, or FTRAN time drift.
func (s *State) RefactorNeeded(refactorInterval int, maxEtaMemory int64, maxFTRANFactor float64) bool {
	if s.PivotsSinceRefactor >= refactorInterval {
		return true
	}
	if s.chain.mem > maxEtaMemory {
		return true
	}
	if s.baselineFTRANNanos > 0 && maxFTRANFactor > 0 {
		if float64(s.lastFTRANNanos) > maxFTRANFactor*float64(s.baselineFTRANNanos) {
			return true
		}
	}
	return false
}

// Refactor collapses the eta chain back to the identity, per spec.md
// section 4.2: "reinitializing to the current basis header". A true LU
// refactorization is future work (see DESIGN.md); this preserves
// BasicVars/VarStatus exactly and simply forgets the accumulated etas.
func (s *State) Refactor() {
	s.chain.clear()
	s.EtaCount = 0
	s.PivotsSinceRefactor = 0
	s.LastRefactorIter = s.Iteration
	s.baselineFTRANNanos = 0
	s.lastFTRANNanos = 0
}

// CrashAllSlack initializes the all-slack basis: every row's basic variable
// is its artificial/slack column (index n+i), and every structural variable
// j < n starts nonbasic at the bound given by atUpper[j].
func (s *State) CrashAllSlack(n int, atUpper []bool) {
	for i := 0; i < s.M; i++ {
		s.BasicVars[i] = int32(n + i)
		s.VarStatus[n+i] = int32(i)
	}
	for j := 0; j < n; j++ {
		if atUpper[j] {
			s.VarStatus[j] = AtUpper
		} else {
			s.VarStatus[j] = AtLower
		}
	}
}
