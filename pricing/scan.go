package pricing

import (
	"golang.org/x/exp/slices"

	"github.com/sparselp/engine/numeric"
)

// ScanDantzig scans every nonbasic variable and returns the k most
// violating candidates by |dj|, sorted descending by score. k small is the
// common case (often 1), so an insertion-sort-style accumulation is used
// rather than a full sort.
func (s *State) ScanDantzig(dj []float64, varStatus []int32, tau float64, k int) []Candidate {
	s.ScanCount++
	out := make([]Candidate, 0, k)
	for j, st := range varStatus {
		d := dj[j]
		if !Attractive(st, d, tau) {
			continue
		}
		score := numeric.SafeAbs(d)
		out = insertTopK(out, Candidate{Var: int32(j), Score: score}, k)
	}
	return out
}

// insertTopK inserts c into the descending-sorted top-k buffer out,
// dropping the weakest candidate if already at capacity k.
func insertTopK(out []Candidate, c Candidate, k int) []Candidate {
	pos := len(out)
	for pos > 0 && out[pos-1].Score < c.Score {
		pos--
	}
	if pos == k {
		return out // weaker than every kept candidate and buffer full
	}
	out = slices.Insert(out, pos, c)
	if len(out) > k {
		out = slices.Delete(out, k, len(out))
	}
	return out
}

// ScanPartial scans only the variables in the current section, advancing
// the section cursor afterward. If the section yields no candidates it
// counts one escalation and tries each remaining section in order,
// returning the first non-empty result; nil means no section has a
// candidate.
func (s *State) ScanPartial(dj []float64, varStatus []int32, tau float64) []Candidate {
	s.ScanCount++
	section := s.CurrentSection
	s.CurrentSection = (s.CurrentSection + 1) % s.NumSections

	out := s.scanSection(dj, varStatus, tau, section)
	if len(out) > 0 {
		return out
	}

	s.EscalationCount++
	for tries := 1; tries < s.NumSections; tries++ {
		wider := (section + tries) % s.NumSections
		out = s.scanSection(dj, varStatus, tau, wider)
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func (s *State) scanSection(dj []float64, varStatus []int32, tau float64, section int) []Candidate {
	lo := section * s.SectionSize
	hi := lo + s.SectionSize
	if hi > s.N {
		hi = s.N
	}
	var out []Candidate
	for j := lo; j < hi; j++ {
		if Attractive(varStatus[j], dj[j], tau) {
			out = append(out, Candidate{Var: int32(j), Score: numeric.SafeAbs(dj[j])})
		}
	}
	return out
}

// weightFloor bounds steepest-edge/Devex denominators away from zero to
// avoid a division blow-up on a near-degenerate weight.
const weightFloor = 1e-10

// ScanSteepestEdge scans every attractive nonbasic variable and returns the
// single best by score = dj^2 / gamma_j, shared by both SteepestEdge and
// Devex strategies (they differ only in how weights are maintained after a
// pivot, not in how candidates are scored here).
func (s *State) ScanSteepestEdge(dj []float64, varStatus []int32, tau float64) []Candidate {
	s.ScanCount++
	var best Candidate
	found := false
	for j, st := range varStatus {
		d := dj[j]
		if !Attractive(st, d, tau) {
			continue
		}
		gamma := s.Weights[j]
		if gamma < weightFloor {
			gamma = weightFloor
		}
		score := d * d / gamma
		if !found || score > best.Score {
			best = Candidate{Var: int32(j), Score: score}
			found = true
		}
	}
	if !found {
		return nil
	}
	return []Candidate{best}
}

// Step2 is the two-phase completion from spec.md section 4.3: when the
// current strategy's normal scan returns nothing, escalate to a scan that
// cannot possibly miss a candidate, so that "still empty" truly implies
// optimality. Dantzig already scans everything, so it returns immediately.
func (s *State) Step2(dj []float64, varStatus []int32, tau float64) []Candidate {
	switch s.Strategy {
	case Dantzig:
		return nil
	case Partial:
		s.EscalationCount++
		var out []Candidate
		for section := 0; section < s.NumSections; section++ {
			out = append(out, s.scanSection(dj, varStatus, tau, section)...)
		}
		return out
	case SteepestEdge, Devex:
		s.EscalationCount++
		return s.ScanSteepestEdge(dj, varStatus, tau)
	default:
		return nil
	}
}
