package pricing

import "github.com/sparselp/engine/basis"

// Attractive implements the shared attractiveness rule from spec.md
// section 4.3: whether nonbasic variable status s with reduced cost dj can
// improve the objective by tolerance tau.
//
//	s == AtLower: attractive iff dj < -tau
//	s == AtUpper: attractive iff dj > +tau
//	s == Free:    attractive iff |dj| > tau
//	s >= 0 (basic): never attractive
func Attractive(status int32, dj, tau float64) bool {
	switch {
	case status == basis.AtLower:
		return dj < -tau
	case status == basis.AtUpper:
		return dj > tau
	case status == basis.Free:
		return dj > tau || dj < -tau
	default:
		return false // basic
	}
}
