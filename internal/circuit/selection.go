package circuit

import "github.com/alexiusacademia/gocable/internal/bs7671"

// CorrectedCurrent applies grouping and thermal derating to the design
// current: It = Ib / (Cg × Cd). Both factors are expected in (0, 1].
func CorrectedCurrent(designCurrent, grouping, derating float64) float64 {
	return designCurrent / (grouping * derating)
}

// SelectCable returns the smallest table entry whose rated current covers
// the corrected current. When nothing is large enough the largest entry is
// returned with adequate == false. The table must be ascending.
func SelectCable(corrected float64, table []bs7671.CableCandidate) (cable bs7671.CableCandidate, adequate bool) {
	if len(table) == 0 {
		return bs7671.CableCandidate{}, false
	}
	for _, c := range table {
		if c.RatedCurrentAmps >= corrected {
			return c, true
		}
	}
	return table[len(table)-1], false
}
