package ranking

import "math"

// Rating constants.
const (
	// StartingElo is the rating of a newly registered bacchiatore.
	StartingElo = 1200

	kStandard        = 100.0
	kPlacing         = 200.0
	kOpposingPlacing = 50.0

	// scale is the rating gap at which expected scores stand 10:1.
	scale = 800.0

	placementDuels = 10
	placementDays  = 2
)

// Expected returns the logistic expected score of a competitor rated self
// against one rated other.
func Expected(self, other int) float64 {
	return 1 / (1 + math.Pow(10, float64(other-self)/scale))
}

// IsPlacing reports whether b is still in its placement period.
func IsPlacing(b Bacchiatore) bool {
	return b.TotalDuels() < placementDuels || b.TotalDays() < placementDays
}

// KFactors returns the K-factor pair for two sides given their placement status.
// A placing side converges fast; an established side facing a placing one is shielded.
func KFactors(selfPlacing, otherPlacing bool) (float64, float64) {
	switch {
	case selfPlacing && otherPlacing:
		return kPlacing, kPlacing
	case selfPlacing:
		return kPlacing, kOpposingPlacing
	case otherPlacing:
		return kOpposingPlacing, kPlacing
	default:
		return kStandard, kStandard
	}
}

// Delta scales the surprise (observed - expected) by k and truncates toward zero.
func Delta(k, observed, expected float64) int {
	return int(k * (observed - expected))
}
