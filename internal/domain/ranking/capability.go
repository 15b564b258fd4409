package ranking

// Bacchiatore is the read/write capability the engine needs from a competitor.
// The caller owns the data; the engine only reads pre-batch state and reports
// the accumulated delta once at the end of an evaluation.
type Bacchiatore interface {
	// Rating returns the current elo.
	Rating() int
	// TotalDuels returns the number of already-ranked duels.
	TotalDuels() uint
	// TotalDays returns the number of days with at least one already-ranked duel.
	TotalDays() uint
	// ApplyRatingDelta is called exactly once per evaluation with the summed delta.
	ApplyRatingDelta(delta int)
}

// Duel is the read/write capability the engine needs from a duel record.
type Duel interface {
	// Points returns the raw points scored by side.
	Points(side Side) int
	// ReportDelta is called once per side while the duel is processed.
	ReportDelta(side Side, delta int)
}

// Side selects one of the two participants of a duel.
type Side uint8

const (
	Equal Side = iota
	Opposite
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Equal {
		return Opposite
	}
	return Equal
}

func (s Side) String() string {
	switch s {
	case Equal:
		return "equal"
	case Opposite:
		return "opposite"
	default:
		return "unknown"
	}
}
