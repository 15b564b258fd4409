package model

import "github.com/okian/bacrama/internal/domain/ranking"

// Duel is a single scored contest read from an input file.
// Fields mirror the CSV columns.
type Duel struct {
	Equal          string
	Opposite       string
	EqualPoints    int
	OppositePoints int

	// Deltas reported by the engine; nil until the duel is evaluated.
	EqualDelta    *int
	OppositeDelta *int
}

// Name returns the bacchiatore playing side.
func (d *Duel) Name(side ranking.Side) string {
	if side == ranking.Equal {
		return d.Equal
	}
	return d.Opposite
}

// Points implements ranking.Duel.
func (d *Duel) Points(side ranking.Side) int {
	if side == ranking.Equal {
		return d.EqualPoints
	}
	return d.OppositePoints
}

// ReportDelta implements ranking.Duel.
func (d *Duel) ReportDelta(side ranking.Side, delta int) {
	if side == ranking.Equal {
		d.EqualDelta = &delta
		return
	}
	d.OppositeDelta = &delta
}

// Winner returns the side with strictly more points; ok is false on a draw.
func (d *Duel) Winner() (side ranking.Side, ok bool) {
	switch {
	case d.EqualPoints > d.OppositePoints:
		return ranking.Equal, true
	case d.OppositePoints > d.EqualPoints:
		return ranking.Opposite, true
	default:
		return 0, false
	}
}

// Evaluated reports whether both deltas have been reported.
func (d *Duel) Evaluated() bool {
	return d.EqualDelta != nil && d.OppositeDelta != nil
}
