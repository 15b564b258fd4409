// Package model contains domain records passed between layers.
package model

import "github.com/okian/bacrama/internal/domain/ranking"

// Compile-time capability checks.
var (
	_ ranking.Bacchiatore = (*Bacchiatore)(nil)
	_ ranking.Duel        = (*Duel)(nil)
)

// Bacchiatore is the persistent record of a competitor across batches.
type Bacchiatore struct {
	Name      string
	Elo       int  // current rating, updated in place by evaluation
	Duels     uint // already-ranked duels
	Days      uint // days with at least one ranked duel
	Victories uint // duels won with strictly more points
}

// NewBacchiatore returns a record at the starting rating.
func NewBacchiatore(name string) *Bacchiatore {
	return &Bacchiatore{Name: name, Elo: ranking.StartingElo}
}

func (b *Bacchiatore) Rating() int      { return b.Elo }
func (b *Bacchiatore) TotalDuels() uint { return b.Duels }
func (b *Bacchiatore) TotalDays() uint  { return b.Days }

// ApplyRatingDelta moves the stored rating by delta.
func (b *Bacchiatore) ApplyRatingDelta(delta int) { b.Elo += delta }

// Placing reports whether the record is still in its placement period.
func (b *Bacchiatore) Placing() bool { return ranking.IsPlacing(b) }
