// Package types contains common types used across the application
package types

import "github.com/okian/bacrama/internal/domain/model"

// Entry represents a leaderboard row
type Entry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Elo       int    `json:"elo"`
	Duels     uint   `json:"duels"`
	Days      uint   `json:"days"`
	Victories uint   `json:"victories"`
	Placing   bool   `json:"placing"`
}

// NewEntry snapshots a bacchiatore record at the given rank.
func NewEntry(rank int, b *model.Bacchiatore) Entry {
	return Entry{
		Rank:      rank,
		Name:      b.Name,
		Elo:       b.Elo,
		Duels:     b.Duels,
		Days:      b.Days,
		Victories: b.Victories,
		Placing:   b.Placing(),
	}
}
