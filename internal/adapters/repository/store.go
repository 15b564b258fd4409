// Package repository holds the cross-batch registry of bacchiatori and the
// rating order used to build leaderboards.
package repository

import (
	"context"

	"github.com/okian/bacrama/internal/domain/model"
	"github.com/okian/bacrama/internal/domain/types"
)

// Store provides access to the registered bacchiatori.
//
// Records are returned by pointer and mutated in place by evaluation. The
// rating order is only refreshed by Reindex, so callers must reindex every
// record whose Elo changed before reading leaderboards.
type Store interface {
	// GetOrRegister returns the record for name, creating it at the starting
	// rating if unknown. created reports whether a new record was made.
	GetOrRegister(ctx context.Context, name string) (b *model.Bacchiatore, created bool)

	// Get returns the record for name or ErrNotFound.
	Get(ctx context.Context, name string) (*model.Bacchiatore, error)

	// Reindex refreshes the rating order of the named records.
	Reindex(ctx context.Context, names ...string)

	// Rank returns the leaderboard entry of name or ErrNotFound.
	Rank(ctx context.Context, name string) (types.Entry, error)

	// TopN returns the best n entries ordered by elo desc, name asc.
	TopN(ctx context.Context, n int) ([]types.Entry, error)

	// All returns the full leaderboard.
	All(ctx context.Context) []types.Entry

	// Count returns the number of registered bacchiatori.
	Count(ctx context.Context) int
}
