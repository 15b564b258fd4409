package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
)

func seededStore(b *testing.B, n int) (*TreapStore, []string) {
	b.Helper()
	ctx := context.Background()
	store := NewTreapStore(WithCapacity(n))
	rng := rand.New(rand.NewSource(42))
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("bacchiatore-%d", i)
		rec, _ := store.GetOrRegister(ctx, names[i])
		rec.ApplyRatingDelta(rng.Intn(800) - 400)
	}
	store.Reindex(ctx, names...)
	return store, names
}

func BenchmarkReindex(b *testing.B) {
	ctx := context.Background()
	store, names := seededStore(b, 10_000)
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name := names[rng.Intn(len(names))]
		rec, _ := store.Get(ctx, name)
		rec.ApplyRatingDelta(rng.Intn(41) - 20)
		store.Reindex(ctx, name)
	}
}

func BenchmarkTopN(b *testing.B) {
	ctx := context.Background()
	store, _ := seededStore(b, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.TopN(ctx, 100); err != nil {
			b.Fatal(err)
		}
	}
}
