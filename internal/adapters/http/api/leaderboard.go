package api

import (
	"context"
	"net/http"
	"strconv"
)

// LeaderboardDependencies returns the best limit entries of a run.
type LeaderboardDependencies interface {
	Leaderboard(ctx context.Context, limit int) ([]Entry, error)
}

// LeaderboardHandler serves GET /leaderboard?limit=N.
type LeaderboardHandler struct {
	deps     LeaderboardDependencies
	maxLimit int
}

// NewLeaderboardHandler creates a leaderboard handler that never returns
// more than maxLimit entries.
func NewLeaderboardHandler(deps LeaderboardDependencies, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetLeaderboard answers with a JSON array of entries. Without a limit
// the first maxLimit entries are returned.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	n, code, err := h.limit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, code, wrap(op, err))
		return
	}

	entries, err := h.deps.Leaderboard(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// limit parses the limit query parameter and returns the error code to
// report when it is rejected.
func (h *LeaderboardHandler) limit(r *http.Request) (int, string, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.maxLimit, "", nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, "bad_request", ErrBadRequest
	}
	if n > h.maxLimit {
		return 0, "limit_exceeded", ErrLimitExceeded
	}
	return n, "", nil
}
