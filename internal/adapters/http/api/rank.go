package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const rankPrefix = "/rank/"

// RankDependencies looks up one bacchiatore's leaderboard entry.
type RankDependencies interface {
	Rank(ctx context.Context, name string) (Entry, error)
}

// RankHandler serves GET /rank/{name}.
type RankHandler struct {
	deps RankDependencies
}

// NewRankHandler creates a rank handler.
func NewRankHandler(deps RankDependencies) *RankHandler {
	return &RankHandler{deps: deps}
}

// HandleGetRank answers with the entry of the escaped name following /rank/.
func (h *RankHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_rank"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	name, ok := rankName(r.URL)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest))
		return
	}

	entry, err := h.deps.Rank(r.Context(), name)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, entry)
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
	}
}

// rankName extracts a single non-empty path segment after the prefix.
// Names may contain spaces, so the escaped path is decoded explicitly.
func rankName(u *url.URL) (string, bool) {
	raw := strings.TrimPrefix(u.EscapedPath(), rankPrefix)
	if raw == "" || strings.Contains(raw, "/") {
		return "", false
	}
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}
