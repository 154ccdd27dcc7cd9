package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type handler struct {
	decisions interfaces.DecisionUseCase
}

type decisionList struct {
	Total     int               `json:"total"`
	Decisions []*model.Decision `json:"decisions"`
}

func newDecisionList(ds []*model.Decision) *decisionList {
	if ds == nil {
		ds = []*model.Decision{}
	}
	return &decisionList{Total: len(ds), Decisions: ds}
}

// listDecisions serves GET /api/decisions?limit=N&type=T
func (h *handler) listDecisions(w http.ResponseWriter, r *http.Request) {
	limit := types.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, goerr.Wrap(err, "limit must be a number",
				goerr.V("limit", v),
				goerr.T(types.ErrTagInvalidArgument),
			))
			return
		}
		limit = n
	}

	ds, err := h.decisions.List(r.Context(), limit, types.DecisionType(r.URL.Query().Get("type")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, newDecisionList(ds))
}

// getDecision serves GET /api/decisions/{id}
func (h *handler) getDecision(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "decision id must be a number",
			goerr.V("id", raw),
			goerr.T(types.ErrTagInvalidArgument),
		))
		return
	}

	d, err := h.decisions.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if d == nil {
		writeJSON(w, r, http.StatusNotFound, map[string]string{
			"error": "decision not found",
		})
		return
	}

	writeJSON(w, r, http.StatusOK, d)
}

// search serves GET /api/search?q=...
func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	ds, err := h.decisions.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, newDecisionList(ds))
}

// stats serves GET /api/stats
func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.decisions.Statistics(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}
