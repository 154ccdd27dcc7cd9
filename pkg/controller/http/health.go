package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
)

// health reports service status. A store that cannot be read makes the service unhealthy.
func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: "devmemory",
		Version: types.Version,
	}
	code := http.StatusOK

	stats, err := h.decisions.Statistics(r.Context())
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to read decision store", "error", err)
		status.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	} else {
		status.Decisions = stats.Total
	}

	writeJSON(w, r, code, status)
}
