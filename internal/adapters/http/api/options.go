package api

import (
	"context"
	"errors"
	"net/http"

	repository "github.com/josaa-tools/seatcast/internal/adapters/repository"
)

// OptionsDependencies defines the interface for facet listing.
type OptionsDependencies interface {
	Facets(ctx context.Context) (repository.Facets, error)
}

// OptionsHandler serves the distinct filter values for building request forms.
type OptionsHandler struct {
	deps OptionsDependencies
}

// NewOptionsHandler creates a new options handler.
func NewOptionsHandler(deps OptionsDependencies) *OptionsHandler {
	return &OptionsHandler{deps: deps}
}

// HandleGetOptions handles GET /options requests.
func (h *OptionsHandler) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_options"

	facets, err := h.deps.Facets(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrDataUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "data_unavailable", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, facets)
}
