package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/josaa-tools/seatcast/internal/adapters/repository"
	"github.com/josaa-tools/seatcast/internal/domain/model"
)

// PredictDependencies defines the interface for prediction operations.
type PredictDependencies interface {
	Predict(ctx context.Context, q model.PredictionQuery) ([]model.Preference, error)
}

// PredictHandler handles prediction requests.
type PredictHandler struct {
	deps PredictDependencies
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(deps PredictDependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// HandlePredict handles POST /predict requests. An empty shortlist is a
// successful response with count 0; only an unusable dataset maps to 503.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	const op = "api.predict"

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	prefs, err := h.deps.Predict(r.Context(), req.query())
	if err != nil {
		if errors.Is(err, repository.ErrDataUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "data_unavailable", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	if prefs == nil {
		prefs = []model.Preference{}
	}
	writeJSON(w, http.StatusOK, predictResponse{Count: len(prefs), Preferences: prefs})
}
