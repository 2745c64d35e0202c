package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	repository "github.com/josaa-tools/seatcast/internal/adapters/repository"
)

// ExportDependencies defines the interface for dataset export.
type ExportDependencies interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}

// ExportHandler streams the current cutoff snapshot as a CSV attachment.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /export.csv requests.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export"

	filename := fmt.Sprintf("seatcast_cutoffs_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.deps.ExportCSV(r.Context(), w); err != nil {
		// Headers may already be on the wire; a JSON error body is only
		// useful when nothing was written yet.
		if errors.Is(err, repository.ErrDataUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "data_unavailable", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
