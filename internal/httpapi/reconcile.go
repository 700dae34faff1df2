package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cms_backend/internal/domain"
)

// Reconcile runs magazine assignment on demand. An empty body reconciles the
// previous month.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req domain.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, &domain.ClientInputError{Param: "body", Reason: "must be a JSON object with year, month and dry_run"})
		return
	}

	report, err := h.reconciler.Reconcile(r.Context(), req)
	if err != nil && report == nil {
		h.writeError(w, r, err)
		return
	}
	if err != nil {
		h.logger.Error("reconciliation finished with errors", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "reconciliation failed for at least one strategy",
			"data":  report,
		})
		return
	}

	message := "Magazine assignment completed"
	if report.DryRun {
		message = "Magazine assignment dry run completed"
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"data":    report,
	})
}
