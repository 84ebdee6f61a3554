package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/campusvoice/petition/cliparse"
	"github.com/campusvoice/petition/ledger"
	"github.com/campusvoice/petition/middleware"
	"github.com/campusvoice/petition/models"
	"github.com/campusvoice/petition/view"
)

type SignatureHandler struct {
	gw  *ledger.Gateway
	cfg cliparse.Config
}

func NewSignatureHandler(gw *ledger.Gateway, cfg cliparse.Config) *SignatureHandler {
	return &SignatureHandler{gw: gw, cfg: cfg}
}

// Submit handles POST /signatures
func (h *SignatureHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSignatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sig, ordinal, err := h.gw.SubmitSignature(req)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrMissingFields):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Please fill all fields.")
		case errors.Is(err, ledger.ErrDuplicateRoll):
			middleware.ErrorResponse(w, http.StatusConflict, "This roll number has already signed.")
		default:
			slog.Error("failed to submit signature", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign. Check connection and try again.")
		}
		return
	}

	slog.Info("signature recorded", "signature_id", sig.ID, "branch", sig.Branch, "ordinal", ordinal)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitSignatureResponse{
		Ordinal: ordinal,
		Message: "Thank you! Your signature & pledge have been recorded.",
		Certificate: models.Certificate{
			Name:    sig.Name,
			Branch:  sig.Branch,
			Course:  sig.Course,
			Year:    sig.Year,
			Ordinal: ordinal,
			Date:    time.Now().Format("2 January 2006"),
		},
	})
}

// List handles GET /signatures
// The optional "pages" query parameter (default 1) controls how many
// show-more pages of the list are revealed.
func (h *SignatureHandler) List(w http.ResponseWriter, r *http.Request) {
	pages := 1
	if raw := r.URL.Query().Get("pages"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "pages must be a positive integer")
			return
		}
		pages = n
	}

	snapshot, err := h.gw.LoadSignatures()
	if err != nil {
		slog.Error("failed to load signatures", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not load signatures.")
		return
	}

	m := view.Build(snapshot, time.Now())
	for i := 0; i < pages && (i == 0 || m.HasMore()); i++ {
		m.ShowMore()
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"total_count":      m.TotalCount,
		"percent":          m.Percent,
		"progress_width":   m.ProgressWidth,
		"pill_text":        m.PillText,
		"branch_histogram": m.BranchHistogram,
		"year_histogram":   m.YearHistogram,
		"recent_feed":      m.RecentFeed,
		"signatures":       m.Visible(),
		"shown":            m.Shown(),
		"more":             m.HasMore(),
	})
}

// Summary handles GET /signatures/summary
// Returns the hero counters without the full list.
func (h *SignatureHandler) Summary(w http.ResponseWriter, r *http.Request) {
	count, err := h.gw.CountSignatures()
	if err != nil {
		slog.Error("failed to count signatures", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not load signature count.")
		return
	}

	summary := struct {
		TotalCount    int     `json:"total_count"`
		Percent       int     `json:"percent"`
		ProgressWidth float64 `json:"progress_width"`
		PillText      string  `json:"pill_text"`
	}{
		TotalCount:    count,
		Percent:       view.Percent(count),
		ProgressWidth: view.ProgressWidth(count),
		PillText:      view.Pill(count),
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
