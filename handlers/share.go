package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dustin/go-humanize"

	"github.com/campusvoice/petition/cliparse"
	"github.com/campusvoice/petition/ledger"
	"github.com/campusvoice/petition/middleware"
	"github.com/campusvoice/petition/models"
)

type ShareHandler struct {
	gw  *ledger.Gateway
	cfg cliparse.Config
}

func NewShareHandler(gw *ledger.Gateway, cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{gw: gw, cfg: cfg}
}

// Links handles GET /share
// Builds the pre-filled share message plus WhatsApp and Twitter targets.
// The message embeds the live signature count, so a store failure degrades
// the whole request rather than serving a stale number.
func (h *ShareHandler) Links(w http.ResponseWriter, r *http.Request) {
	count, err := h.gw.CountSignatures()
	if err != nil {
		slog.Error("failed to count signatures for share message", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not build share links.")
		return
	}

	message := fmt.Sprintf(
		"Hey everyone!\n\n"+
			"A few of us students created a petition to request a more student-friendly "+
			"ticket price and an extension of the early bird dates so more people can participate.\n\n"+
			"It's completely respectful and just represents student concerns. "+
			"%s students have signed so far.\n\n"+
			"If you agree, please take 30 seconds to sign and share it with your friends:\n\n%s\n\n"+
			"The more students sign, the stronger our collective voice becomes.",
		humanize.Comma(int64(count)), h.cfg.SiteURL,
	)

	tweet := "Every student deserves to be heard. Sign the petition for fair ticket pricing."

	middleware.JSONResponse(w, http.StatusOK, models.ShareLinksResponse{
		URL:     h.cfg.SiteURL,
		Message: message,
		WhatsApp: "https://wa.me/?text=" +
			url.QueryEscape(message),
		Twitter: "https://twitter.com/intent/tweet?text=" +
			url.QueryEscape(tweet) + "&url=" + url.QueryEscape(h.cfg.SiteURL),
	})
}
