package handlers

import (
	"net/http"

	"github.com/campusvoice/petition/middleware"
	"github.com/campusvoice/petition/models"
)

// Branches handles GET /branches
// Returns the course catalog with the branch options the sign form offers
// per course. Every list ends with "Other", which opens a free-text field.
func Branches(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"courses":  models.Courses(),
		"branches": models.BranchOptions,
	})
}
