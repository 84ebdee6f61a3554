package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/campusvoice/petition/cliparse"
	"github.com/campusvoice/petition/ledger"
	"github.com/campusvoice/petition/middleware"
	"github.com/campusvoice/petition/models"
)

type CommentHandler struct {
	gw  *ledger.Gateway
	cfg cliparse.Config
}

func NewCommentHandler(gw *ledger.Gateway, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{gw: gw, cfg: cfg}
}

// Post handles POST /comments
func (h *CommentHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req models.PostCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, err := h.gw.PostComment(req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrEmptyComment):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Please write something before posting.")
		case errors.Is(err, ledger.ErrCommentTooLong):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Comment too long (max 500 characters).")
		case errors.Is(err, ledger.ErrDuplicateComment):
			middleware.ErrorResponse(w, http.StatusConflict, "This comment already exists.")
		default:
			slog.Error("failed to post comment", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post comment. Try again.")
		}
		return
	}

	slog.Info("comment posted", "comment_id", comment.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.PostCommentResponse{
		CommentID: comment.ID,
		Message:   "Comment posted!",
	})
}

// List handles GET /comments
// Returns comments newest first with duplicate text hidden. When the caller
// sends an X-Client-UUID header, each entry carries its liked state for that
// client.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.gw.LoadComments()
	if err != nil {
		slog.Error("failed to load comments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not load comments.")
		return
	}

	liked := map[string]bool{}
	if clientID := r.Header.Get("X-Client-UUID"); clientID != "" {
		liked, err = h.gw.LikedComments(clientID)
		if err != nil {
			slog.Error("failed to load liked set", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not load comments.")
			return
		}
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, c := range comments {
		date := ""
		if c.Time != 0 {
			date = time.UnixMilli(c.Time).Format("2 Jan 2006")
		}
		views = append(views, models.CommentView{
			ID:    c.ID,
			Text:  c.Text,
			Date:  date,
			Likes: c.Likes,
			Liked: liked[c.ID],
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListCommentsResponse{
		Comments: views,
	})
}

// Like handles POST /comments/{id}/like
func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
	commentID := r.PathValue("id")
	if commentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "comment id is required")
		return
	}

	clientID := r.Header.Get("X-Client-UUID")
	if clientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Client-UUID header required")
		return
	}
	if err := uuid.Validate(clientID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Client-UUID must be a valid UUID")
		return
	}

	likes, err := h.gw.LikeComment(clientID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrCommentNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Comment not found")
		case errors.Is(err, ledger.ErrAlreadyLiked):
			middleware.ErrorResponse(w, http.StatusConflict, "You have already liked this comment.")
		default:
			slog.Error("failed to like comment", "error", err, "comment_id", commentID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to like comment. Try again.")
		}
		return
	}

	slog.Info("comment liked", "comment_id", commentID, "likes", likes)

	middleware.JSONResponse(w, http.StatusOK, models.LikeCommentResponse{
		CommentID: commentID,
		Likes:     likes,
	})
}
