package ledger

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/campusvoice/petition/docstore"
	"github.com/campusvoice/petition/models"
)

// PostComment validates and persists a comment. Duplicate text (exact match
// on the trimmed text) is rejected via a pre-write equality query; like the
// signature protocol, the check and the insert are not atomic.
func (g *Gateway) PostComment(text string) (models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(text) > models.MaxCommentLength {
		return models.Comment{}, ErrCommentTooLong
	}

	matches, err := docstore.Select(g.store, models.CollectionComments, func(c models.Comment) bool {
		return c.Text == text
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("duplicate check failed: %w", err)
	}
	if len(matches) > 0 {
		return models.Comment{}, ErrDuplicateComment
	}

	comment := models.Comment{
		ID:    uuid.NewString(),
		Text:  text,
		Time:  g.now().UnixMilli(),
		Likes: 0,
	}

	if err := docstore.Put(g.store, models.CollectionComments, comment.ID, comment); err != nil {
		return models.Comment{}, fmt.Errorf("failed to persist comment: %w", err)
	}

	return comment, nil
}

// LoadComments fetches all comments, hides duplicate text at read time
// (trimmed, case-insensitive; the oldest document wins), and returns them
// newest first. Duplicates that slipped past the write-time check still
// occupy storage; they are only filtered from the rendered view.
func (g *Gateway) LoadComments() ([]models.Comment, error) {
	comments, err := docstore.All[models.Comment](g.store, models.CollectionComments)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	// Oldest first so the first-seen occurrence per normalized key is the
	// earliest post.
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Time < comments[j].Time
	})

	seen := make(map[string]bool)
	deduped := comments[:0]
	for _, c := range comments {
		key := strings.ToLower(strings.TrimSpace(c.Text))
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, c)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Time > deduped[j].Time
	})

	return deduped, nil
}

// LikedComments returns the set of comment IDs the given client has already
// liked.
func (g *Gateway) LikedComments(clientID string) (map[string]bool, error) {
	marks, err := docstore.Select(g.store, models.CollectionLiked, func(m models.LikeMark) bool {
		return m.ClientID == clientID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load like marks: %w", err)
	}

	liked := make(map[string]bool, len(marks))
	for _, m := range marks {
		liked[m.CommentID] = true
	}
	return liked, nil
}

// LikeComment increments the like counter of a comment once per client.
// The per-client guard is a marker document checked before the write, and
// the increment itself is read-then-write: two different clients liking at
// the same moment can still lose one increment. Both behaviors are accepted.
func (g *Gateway) LikeComment(clientID, commentID string) (int, error) {
	marks, err := docstore.Select(g.store, models.CollectionLiked, func(m models.LikeMark) bool {
		return m.ClientID == clientID && m.CommentID == commentID
	})
	if err != nil {
		return 0, fmt.Errorf("failed to check like marks: %w", err)
	}
	if len(marks) > 0 {
		return 0, ErrAlreadyLiked
	}

	comment, found, err := docstore.Get[models.Comment](g.store, models.CollectionComments, commentID)
	if err != nil {
		return 0, fmt.Errorf("failed to load comment: %w", err)
	}
	if !found {
		return 0, ErrCommentNotFound
	}

	comment.Likes++
	if err := docstore.Put(g.store, models.CollectionComments, commentID, comment); err != nil {
		return 0, fmt.Errorf("failed to update likes: %w", err)
	}

	mark := models.LikeMark{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		CommentID: commentID,
		Time:      g.now().UnixMilli(),
	}
	if err := docstore.Put(g.store, models.CollectionLiked, mark.ID, mark); err != nil {
		return 0, fmt.Errorf("failed to record like mark: %w", err)
	}

	return comment.Likes, nil
}
