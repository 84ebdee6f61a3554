package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusvoice/petition/docstore"
	"github.com/campusvoice/petition/models"
)

var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrDuplicateRoll    = errors.New("this roll number has already signed")
	ErrEmptyComment     = errors.New("comment text is required")
	ErrCommentTooLong   = errors.New("comment exceeds the maximum length")
	ErrDuplicateComment = errors.New("this comment already exists")
	ErrAlreadyLiked     = errors.New("comment already liked by this client")
	ErrCommentNotFound  = errors.New("comment not found")
)

// Gateway mediates all reads and writes of signature and comment documents.
// Every multi-step protocol here (duplicate check then insert, read then
// increment) is check-then-act against the store: concurrent callers can
// race between the check and the write. The gateway tolerates that rather
// than pretending the store offers stronger guarantees.
type Gateway struct {
	store *docstore.Store
	now   func() time.Time
}

func New(store *docstore.Store) *Gateway {
	return &Gateway{store: store, now: time.Now}
}

// SubmitSignature validates the candidate, rejects duplicate roll numbers
// via a pre-write equality query, and persists the signature with a
// writer-assigned timestamp. The returned ordinal is cosmetic: pre-insert
// count plus one, not an authoritative sequence.
func (g *Gateway) SubmitSignature(req models.SubmitSignatureRequest) (models.Signature, int, error) {
	name := strings.TrimSpace(req.Name)
	roll := strings.TrimSpace(req.Roll)
	course := strings.TrimSpace(req.Course)
	branch := strings.TrimSpace(req.Branch)
	year := strings.TrimSpace(req.Year)

	// "Other" redirects to the free-text branch field.
	if branch == models.BranchOther {
		branch = strings.TrimSpace(req.OtherBranch)
		if branch == "" {
			return models.Signature{}, 0, ErrMissingFields
		}
	}

	if name == "" || roll == "" || course == "" || branch == "" || year == "" {
		return models.Signature{}, 0, ErrMissingFields
	}
	if !models.ValidCourse(course) {
		return models.Signature{}, 0, ErrMissingFields
	}

	// Duplicate check. Rolls are compared trimmed; historical documents may
	// predate trimming at write time.
	matches, err := docstore.Select(g.store, models.CollectionSignatures, func(s models.Signature) bool {
		return strings.TrimSpace(s.Roll) == roll
	})
	if err != nil {
		return models.Signature{}, 0, fmt.Errorf("duplicate check failed: %w", err)
	}
	if len(matches) > 0 {
		return models.Signature{}, 0, ErrDuplicateRoll
	}

	count, err := docstore.Count(g.store, models.CollectionSignatures)
	if err != nil {
		return models.Signature{}, 0, fmt.Errorf("failed to count signatures: %w", err)
	}

	sig := models.Signature{
		ID:        uuid.NewString(),
		Name:      name,
		Roll:      roll,
		Course:    course,
		Branch:    strings.ToUpper(branch),
		Year:      year,
		Timestamp: g.now().UnixMilli(),
	}

	if err := docstore.Put(g.store, models.CollectionSignatures, sig.ID, sig); err != nil {
		return models.Signature{}, 0, fmt.Errorf("failed to persist signature: %w", err)
	}

	return sig, count + 1, nil
}

// LoadSignatures fetches the complete current snapshot. Callers replace any
// cached snapshot wholesale; the gateway never patches a stale one.
func (g *Gateway) LoadSignatures() ([]models.Signature, error) {
	sigs, err := docstore.All[models.Signature](g.store, models.CollectionSignatures)
	if err != nil {
		return nil, fmt.Errorf("failed to load signatures: %w", err)
	}
	return sigs, nil
}

// CountSignatures returns the current number of signature documents.
func (g *Gateway) CountSignatures() (int, error) {
	count, err := docstore.Count(g.store, models.CollectionSignatures)
	if err != nil {
		return 0, fmt.Errorf("failed to count signatures: %w", err)
	}
	return count, nil
}
