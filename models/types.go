package models

// Collection names in the document store.
const (
	CollectionSignatures = "signatures"
	CollectionComments   = "comments"
	CollectionLiked      = "liked"
)

// BranchOther is the sentinel branch selection that redirects to the
// free-text branch field.
const BranchOther = "Other"

// MaxCommentLength caps comment text at write time.
const MaxCommentLength = 500

// Request types

type SubmitSignatureRequest struct {
	Name        string `json:"name"`
	Roll        string `json:"roll"`
	Course      string `json:"course"`
	Branch      string `json:"branch"`
	OtherBranch string `json:"other_branch,omitempty"`
	Year        string `json:"year"`
}

type PostCommentRequest struct {
	Text string `json:"text"`
}

// Response types

type SubmitSignatureResponse struct {
	Ordinal     int         `json:"ordinal"`
	Message     string      `json:"message"`
	Certificate Certificate `json:"certificate"`
}

// Certificate is the thank-you payload rendered after a successful signature.
// Ordinal is cosmetic: it comes from the pre-insert snapshot count, not an
// authoritative counter.
type Certificate struct {
	Name    string `json:"name"`
	Branch  string `json:"branch"`
	Course  string `json:"course"`
	Year    string `json:"year"`
	Ordinal int    `json:"ordinal"`
	Date    string `json:"date"`
}

type PostCommentResponse struct {
	CommentID string `json:"comment_id"`
	Message   string `json:"message"`
}

type LikeCommentResponse struct {
	CommentID string `json:"comment_id"`
	Likes     int    `json:"likes"`
}

type CommentView struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Date  string `json:"date"`
	Likes int    `json:"likes"`
	Liked bool   `json:"liked"`
}

type ListCommentsResponse struct {
	Comments []CommentView `json:"comments"`
}

type ShareLinksResponse struct {
	URL      string `json:"url"`
	Message  string `json:"message"`
	WhatsApp string `json:"whatsapp"`
	Twitter  string `json:"twitter"`
}

// Domain types

// Signature is one petition signature document. Roll is the natural key:
// uniqueness is enforced by a pre-write equality query rather than a store
// constraint, so it holds only for non-overlapping submissions.
type Signature struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Roll      string `json:"roll"`
	Course    string `json:"course"`
	Branch    string `json:"branch"` // uppercased at write time
	Year      string `json:"year"`
	Timestamp int64  `json:"timestamp"` // writer clock, ms since epoch
}

// Comment is one comment-board document. Likes only ever grows, and only
// through the like protocol.
type Comment struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Time  int64  `json:"time"` // writer clock, ms since epoch
	Likes int    `json:"likes"`
}

// LikeMark records that a client already liked a comment. It is a per-client
// idempotency guard, not a counter: Comment.Likes remains the displayed count.
type LikeMark struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	CommentID string `json:"comment_id"`
	Time      int64  `json:"time"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
