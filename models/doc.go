/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitSignatureRequest: name, roll, course, branch, other_branch, year
  - PostCommentRequest: text

# Response Types

Types for JSON responses:

  - SubmitSignatureResponse: ordinal, message, certificate
  - PostCommentResponse: comment_id, message
  - LikeCommentResponse: comment_id, likes
  - ListCommentsResponse: comments ([]CommentView)
  - ShareLinksResponse: url, message, whatsapp, twitter
  - ErrorResponse: error, message

# Domain Types

Documents persisted in the store:

  - Signature: one petition signature; roll is the natural key
  - Comment: one comment-board post with a monotonic like counter
  - LikeMark: per-client liked marker backing like idempotency

# Catalog

BranchOptions maps each course to its branch choices; every list ends with
the "Other" sentinel that opens a free-text field. Courses and ValidCourse
expose the course catalog.

# Constants

Collections:

	CollectionSignatures = "signatures"
	CollectionComments   = "comments"
	CollectionLiked      = "liked"

Limits:

	MaxCommentLength = 500
*/
package models
