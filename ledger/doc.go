/*
Package ledger implements the signature ledger gateway: all reads and
writes of signature, comment, and like documents go through it.

# Signature Protocol

SubmitSignature runs the submission protocol:

 1. Trim and validate all fields locally (no store access on failure).
 2. Equality query for an existing document with the same roll number.
 3. Any match → ErrDuplicateRoll, no write.
 4. Otherwise uppercase the branch and persist with a writer-assigned
    millisecond timestamp.
 5. Return the stored document plus a cosmetic ordinal (pre-insert count
    plus one).

Steps 2-4 are not atomic. Two concurrent submissions with the same roll can
both pass the check and both insert; the store has no unique-constraint
primitive to close that window and the protocol does not try to fake one.
The roll-uniqueness invariant is therefore best-effort: guaranteed for
sequential submissions, bounded-probability under concurrency.

# Comment Protocol

PostComment enforces non-empty text and the 500-character cap, then runs
the same check-then-act duplicate query on exact text. LoadComments
additionally hides duplicates at read time (trimmed, lowercased key,
oldest occurrence wins) so duplicates that raced past the write check never
reach the rendered view.

# Like Protocol

LikeComment reads the current count, writes count+1, and records a
(client, comment) marker document. The marker makes the operation
idempotent per client; it does not serialize increments across clients, so
simultaneous likes from different clients can lose an update.

# Errors

Validation and duplicate rejections are sentinel errors (ErrMissingFields,
ErrDuplicateRoll, ErrEmptyComment, ErrCommentTooLong, ErrDuplicateComment,
ErrAlreadyLiked, ErrCommentNotFound) checked with errors.Is. Store
failures are wrapped with context.
*/
package ledger
