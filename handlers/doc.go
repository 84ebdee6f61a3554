/*
Package handlers contains the HTTP request handlers for the petition API.

# Handler Types

Each handler is a struct holding the ledger gateway and config:

  - SignatureHandler: submission, full view model, hero summary
  - CommentHandler: comment board posts, listing, likes
  - ShareHandler: pre-filled share links

plus the standalone Branches catalog handler. Handlers are created via
constructor functions:

	sigHandler := handlers.NewSignatureHandler(gw, cfg)

# Signature Flow

	POST /signatures         → Submit (duplicate-roll check, certificate)
	GET  /signatures         → List (histograms, ticker, paged list)
	GET  /signatures/summary → Summary (count, goal percent, pill)

The paged list uses the "pages" query parameter: each page reveals 12 more
records, mirroring the show-more affordance.

# Comment Flow

	POST /comments           → Post (length cap, duplicate-text check)
	GET  /comments           → List (deduped, newest first, liked flags)
	POST /comments/{id}/like → Like (idempotent per client)

Like operations require the X-Client-UUID header; List uses it when present
to mark already-liked entries.

# Error Mapping

Ledger sentinel errors map onto HTTP statuses: validation failures → 400,
duplicate roll/comment and repeated likes → 409, unknown comment → 404,
store failures → 500. Every failure path produces a JSON error body with a
user-facing message.
*/
package handlers
