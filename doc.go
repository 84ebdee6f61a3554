/*
Package main provides the entry point for the petition API server.

The server backs a single-page petition site: students sign with their roll
number (each roll signs at most once), aggregate counts feed two charts and
a progress bar, and a flat comment board supports freeform posts with
like counting.

# Starting the Server

	go run . -p 3324 -d data/petition.db

Or via environment variables (a local .env file is loaded when present):

	PORT=3324 DB_PATH=data/petition.db SITE_URL=https://petition.example.edu/ go run .

# Configuration

Optional settings, all with defaults:

  - PORT (-p): server port (default: 3324)
  - DB_PATH (-d): document store file (default: data/petition.db)
  - SITE_URL (-site): public petition URL used in share links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - docstore: schemaless JSON document store on bbolt
  - ledger: the signature/comment/like protocols (all store access)
  - view: pure view-model builder (histograms, ticker, paged list)
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain, request, and response types
  - cliparse: configuration parsing

Duplicate prevention is a pre-write equality query, not a store constraint:
the roll-uniqueness invariant is best-effort under concurrent submissions.
See the ledger package documentation for the exact protocol semantics.
*/
package main
