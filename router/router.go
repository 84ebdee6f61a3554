package router

import (
	"net/http"

	"github.com/campusvoice/petition/cliparse"
	"github.com/campusvoice/petition/docstore"
	"github.com/campusvoice/petition/handlers"
	"github.com/campusvoice/petition/ledger"
	"github.com/campusvoice/petition/middleware"
)

func NewRouter(store *docstore.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	gw := ledger.New(store)

	// Initialize handlers
	sigHandler := handlers.NewSignatureHandler(gw, cfg)
	commentHandler := handlers.NewCommentHandler(gw, cfg)
	shareHandler := handlers.NewShareHandler(gw, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Signatures
	mux.HandleFunc("POST /signatures", middleware.WithLogging(sigHandler.Submit))
	mux.HandleFunc("GET /signatures", middleware.WithLogging(sigHandler.List))
	mux.HandleFunc("GET /signatures/summary", middleware.WithLogging(sigHandler.Summary))

	// Comment board
	mux.HandleFunc("POST /comments", middleware.WithLogging(commentHandler.Post))
	mux.HandleFunc("GET /comments", middleware.WithLogging(commentHandler.List))
	mux.HandleFunc("POST /comments/{id}/like", middleware.WithLogging(commentHandler.Like))

	// Form catalog and share links
	mux.HandleFunc("GET /branches", middleware.WithLogging(handlers.Branches))
	mux.HandleFunc("GET /share", middleware.WithLogging(shareHandler.Links))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("petition API v1"))
	})

	return mux
}
