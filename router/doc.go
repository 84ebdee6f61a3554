/*
Package router wires the HTTP routes to their handlers using Go 1.22+
method routing on http.ServeMux.

NewRouter constructs the ledger gateway and all handlers from the store and
config, so main only deals with the mux:

	mux := router.NewRouter(store, cfg)
	server := http.Server{Handler: middleware.CORS(mux)}
*/
package router
