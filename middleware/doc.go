/*
Package middleware provides HTTP plumbing shared by all handlers: request
logging, JSON response and body helpers, CORS for the static frontend, and
client IP extraction.

WithLogging wraps individual handler funcs; CORS wraps the whole mux:

	mux.HandleFunc("POST /signatures", middleware.WithLogging(h.Submit))
	server := http.Server{Handler: middleware.CORS(mux)}
*/
package middleware
