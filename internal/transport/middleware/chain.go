// Package middleware holds the HTTP middleware applied around the
// standardization API: request IDs, logging, panic recovery, CORS, and
// per-IP rate limiting.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware into one. The first argument becomes the
// outermost wrapper: Chain(a, b)(h) serves a(b(h)), so a sees the request
// first and the response last.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
