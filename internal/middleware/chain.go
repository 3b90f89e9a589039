package middleware

import "net/http"

// Chain applies middleware so they execute in the order provided:
//
//	handler := Chain(mux,
//	    Recover,          // Executes first
//	    RequestLogging,   // Executes second
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	// Apply in reverse so the first listed middleware runs outermost
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
