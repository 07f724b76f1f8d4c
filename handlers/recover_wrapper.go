package handlers

import (
	"log"
	"net/http"
	"runtime"
)

// RecoverWrapper keeps a panicking handler from taking the process down:
// the stack is logged server-side and the client gets a generic 500.
func RecoverWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				log.Printf("panic in %s %s: %v\n%s", r.Method, r.URL.Path, rec, stack)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		handler(w, r)
	}
}
