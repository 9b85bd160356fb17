package http

import "net/http"

// ping is a liveness probe. It reports that the HTTP transport is up; it
// does not touch storage.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
