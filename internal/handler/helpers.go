package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// defaultIdentity is the document key used when the client does not
// identify itself. The server is self-hosted and single-household; the
// header exists so a shared instance can keep separate documents per
// device.
const defaultIdentity = "local"

// identity resolves the progress-document key for a request.
func identity(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return defaultIdentity
}

func parseMovementID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
