package api

import (
	"encoding/json"
	"net/http"
)

// writeJSON sends one machine document. Every handler responds through here
// so the content type and encoding stay uniform.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
