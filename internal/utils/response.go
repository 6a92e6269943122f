package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the uniform failure body {"reason": ...}.
func JSONError(w http.ResponseWriter, status int, reason string) {
	JSON(w, status, map[string]string{"reason": reason})
}
