package utils

import (
	"encoding/json"
	"net/http"
)

// Payload is the acknowledgment body for operations that do not return a
// record (delete).
type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the wire shape for every failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSONResponse sends a JSON response with given status and body
func JSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
