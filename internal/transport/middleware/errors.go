package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/ekshore/loot-list/internal/domain"
)

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError answers with the same failure envelope the REST handlers use.
func writeError(w http.ResponseWriter, status int, kind domain.Kind, message string) {
	var body errorBody
	body.Error.Kind = string(kind)
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
