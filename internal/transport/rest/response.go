package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeOK answers a mutation with the success envelope.
func writeOK(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Success: true, Data: data})
}

// writeFailure classifies err and answers with the failure envelope.
// Storage failures are logged and reported with a generic message; access
// failures never say whether the resource exists.
func writeFailure(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.ErrorKind(err)
	body := errorBody{Kind: string(kind)}
	status := http.StatusInternalServerError

	switch kind {
	case domain.KindUnauthenticated:
		status = http.StatusUnauthorized
		body.Message = "authentication required"
	case domain.KindUnauthorized:
		status = http.StatusForbidden
		body.Message = "forbidden"
		log.DebugContext(r.Context(), "access denied", slog.String("path", r.URL.Path))
	case domain.KindValidation:
		status = http.StatusBadRequest
		body.Message = "invalid input"
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				body.Fields = append(body.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
	case domain.KindConflict:
		status = http.StatusConflict
		body.Message = "already exists"
	default:
		body.Message = "something went wrong"
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, status, failureEnvelope{Error: body})
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}

// pathID parses the named path wildcard as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}
