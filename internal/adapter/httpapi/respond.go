package httpapi

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the {error, code} envelope.
const (
	CodeInvalidJSON        = "INVALID_JSON"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeNoAPIKeys          = "NO_API_KEYS"
	CodeAllProvidersFailed = "ALL_PROVIDERS_FAILED"
	CodeTimeout            = "TIMEOUT"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding a value we built ourselves; an encode failure here means the
	// response is already lost.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}
