package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIError carries the HTTP status a failure should surface as.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// New builds an APIError with an explicit status.
func New(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// JSON writes v as a JSON response body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// Error maps any error onto the {ok:false, error} envelope. An APIError
// with a valid status is surfaced as-is; everything else becomes a 500.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Status >= 100 && apiErr.Status < 600 {
			status = apiErr.Status
		}
		if apiErr.Message != "" {
			message = apiErr.Message
		}
	} else if err != nil && err.Error() != "" {
		message = err.Error()
	}

	JSON(w, status, map[string]interface{}{
		"ok":    false,
		"error": message,
	})
}
