// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes a replaceable clock, correlation ID generation,
// HTTP response writing and HTTP client initialization.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-reward-keeper/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, result, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the two-element error body used by the reward API:
//
//	["<human message>", "<correlation id>"]
//
// The correlation ID lets support staff find the matching server-side log
// entry; it carries no meaning for the caller.
func WriteError(w http.ResponseWriter, message, correlationID string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Message: message, CorrelationID: correlationID}, statusCode)
}
