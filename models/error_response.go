package models

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse is the body of every non-2xx reward API response. On the
// wire it is a two-element JSON array: ["<message>", "<correlation id>"].
type ErrorResponse struct {
	Message       string
	CorrelationID string
}

func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Message, e.CorrelationID})
}

func (e *ErrorResponse) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("error response: expected 2 elements, got %d", len(pair))
	}

	e.Message, e.CorrelationID = pair[0], pair[1]
	return nil
}
