package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-reward-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Message
		apiErr.CorrelationID = body.CorrelationID
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.Err = ErrBadRequest
	case http.StatusNotFound:
		apiErr.Err = ErrNotFound
	case http.StatusUnprocessableEntity:
		apiErr.Err = ErrValidation
	case http.StatusInternalServerError:
		apiErr.Err = ErrInternalServerError
	case http.StatusBadGateway:
		apiErr.Err = ErrBadGateway
	default:
		apiErr.Err = ErrUnexpectedStatus
	}

	return apiErr
}
