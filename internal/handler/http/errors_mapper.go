package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-reward-keeper/internal/service"
	"github.com/MKhiriev/go-reward-keeper/internal/validators"
	"github.com/MKhiriev/go-reward-keeper/models"
)

var errorStatusMap = map[error]int{
	validators.ErrEmptyList:    http.StatusUnprocessableEntity,
	validators.ErrMissingField: http.StatusUnprocessableEntity,
	validators.ErrNegativeCost: http.StatusUnprocessableEntity,
	validators.ErrTooOld:       http.StatusUnprocessableEntity,

	validators.ErrUnsupportedType: http.StatusInternalServerError,
	validators.ErrUnknownRule:     http.StatusInternalServerError,

	models.ErrInvalidTransactionPayload: http.StatusBadRequest,

	service.ErrIncompleteTransaction: http.StatusInternalServerError,
	service.ErrCostTooLarge:          http.StatusInternalServerError,
	service.ErrPointsOverflow:        http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
