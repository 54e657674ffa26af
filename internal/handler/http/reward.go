// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/internal/validators"
	"github.com/MKhiriev/go-reward-keeper/models"
)

// Client-facing messages for failures that are not validation rules.
const (
	msgInvalidJSON   = "Invalid JSON was passed."
	msgInternalError = "Internal error."
)

var errTrailingData = errors.New("unexpected data after the transaction list")

// decodeTransactions reads exactly one JSON value from body; anything but
// whitespace after it is rejected.
func decodeTransactions(body io.Reader) ([]models.Transaction, error) {
	dec := json.NewDecoder(body)

	var transactions []models.Transaction
	if err := dec.Decode(&transactions); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", errTrailingData, err)
	}

	return transactions, nil
}

// calculateReward handles POST /api/calculate-reward.
//
// The body is a JSON array of transactions. A successful calculation is
// answered with 200 and the reward summary; every failure is answered with
// the two-element body ["<message>", "<correlation id>"].
func (h *Handler) calculateReward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	transactions, err := decodeTransactions(r.Body)
	if err != nil {
		correlationID := utils.NewCorrelationID()
		log.Err(err).Str("correlation_id", correlationID).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, correlationID, http.StatusBadRequest)
		return
	}

	log.Debug().Int("transactions", len(transactions)).Msg("calculating reward")

	result, err := h.services.RewardService.CalculateReward(ctx, transactions)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing reward summary")
	}
}

// writeCalculationError renders a service error. A validation error is
// returned with its own message and correlation id; anything else is
// logged with a fresh correlation id and hidden behind msgInternalError.
func (h *Handler) writeCalculationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		status := verr.Status
		if status == 0 {
			status = statusFromError(err)
		}
		utils.WriteError(w, verr.Message, verr.CorrelationID, status)
		return
	}

	correlationID := utils.NewCorrelationID()
	log.Error().Err(err).Str("correlation_id", correlationID).Msg("reward calculation failed")

	status := statusFromError(err)
	if status < http.StatusInternalServerError {
		status = http.StatusInternalServerError
	}
	utils.WriteError(w, msgInternalError, correlationID, status)
}
