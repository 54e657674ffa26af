// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the reward API.
//
// [RewardAdapter] decouples the command-line client from the transport.
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, wrapped in an [*APIError] that keeps the server message and
// correlation ID, so callers can use [errors.Is] and [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-reward-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RewardAdapter talks to a running reward server.
type RewardAdapter interface {
	// CalculateReward submits transactions to POST /api/calculate-reward and
	// returns the decoded reward summary.
	CalculateReward(ctx context.Context, transactions []models.Transaction) (models.RewardResult, error)

	// Version returns the server's application version from GET /api/version.
	Version(ctx context.Context) (string, error)
}
