// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the business rules a reward request must
// satisfy before any points are calculated.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values.
//     Supports optional rule-level scoping for targeted validation.
//   - Rule: a named predicate with a fixed client-facing message and the
//     HTTP status used to report it.
//
// Rules are evaluated in a fixed order and validation stops at the first
// violation, returning a *ValidationError.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named rules.
	Validate(context.Context, any, ...RuleName) error
}
