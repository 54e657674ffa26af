// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single purchase submitted for reward calculation.
//
// Both fields are pointers: a nil value means the field was absent in the
// request payload (missing key, JSON null or an empty string). Such a
// transaction never reaches the calculator because the MissingField rule
// rejects it first.
type Transaction struct {
	// Cost is the purchase amount in dollars. Fractional cents are kept here
	// and discarded only when points are computed.
	Cost *decimal.Decimal `json:"cost"`

	// Time is the moment the purchase happened, including its UTC offset.
	// Grouping by calendar month uses the offset carried by this value.
	Time *time.Time `json:"time"`
}

// NewTransaction builds a fully populated Transaction.
func NewTransaction(cost decimal.Decimal, at time.Time) Transaction {
	return Transaction{Cost: &cost, Time: &at}
}

// transactionPayload mirrors the wire format before absent values are
// normalised to nil.
type transactionPayload struct {
	Cost json.RawMessage `json:"cost"`
	Time json.RawMessage `json:"time"`
}

// UnmarshalJSON decodes a transaction from `{"cost": ..., "time": ...}`.
// Cost accepts a JSON number or a decimal string; Time accepts an RFC 3339
// timestamp. Missing keys, null and "" leave the corresponding field nil.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var payload transactionPayload
	if err := json.Unmarshal(b, &payload); err != nil {
		return err
	}

	t.Cost = nil
	t.Time = nil

	if !isAbsent(payload.Cost) {
		var cost decimal.Decimal
		if err := cost.UnmarshalJSON(payload.Cost); err != nil {
			return fmt.Errorf("%w: cost: %w", ErrInvalidTransactionPayload, err)
		}
		t.Cost = &cost
	}

	if !isAbsent(payload.Time) {
		var raw string
		if err := json.Unmarshal(payload.Time, &raw); err != nil {
			return fmt.Errorf("%w: time: %w", ErrInvalidTransactionPayload, err)
		}
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("%w: time: %w", ErrInvalidTransactionPayload, err)
		}
		t.Time = &at
	}

	return nil
}

// MarshalJSON encodes cost as a decimal string and time as RFC 3339 with
// nanoseconds; absent fields are written as null.
func (t Transaction) MarshalJSON() ([]byte, error) {
	out := struct {
		Cost *string `json:"cost"`
		Time *string `json:"time"`
	}{}

	if t.Cost != nil {
		cost := t.Cost.String()
		out.Cost = &cost
	}
	if t.Time != nil {
		at := t.Time.Format(time.RFC3339Nano)
		out.Time = &at
	}

	return json.Marshal(out)
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte(`""`))
}
