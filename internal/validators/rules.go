// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-reward-keeper/models"
)

// RuleName identifies a validation rule in logs and lets callers scope
// Validate to a subset of rules.
type RuleName string

const (
	RuleEmptyList    RuleName = "EmptyList"
	RuleMissingField RuleName = "MissingField"
	RuleNegativeCost RuleName = "NegativeCost"
	RuleTooOld       RuleName = "TooOld"
)

// MaxTransactionAgeMonths is how many calendar months back a transaction may
// date before it is rejected.
const MaxTransactionAgeMonths = 3

// Rule is a named check over values of type T. Violated reports true when
// value breaks the rule; now is the reference instant of the whole
// validation run.
type Rule[T any] struct {
	Name     RuleName
	Message  string
	Status   int
	Err      error
	Violated func(value T, now time.Time) bool
}

// listRules run once against the whole submitted list.
var listRules = []Rule[[]models.Transaction]{
	{
		Name:    RuleEmptyList,
		Message: "List of transactions is empty.",
		Status:  http.StatusUnprocessableEntity,
		Err:     ErrEmptyList,
		Violated: func(list []models.Transaction, _ time.Time) bool {
			return len(list) == 0
		},
	},
}

// transactionRules run against every transaction, in this order.
var transactionRules = []Rule[models.Transaction]{
	{
		Name:    RuleMissingField,
		Message: "Cost or Date is missing.",
		Status:  http.StatusUnprocessableEntity,
		Err:     ErrMissingField,
		Violated: func(t models.Transaction, _ time.Time) bool {
			return t.Cost == nil || t.Time == nil
		},
	},
	{
		Name:    RuleNegativeCost,
		Message: "Cost can not be negative.",
		Status:  http.StatusUnprocessableEntity,
		Err:     ErrNegativeCost,
		Violated: func(t models.Transaction, _ time.Time) bool {
			return t.Cost != nil && t.Cost.IsNegative()
		},
	},
	{
		Name:    RuleTooOld,
		Message: "Transaction is older than 3 months.",
		Status:  http.StatusUnprocessableEntity,
		Err:     ErrTooOld,
		Violated: func(t models.Transaction, now time.Time) bool {
			return t.Time != nil && t.Time.Before(MonthsBefore(now, MaxTransactionAgeMonths))
		},
	},
}

// MonthsBefore moves t back by the given number of calendar months. When the
// target month is shorter, the day is clamped to its last day, so May 31
// minus three months is February 28 (29 in leap years), not March 3.
func MonthsBefore(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	firstOfTarget := time.Date(year, month-time.Month(months), 1, hour, minute, sec, t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return firstOfTarget.AddDate(0, 0, day-1)
}

// Rules lists every rule name in evaluation order.
func Rules() []RuleName {
	names := make([]RuleName, 0, len(listRules)+len(transactionRules))
	for _, r := range listRules {
		names = append(names, r.Name)
	}
	for _, r := range transactionRules {
		names = append(names, r.Name)
	}
	return names
}

// MessageFor returns the client-facing message of the named rule.
func MessageFor(name RuleName) (string, bool) {
	for _, r := range listRules {
		if r.Name == name {
			return r.Message, true
		}
	}
	for _, r := range transactionRules {
		if r.Name == name {
			return r.Message, true
		}
	}
	return "", false
}
