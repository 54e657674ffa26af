// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MonthlyReward is the number of points earned within one calendar month.
// A RewardResult holds exactly one MonthlyReward per distinct (Year, Month).
type MonthlyReward struct {
	// Year is the calendar year, e.g. 2026.
	Year int `json:"year"`

	// Month is the calendar month in the range 1..12.
	Month int `json:"month"`

	// Points is the sum of tiered points of all transactions in the month.
	Points int `json:"points"`
}

// RewardResult is the outcome of a single reward calculation.
//
// TotalPoints always equals the sum of Points over MonthlyRewards.
// MonthlyRewards follows the order in which each month first appeared in the
// input; callers must not rely on that order for anything but display.
type RewardResult struct {
	MonthlyRewards []MonthlyReward `json:"monthlyRewards"`
	TotalPoints    int             `json:"totalPoints"`
}
