// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Threshold is one tier of the reward scale: every whole dollar spent above
// Cost (and up to the next tier's Cost) earns PointsPerDollar points.
type Threshold struct {
	Cost            int64
	PointsPerDollar int64
}

var rewardThresholds = [...]Threshold{
	{Cost: 50, PointsPerDollar: 1},
	{Cost: 100, PointsPerDollar: 2},
}

// RewardThresholds returns the fixed tiers ordered by ascending Cost.
// The returned slice is a copy, so the process-wide tiers cannot be altered.
func RewardThresholds() []Threshold {
	tiers := rewardThresholds
	return tiers[:]
}
