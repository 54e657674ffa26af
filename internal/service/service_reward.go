// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-reward-keeper/models"
	"github.com/shopspring/decimal"
)

// MaxRewardableCost is the largest cost the calculator accepts. Tiered
// points of any cost up to it fit in an int64.
var MaxRewardableCost = decimal.NewFromInt(math.MaxInt64 / 4)

// rewardService is the bare calculator. It trusts its input: callers must
// run the transactions through validation first (see RewardValidationService).
type rewardService struct{}

// NewRewardService returns the unvalidated reward calculator.
func NewRewardService() RewardService {
	return &rewardService{}
}

func (s *rewardService) CalculateReward(_ context.Context, transactions []models.Transaction) (models.RewardResult, error) {
	if err := checkScoreable(transactions); err != nil {
		return models.RewardResult{}, err
	}

	return CalculateRewards(transactions), nil
}

// checkScoreable rejects input CalculateRewards cannot score without
// overflowing: missing fields, costs above MaxRewardableCost and a total
// that does not fit in an int. Month sums never exceed the total.
func checkScoreable(transactions []models.Transaction) error {
	maxPoints := decimal.NewFromInt(math.MaxInt)
	total := decimal.Zero

	for i, t := range transactions {
		if t.Cost == nil || t.Time == nil {
			return fmt.Errorf("transaction %d: %w", i, ErrIncompleteTransaction)
		}
		if t.Cost.GreaterThan(MaxRewardableCost) {
			return fmt.Errorf("transaction %d: cost %s: %w", i, t.Cost, ErrCostTooLarge)
		}

		total = total.Add(decimal.NewFromInt(tieredPoints(t.Cost.IntPart())))
		if total.GreaterThan(maxPoints) {
			return fmt.Errorf("transaction %d: %w", i, ErrPointsOverflow)
		}
	}

	return nil
}

type monthKey struct {
	year  int
	month time.Month
}

// CalculateRewards groups transactions by the calendar month of their own
// timestamp, scores each one with Points and sums the scores per month and in
// total. Months appear in the order they are first seen in transactions.
//
// Every transaction must carry a cost and a time, and the points must fit in
// an int; the RewardService returned by NewRewardService checks both.
func CalculateRewards(transactions []models.Transaction) models.RewardResult {
	positions := make(map[monthKey]int)
	monthly := make([]models.MonthlyReward, 0)

	for _, t := range transactions {
		key := monthKey{year: t.Time.Year(), month: t.Time.Month()}

		pos, ok := positions[key]
		if !ok {
			pos = len(monthly)
			positions[key] = pos
			monthly = append(monthly, models.MonthlyReward{Year: key.year, Month: int(key.month)})
		}

		monthly[pos].Points += Points(*t.Cost)
	}

	total := 0
	for _, m := range monthly {
		total += m.Points
	}

	return models.RewardResult{
		MonthlyRewards: monthly,
		TotalPoints:    total,
	}
}

// Points scores a single purchase. The cost is truncated to whole dollars
// first (99.99 counts as 99), then every tier of models.RewardThresholds
// contributes PointsPerDollar for each dollar between its Cost and the next
// tier's Cost; the last tier is unbounded.
func Points(cost decimal.Decimal) int {
	return int(tieredPoints(cost.IntPart()))
}

func tieredPoints(dollars int64) int64 {
	tiers := models.RewardThresholds()

	var points int64
	for i, tier := range tiers {
		if dollars <= tier.Cost {
			break
		}

		upper := dollars
		if i+1 < len(tiers) && tiers[i+1].Cost < upper {
			upper = tiers[i+1].Cost
		}

		points += (upper - tier.Cost) * tier.PointsPerDollar
	}

	return points
}
