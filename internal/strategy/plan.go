package strategy

import (
	"math"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// Qualitative hold instructions for strategies without a take-profit ladder.
const (
	holdARA    = "Hold for the limit-up run"
	holdInvest = "Long-term hold (dividends & growth)"
	holdWait   = "Wait & see"
)

// BuildPlan derives the per-strategy execution plan from the support level.
// The entry band anchors at support rather than the last traded price so
// the ladder keeps a healthy risk/reward even after a run-up; when price
// has already escaped the band the plan flags a pullback wait instead.
func BuildPlan(st model.Strategy, lastPrice, support float64) *model.TradePlan {
	if lastPrice <= 0 {
		return &model.TradePlan{Hold: holdWait}
	}

	base := support
	if base <= 0 || math.IsNaN(base) {
		base = lastPrice
	}

	plan := &model.TradePlan{
		EntryLow:  round(base),
		EntryHigh: round(base * 1.015),
		Support:   round(support),
	}
	plan.WaitPullback = lastPrice > float64(plan.EntryHigh)*1.01

	switch st {
	case model.StrategyARA:
		plan.StopLoss = round(base * 0.90)
		plan.Hold = holdARA
	case model.StrategyBSJP:
		plan.StopLoss = round(base * 0.98)
		plan.TakeProfits = ladder(base, 1.02, 1.04, 1.06)
	case model.StrategyScalping:
		plan.StopLoss = round(base * 0.97)
		plan.TakeProfits = ladder(base, 1.015, 1.03, 1.05)
	case model.StrategySwing:
		plan.StopLoss = round(base * 0.95)
		plan.TakeProfits = ladder(base, 1.05, 1.10, 1.15)
	case model.StrategyInvest:
		plan.StopLoss = round(base * 0.85)
		plan.Hold = holdInvest
	default:
		plan.StopLoss = round(base * 0.95)
		plan.Hold = holdWait
	}
	return plan
}

func ladder(base float64, mults ...float64) []int64 {
	out := make([]int64, len(mults))
	for i, m := range mults {
		out[i] = round(base * m)
	}
	return out
}

func round(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}
