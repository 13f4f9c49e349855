package strategy

import (
	"math"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/calculator"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// features derives the boolean signals the rule table evaluates from the
// raw indicator snapshot. NaN indicators make every derived comparison
// false, so a missing feature contributes zero points.
type features struct {
	model.IndicatorSet
	fund model.Fundamentals

	gapUp           bool // gap-open validated against ATR, not just percent
	smartMoneyIn    bool
	forceBullish    bool
	fractalBreakout bool
	trending        bool // ADX above the regime-dependent floor
	uptrendMA       bool
	squeeze         bool
	moneyInflow     bool
	strongBody      bool // candle body large relative to ATR
	distMA20        float64
}

func computeFeatures(snap *model.Snapshot) *features {
	f := &features{IndicatorSet: snap.Indicators, fund: snap.Fundamentals}
	ind := &f.IndicatorSet

	gap := ind.Open - ind.PrevClose
	if ind.PrevClose > 0 {
		f.gapUp = gap/ind.PrevClose > 0.005 && gap > ind.ATR*0.5
	}

	f.smartMoneyIn = ind.SMF > 0 && ind.SMF >= ind.SMFPrev*0.9
	f.forceBullish = ind.ForceIndex > 0 && ind.ForceIndex >= ind.ForceIndexPrev*0.8

	f.fractalBreakout = !math.IsNaN(ind.FractalHigh) &&
		ind.LastPrice > ind.FractalHigh && ind.RelVolume >= 1.0

	// A confirmed bull market needs less ADX evidence than a contested one.
	minADX := 25.0
	if ind.Trend == model.TrendBullish {
		minADX = 20.0
	}
	f.trending = ind.ADX > minADX
	f.uptrendMA = ind.LastPrice > ind.SMA50

	f.squeeze = ind.Bandwidth < 5.0
	f.moneyInflow = ind.CMF > 0.05
	f.strongBody = math.Abs(ind.LastPrice-ind.Open) > ind.ATR*0.2

	if !math.IsNaN(ind.SMA20) && ind.SMA20 > 0 {
		f.distMA20 = math.Abs(ind.LastPrice-ind.SMA20) / ind.SMA20
	} else {
		f.distMA20 = math.NaN()
	}
	return f
}

// rule is one row of the scoring table: a predicate, the points it credits
// per strategy (negatives allowed), and an optional reason tag recorded
// when it fires.
type rule struct {
	reason string
	when   func(*features) bool
	points map[model.Strategy]int
}

// ruleTable is the canonical, versioned rule set. Weights are tunable
// defaults, kept in one table so provenance and tie-break behavior stay
// auditable instead of being buried in branching.
var ruleTable = []rule{
	// Base gate: a bullish weekly tide lifts every boat.
	{
		reason: "Weekly Uptrend",
		when:   func(f *features) bool { return f.Trend == model.TrendBullish },
		points: map[model.Strategy]int{
			model.StrategyARA: 10, model.StrategyBSJP: 10, model.StrategyBPJS: 10,
			model.StrategyScalping: 10, model.StrategySwing: 10, model.StrategyInvest: 10,
		},
	},

	// Volume and accumulation.
	{
		reason: "Volume Spike",
		when:   func(f *features) bool { return f.RelVolume > 1.2 },
		points: map[model.Strategy]int{
			model.StrategyScalping: 15, model.StrategyARA: 15, model.StrategyBSJP: 15,
		},
	},
	{
		reason: "Smart Money In",
		when:   func(f *features) bool { return f.smartMoneyIn },
		points: map[model.Strategy]int{
			model.StrategySwing: 15, model.StrategyBSJP: 15, model.StrategyScalping: 15,
		},
	},
	{
		reason: "Strong Momentum",
		when:   func(f *features) bool { return f.forceBullish },
		points: map[model.Strategy]int{model.StrategyScalping: 10, model.StrategySwing: 10},
	},

	// Limit-up hunter: hard breakout day with unusual volume.
	{
		when:   func(f *features) bool { return f.ChangePct > 0.04 && f.RelVolume > 1.8 },
		points: map[model.Strategy]int{model.StrategyARA: 40},
	},
	{
		when:   func(f *features) bool { return f.LastPrice >= f.High*0.99 },
		points: map[model.Strategy]int{model.StrategyARA: 20},
	},
	{
		when:   func(f *features) bool { return f.gapUp },
		points: map[model.Strategy]int{model.StrategyARA: 15},
	},
	{
		reason: "Money Inflow",
		when:   func(f *features) bool { return f.moneyInflow },
		points: map[model.Strategy]int{model.StrategyARA: 15, model.StrategySwing: 10},
	},

	// Scalp: needs volatility, a position above VWAP, and breakout proof.
	{
		when:   func(f *features) bool { return f.ATR > f.LastPrice*0.015 },
		points: map[model.Strategy]int{model.StrategyScalping: 20},
	},
	{
		when:   func(f *features) bool { return f.LastPrice > f.VWAP },
		points: map[model.Strategy]int{model.StrategyScalping: 30},
	},
	{
		// Scalping below VWAP is chasing; the one negative-weight family.
		when:   func(f *features) bool { return !math.IsNaN(f.VWAP) && f.LastPrice <= f.VWAP },
		points: map[model.Strategy]int{model.StrategyScalping: -20},
	},
	{
		reason: "Fractal Breakout",
		when:   func(f *features) bool { return f.fractalBreakout },
		points: map[model.Strategy]int{model.StrategyScalping: 20},
	},

	// Swing: trend strength, crossover, squeeze, pullback proximity.
	{
		when:   func(f *features) bool { return f.trending && f.uptrendMA },
		points: map[model.Strategy]int{model.StrategySwing: 35},
	},
	{
		reason: "Golden Cross",
		when:   func(f *features) bool { return f.GoldenCross },
		points: map[model.Strategy]int{model.StrategySwing: 30},
	},
	{
		when:   func(f *features) bool { return f.squeeze },
		points: map[model.Strategy]int{model.StrategySwing: 20},
	},
	{
		when:   func(f *features) bool { return f.MACD > f.MACDSignal },
		points: map[model.Strategy]int{model.StrategySwing: 15},
	},
	{
		when:   func(f *features) bool { return f.StochK > f.StochD && f.StochK < 80 },
		points: map[model.Strategy]int{model.StrategySwing: 10},
	},
	{
		when:   func(f *features) bool { return f.distMA20 < 0.10 },
		points: map[model.Strategy]int{model.StrategySwing: 15},
	},
	{
		// Too far extended above the mean: late entry.
		when:   func(f *features) bool { return f.distMA20 >= 0.10 },
		points: map[model.Strategy]int{model.StrategySwing: -10},
	},

	// Evening-buy/morning-sell: strong directional close into the bell.
	{
		reason: "Strong Close",
		when:   func(f *features) bool { return f.LastPrice > f.Open && f.strongBody },
		points: map[model.Strategy]int{model.StrategyBSJP: 30},
	},
	{
		when:   func(f *features) bool { return f.LastPrice >= f.High*0.98 },
		points: map[model.Strategy]int{model.StrategyBSJP: 30},
	},
	{
		when:   func(f *features) bool { return f.smartMoneyIn },
		points: map[model.Strategy]int{model.StrategyBSJP: 25},
	},
	{
		when:   func(f *features) bool { return f.StochK > f.StochD },
		points: map[model.Strategy]int{model.StrategyBSJP: 10},
	},

	// Morning-buy/evening-sell: validated gap or oversold reversal.
	{
		reason: "Valid Gap",
		when:   func(f *features) bool { return f.gapUp },
		points: map[model.Strategy]int{model.StrategyBPJS: 30},
	},
	{
		when:   func(f *features) bool { return f.LastPrice > f.Open && f.RelVolume > 1.1 },
		points: map[model.Strategy]int{model.StrategyBPJS: 40},
	},
	{
		when: func(f *features) bool {
			return f.RSI < 40 && f.HasPattern(calculator.PatternHammer)
		},
		points: map[model.Strategy]int{model.StrategyBPJS: 30},
	},
	{
		reason: "Stochastic Oversold",
		when:   func(f *features) bool { return f.StochK < 20 },
		points: map[model.Strategy]int{model.StrategyBPJS: 20},
	},

	// Invest: cheap multiples above the long-horizon average. Negative
	// earnings (PE <= 0) must never read as cheap.
	{
		when:   func(f *features) bool { return f.fund.TrailingPE > 0 && f.fund.TrailingPE < 15 },
		points: map[model.Strategy]int{model.StrategyInvest: 25},
	},
	{
		when:   func(f *features) bool { return f.fund.PriceToBook < 1.5 },
		points: map[model.Strategy]int{model.StrategyInvest: 25},
	},
	{
		when:   func(f *features) bool { return f.LastPrice > f.SMA200 },
		points: map[model.Strategy]int{model.StrategyInvest: 30},
	},
	{
		when:   func(f *features) bool { return f.Trend == model.TrendBullish },
		points: map[model.Strategy]int{model.StrategyInvest: 20},
	},
}

// evaluate runs every rule against the features and accumulates the board.
func evaluate(f *features) *model.Scoreboard {
	board := model.NewScoreboard()
	for _, r := range ruleTable {
		if !r.when(f) {
			continue
		}
		for st, pts := range r.points {
			board.Add(st, pts)
		}
		if r.reason != "" {
			board.Tag(r.reason)
		}
	}
	return board
}
