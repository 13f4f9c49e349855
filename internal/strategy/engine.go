package strategy

import (
	"math"
	"strings"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// Params are the tunable thresholds of the engine. The defaults are the
// shipped tuning; deployments override them through configuration.
type Params struct {
	StrongBuyScore   int     // verdict cutoff, inclusive
	BuyScore         int
	NeutralScore     int
	SupportMargin    float64 // support candidates must sit below price by this factor
	StopATRMult      float64 // stop-loss distance below support, in ATR units
	RewardRatio      float64 // target = price + risk * RewardRatio
	SwingVetoPenalty int     // demotion applied to a swing winner in a bearish week
}

// DefaultParams returns the shipped tuning.
func DefaultParams() Params {
	return Params{
		StrongBuyScore:   88,
		BuyScore:         65,
		NeutralScore:     50,
		SupportMargin:    0.995,
		StopATRMult:      2.0,
		RewardRatio:      3.0,
		SwingVetoPenalty: 30,
	}
}

// strategyPriority is the deterministic tie-break order for equal scores:
// longer-horizon, lower-risk strategies win. The first max encountered in
// this order is the winner.
var strategyPriority = []model.Strategy{
	model.StrategySwing,
	model.StrategyBSJP,
	model.StrategyBPJS,
	model.StrategyScalping,
	model.StrategyARA,
	model.StrategyInvest,
}

// Engine turns one ticker's indicator snapshot into an AnalysisResult. It
// is deterministic and never fails: every degradation is representable in
// the result itself.
type Engine struct {
	params Params
}

// NewEngine creates an engine with the given parameters.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Analyze scores all six strategies, arbitrates a winner, applies the
// weekly veto, derives the support/stop/target plan levels and maps the
// score to a verdict tier.
func (e *Engine) Analyze(snap *model.Snapshot) *model.AnalysisResult {
	if snap == nil || snap.Indicators.LastPrice <= 0 {
		return ErrorResult(tickerOf(snap), "missing last price")
	}

	f := computeFeatures(snap)
	board := evaluate(f)

	best, score := e.arbitrate(board)

	// Don't swing-trade against the weekly tide.
	if f.Trend == model.TrendBearish && best == model.StrategySwing {
		score -= e.params.SwingVetoPenalty
		board.Tag("Weekly Bearish")
	}

	ind := &f.IndicatorSet
	support := e.DeriveSupport(ind)
	stop := support - e.params.StopATRMult*ind.ATR
	risk := ind.LastPrice - stop
	target := ind.LastPrice + risk*e.params.RewardRatio

	return &model.AnalysisResult{
		Ticker:      snap.Ticker,
		Status:      model.StatusOK,
		Strategy:    best,
		Score:       score,
		Verdict:     e.verdict(score),
		Reason:      reasonSummary(board.Reasons),
		LastPrice:   roundPrice(ind.LastPrice),
		ChangePct:   math.Round(ind.ChangePct*100*100) / 100,
		Support:     roundPrice(support),
		StopLoss:    roundPrice(stop),
		TargetPrice: roundPrice(target),
	}
}

// arbitrate picks the highest score, breaking ties by strategyPriority.
func (e *Engine) arbitrate(board *model.Scoreboard) (model.Strategy, int) {
	best := strategyPriority[0]
	bestScore := board.Scores[best]
	for _, st := range strategyPriority[1:] {
		if board.Scores[st] > bestScore {
			best = st
			bestScore = board.Scores[st]
		}
	}
	return best, bestScore
}

// DeriveSupport picks the highest support candidate still safely below the
// current price; a degenerate flat market falls back to price − 2·ATR.
// Pure, stateless: identical inputs always yield the identical level.
func (e *Engine) DeriveSupport(ind *model.IndicatorSet) float64 {
	candidates := []float64{
		ind.SMA20, ind.SMA50, ind.BBLower, ind.VWAP, ind.Fib50, ind.Fib618,
	}
	ceiling := ind.LastPrice * e.params.SupportMargin

	support := math.NaN()
	for _, c := range candidates {
		if math.IsNaN(c) || c <= 0 || c >= ceiling {
			continue
		}
		if math.IsNaN(support) || c > support {
			support = c
		}
	}
	if math.IsNaN(support) {
		atr := ind.ATR
		if math.IsNaN(atr) {
			atr = ind.LastPrice * 0.025
		}
		support = ind.LastPrice - 2*atr
	}
	return support
}

func (e *Engine) verdict(score int) string {
	switch {
	case score >= e.params.StrongBuyScore:
		return model.VerdictStrongBuy
	case score >= e.params.BuyScore:
		return model.VerdictBuy
	case score >= e.params.NeutralScore:
		return model.VerdictNeutral
	default:
		return model.VerdictAvoid
	}
}

// SkipResult emits the insufficient-history outcome.
func SkipResult(ticker, reason string) *model.AnalysisResult {
	return &model.AnalysisResult{
		Ticker:  ticker,
		Status:  model.StatusSkip,
		Verdict: model.VerdictSkip,
		Reason:  reason,
	}
}

// ErrorResult emits the upstream-failure outcome. The failure travels as
// text in the result, never as a raised error.
func ErrorResult(ticker, reason string) *model.AnalysisResult {
	return &model.AnalysisResult{
		Ticker:  ticker,
		Status:  model.StatusError,
		Verdict: model.VerdictError,
		Reason:  reason,
	}
}

func reasonSummary(reasons []string) string {
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return strings.Join(reasons, " | ")
}

func roundPrice(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}

func tickerOf(snap *model.Snapshot) string {
	if snap == nil {
		return ""
	}
	return snap.Ticker
}
