package api

import (
	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/screener"
)

// Badges flags the listing attributes shown on the dashboard card.
type Badges struct {
	Syariah bool `json:"syariah"`
	LQ45    bool `json:"lq45"`
}

// AnalysisPayload is the scored outcome section of a card.
type AnalysisPayload struct {
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
	Reason  string `json:"reason"`
	Type    string `json:"type"`
}

// PlanPayload is the execution plan section of a card, pre-formatted for
// display.
type PlanPayload struct {
	Entry      string `json:"entry"`
	StopLoss   int64  `json:"stop_loss"`
	TakeProfit string `json:"take_profit"`
}

// StockItem is one dashboard card.
type StockItem struct {
	Ticker      string          `json:"ticker"`
	CompanyName string          `json:"company_name"`
	Badges      Badges          `json:"badges"`
	Analysis    AnalysisPayload `json:"analysis"`
	Plan        PlanPayload     `json:"plan"`
	News        []string        `json:"news"`
	IsWatchlist bool            `json:"is_watchlist"`
}

// newStockItem shapes one analysis report into a dashboard card.
func newStockItem(report *model.StockReport, inWatchlist bool) StockItem {
	res := report.Result
	plain := screener.PlainTicker(res.Ticker)

	return StockItem{
		Ticker:      plain,
		CompanyName: priceLine(res.LastPrice, res.ChangePct),
		Badges: Badges{
			Syariah: screener.IsSyariah(plain),
			LQ45:    true,
		},
		Analysis: AnalysisPayload{
			Score:   res.Score,
			Verdict: res.Verdict,
			Reason:  res.Reason,
			Type:    string(res.Strategy),
		},
		Plan: PlanPayload{
			Entry:      entryString(report.Plan),
			StopLoss:   planStop(report.Plan),
			TakeProfit: takeProfitString(report.Plan),
		},
		News:        []string{},
		IsWatchlist: inWatchlist,
	}
}

// notFoundItem is the placeholder card for a ticker with no usable data.
func notFoundItem(ticker, reason string) StockItem {
	return StockItem{
		Ticker:      screener.PlainTicker(ticker),
		CompanyName: "NOT FOUND",
		Analysis: AnalysisPayload{
			Verdict: model.VerdictError,
			Reason:  reason,
			Type:    "UNKNOWN",
		},
		Plan: PlanPayload{Entry: "-", TakeProfit: "-"},
		News: []string{},
	}
}

func planStop(plan *model.TradePlan) int64 {
	if plan == nil {
		return 0
	}
	return plan.StopLoss
}
