package model

// Strategy names the six trading archetypes scored per ticker.
type Strategy string

const (
	StrategyARA      Strategy = "ARA"      // aggressive limit-up hunter
	StrategyBSJP     Strategy = "BSJP"     // buy evening, sell morning
	StrategyBPJS     Strategy = "BPJS"     // buy morning, sell evening
	StrategyScalping Strategy = "SCALPING" // intraday scalp
	StrategySwing    Strategy = "SWING"    // multi-day swing
	StrategyInvest   Strategy = "INVEST"   // long-horizon invest
)

// Scoreboard accumulates per-strategy points and the reason tags collected
// while the rule table is evaluated. Created fresh per scoring call.
type Scoreboard struct {
	Scores  map[Strategy]int
	Reasons []string
}

// NewScoreboard returns a scoreboard with every strategy at zero.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		Scores: map[Strategy]int{
			StrategyARA:      0,
			StrategyBSJP:     0,
			StrategyBPJS:     0,
			StrategyScalping: 0,
			StrategySwing:    0,
			StrategyInvest:   0,
		},
	}
}

// Add credits points to one strategy.
func (s *Scoreboard) Add(st Strategy, points int) {
	s.Scores[st] += points
}

// Tag appends a reason label, skipping consecutive duplicates.
func (s *Scoreboard) Tag(reason string) {
	for _, r := range s.Reasons {
		if r == reason {
			return
		}
	}
	s.Reasons = append(s.Reasons, reason)
}

// ResultStatus types the outcome of one ticker's analysis pipeline.
type ResultStatus string

const (
	StatusOK    ResultStatus = "OK"
	StatusSkip  ResultStatus = "SKIP"  // history too short
	StatusError ResultStatus = "ERROR" // upstream failure
)

// Verdict tiers mapped from the winning score by ordered cutoffs.
const (
	VerdictStrongBuy = "STRONG BUY"
	VerdictBuy       = "BUY"
	VerdictNeutral   = "NEUTRAL"
	VerdictAvoid     = "AVOID / SELL"
	VerdictSkip      = "SKIP"
	VerdictError     = "ERROR"
)

// AnalysisResult is the external contract emitted for every ticker, present
// even on failure (score 0, ERROR/SKIP status, reason text). Price fields
// are whole rupiah; ChangePct is a percentage rounded to two decimals.
type AnalysisResult struct {
	Ticker      string       `json:"ticker"`
	Status      ResultStatus `json:"status"`
	Strategy    Strategy     `json:"type"`
	Score       int          `json:"score"`
	Verdict     string       `json:"verdict"`
	Reason      string       `json:"reason"`
	LastPrice   int64        `json:"last_price"`
	ChangePct   float64      `json:"change_pct"`
	Support     int64        `json:"support"`
	StopLoss    int64        `json:"stop_loss"`
	TargetPrice int64        `json:"target_price"`
}

// TradePlan is the per-strategy execution plan derived from the winning
// strategy, the support estimate and the ATR volatility unit. Transient
// response payload, never persisted.
type TradePlan struct {
	EntryLow     int64   `json:"entry_low"`
	EntryHigh    int64   `json:"entry_high"`
	WaitPullback bool    `json:"wait_pullback"`
	StopLoss     int64   `json:"stop_loss"`
	TakeProfits  []int64 `json:"take_profits,omitempty"`
	Hold         string  `json:"hold,omitempty"` // qualitative instruction for hold-type strategies
	Support      int64   `json:"support"`
}

// StockReport bundles the analysis with its derived plan for presentation.
type StockReport struct {
	Result *AnalysisResult
	Plan   *TradePlan
}
