package recorder

import (
	"time"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// StockInfo is one row of the master listing table.
type StockInfo struct {
	Ticker        string
	CompanyName   string
	Sector        string
	IsSyariah     bool
	IsLQ45        bool
	SpecialStatus string // "NORMAL", "UMA", "SUSPEND"
}

// ScanRecord is one persisted scan outcome, read back for history queries.
type ScanRecord struct {
	ID         int64     `json:"id"`
	ScanDate   time.Time `json:"scan_date"`
	Ticker     string    `json:"ticker"`
	Strategy   string    `json:"type"`
	Score      int       `json:"score"`
	Verdict    string    `json:"verdict"`
	Reason     string    `json:"reason"`
	EntryArea  string    `json:"entry_area"`
	StopLoss   int64     `json:"stop_loss"`
	TakeProfit string    `json:"take_profit"`
}

// Recorder persists scan outcomes for later review.
type Recorder interface {
	UpsertStock(info *StockInfo) error
	RecordScan(report *model.StockReport) error
	RecentScans(strategy string, limit int) ([]*ScanRecord, error)
	Close() error
}
