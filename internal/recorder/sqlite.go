package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log *logrus.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *logrus.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block scan writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.WithField("path", dbPath).Info("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stocks_master (
			ticker         TEXT PRIMARY KEY,
			company_name   TEXT,
			sector         TEXT,
			is_syariah     BOOLEAN DEFAULT 0,
			is_lq45        BOOLEAN DEFAULT 0,
			special_status TEXT DEFAULT 'NORMAL'
		)`,

		`CREATE TABLE IF NOT EXISTS scan_results (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_date      DATETIME DEFAULT CURRENT_TIMESTAMP,
			ticker         TEXT,
			scanner_type   TEXT,
			accuracy_score INTEGER,
			verdict        TEXT,
			reason         TEXT,
			entry_area     TEXT,
			stop_loss      INTEGER,
			take_profit    TEXT,
			FOREIGN KEY (ticker) REFERENCES stocks_master(ticker)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_date ON scan_results(scan_date)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_type ON scan_results(scanner_type)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) UpsertStock(info *StockInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO stocks_master
		(ticker, company_name, sector, is_syariah, is_lq45, special_status)
		VALUES (?,?,?,?,?,?)
		ON CONFLICT(ticker) DO UPDATE SET
			company_name=excluded.company_name,
			sector=excluded.sector,
			is_syariah=excluded.is_syariah,
			is_lq45=excluded.is_lq45,
			special_status=excluded.special_status`,
		info.Ticker, info.CompanyName, info.Sector,
		info.IsSyariah, info.IsLQ45, info.SpecialStatus,
	)
	return err
}

// RecordScan stores one completed analysis. SKIP and ERROR outcomes are not
// persisted; history holds scored outcomes only.
func (r *SQLiteRecorder) RecordScan(report *model.StockReport) error {
	res := report.Result
	if res.Status != model.StatusOK {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scan_results
		(ticker, scanner_type, accuracy_score, verdict, reason, entry_area, stop_loss, take_profit)
		VALUES (?,?,?,?,?,?,?,?)`,
		res.Ticker, string(res.Strategy), res.Score, res.Verdict, res.Reason,
		entryArea(report.Plan), planStop(report.Plan, res.StopLoss), takeProfit(report.Plan),
	)
	return err
}

func (r *SQLiteRecorder) RecentScans(strategy string, limit int) ([]*ScanRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	query := `SELECT id, scan_date, ticker, scanner_type, accuracy_score,
		verdict, reason, entry_area, stop_loss, take_profit
		FROM scan_results`
	args := []any{}
	if strategy != "" {
		query += ` WHERE scanner_type = ?`
		args = append(args, strategy)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	var out []*ScanRecord
	for rows.Next() {
		var rec ScanRecord
		var scanDate string
		if err := rows.Scan(&rec.ID, &scanDate, &rec.Ticker, &rec.Strategy,
			&rec.Score, &rec.Verdict, &rec.Reason, &rec.EntryArea,
			&rec.StopLoss, &rec.TakeProfit); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if t, err := time.Parse("2006-01-02 15:04:05", scanDate); err == nil {
			rec.ScanDate = t
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}

func entryArea(plan *model.TradePlan) string {
	if plan == nil {
		return ""
	}
	return fmt.Sprintf("%d-%d", plan.EntryLow, plan.EntryHigh)
}

func planStop(plan *model.TradePlan, fallback int64) int64 {
	if plan == nil {
		return fallback
	}
	return plan.StopLoss
}

func takeProfit(plan *model.TradePlan) string {
	if plan == nil {
		return ""
	}
	if len(plan.TakeProfits) == 0 {
		return plan.Hold
	}
	parts := make([]string, len(plan.TakeProfits))
	for i, tp := range plan.TakeProfits {
		parts[i] = fmt.Sprintf("TP%d: %d", i+1, tp)
	}
	return strings.Join(parts, ", ")
}
