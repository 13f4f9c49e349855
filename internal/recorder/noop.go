package recorder

import "github.com/RidwanSaja099/alpha-hunter-server/internal/model"

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) UpsertStock(_ *StockInfo) error        { return nil }
func (n *NoopRecorder) RecordScan(_ *model.StockReport) error { return nil }
func (n *NoopRecorder) RecentScans(_ string, _ int) ([]*ScanRecord, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
