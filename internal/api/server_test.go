package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/cache"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/collector"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/recorder"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/screener"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/strategy"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/watchlist"
)

func newTestServer(t *testing.T, fetcher collector.Fetcher, tickers []string) *Server {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	col := collector.NewCollector(fetcher, log)
	eng := strategy.NewEngine(strategy.DefaultParams())
	scr := screener.New(col, eng, cache.New(0), log, screener.Options{Workers: 2})

	wl, err := watchlist.NewStore("", tickers)
	if err != nil {
		t.Fatalf("watchlist: %v", err)
	}
	return NewServer(":0", scr, wl, recorder.NewNoopRecorder(), 40, log)
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestScanResultsReturnsCards(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Price: 4000}, []string{"BBRI", "TLKM"})

	rec := doRequest(s, "GET", "/api/scan-results")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var items []StockItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d cards, want 2", len(items))
	}
	for _, it := range items {
		if strings.HasSuffix(it.Ticker, ".JK") {
			t.Errorf("card ticker should be plain, got %q", it.Ticker)
		}
		if !strings.HasPrefix(it.CompanyName, "Rp ") {
			t.Errorf("company_name = %q", it.CompanyName)
		}
		if !it.IsWatchlist {
			t.Errorf("%s should be flagged as watchlist", it.Ticker)
		}
		if it.Plan.Entry == "" || it.Plan.TakeProfit == "" {
			t.Errorf("plan not populated: %+v", it.Plan)
		}
	}
}

func TestScanResultsStrategyFilter(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Price: 4000}, []string{"BBRI"})

	rec := doRequest(s, "GET", "/api/scan-results?strategy=ARA")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []StockItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, it := range items {
		if it.Analysis.Type != "ARA" {
			t.Errorf("filter leak: got type %q", it.Analysis.Type)
		}
	}
}

func TestStockDetailKnownTicker(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Price: 4000}, []string{"BBRI"})

	rec := doRequest(s, "GET", "/api/stock-detail?ticker=BBRI")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var item StockItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.Ticker != "BBRI" {
		t.Errorf("ticker = %q", item.Ticker)
	}
	if !item.Badges.Syariah {
		t.Errorf("BBRI should carry the syariah badge")
	}
	if !item.IsWatchlist {
		t.Errorf("BBRI is on the watchlist")
	}
}

func TestStockDetailMissingTickerParam(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Price: 4000}, nil)

	rec := doRequest(s, "GET", "/api/stock-detail")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStockDetailUnavailableData(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Err: errors.New("no data")}, nil)

	rec := doRequest(s, "GET", "/api/stock-detail?ticker=XXXX")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var item StockItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.CompanyName != "NOT FOUND" {
		t.Errorf("company_name = %q", item.CompanyName)
	}
	if item.Plan.Entry != "-" {
		t.Errorf("plan entry = %q", item.Plan.Entry)
	}
}

func TestWatchlistAddAndRemove(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Price: 4000}, []string{"BBRI"})

	rec := doRequest(s, "POST", "/api/watchlist/add?ticker=GOTO")
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d", rec.Code)
	}
	var resp struct {
		Message     string   `json:"message"`
		CurrentList []string `json:"current_list"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Success" || len(resp.CurrentList) != 2 {
		t.Errorf("add response = %+v", resp)
	}

	rec = doRequest(s, "POST", "/api/watchlist/remove?ticker=GOTO")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.CurrentList) != 1 || resp.CurrentList[0] != "BBRI" {
		t.Errorf("remove response = %+v", resp)
	}
}

func TestScanHistoryEmpty(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Price: 4000}, nil)

	rec := doRequest(s, "GET", "/api/scan-history")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &collector.MockFetcher{Price: 4000}, []string{"BBRI"})

	rec := doRequest(s, "GET", "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var health map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("health = %v", health)
	}
}
