// Package api exposes the scoring pipeline over HTTP: dashboard scan
// results, single-ticker lookups, watchlist management and scan history.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/recorder"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/screener"
	"github.com/RidwanSaja099/alpha-hunter-server/internal/watchlist"
)

// syariahMinScore filters weak names out of the sharia scan view.
const syariahMinScore = 60

// Server is the HTTP API server.
type Server struct {
	addr       string
	log        *logrus.Logger
	router     *mux.Router
	httpServer *http.Server

	screener  *screener.Screener
	watchlist *watchlist.Store
	recorder  recorder.Recorder
	scanLimit int
}

// NewServer creates the API server and wires its routes.
func NewServer(addr string, scr *screener.Screener, wl *watchlist.Store, rec recorder.Recorder, scanLimit int, log *logrus.Logger) *Server {
	s := &Server{
		addr:      addr,
		log:       log,
		screener:  scr,
		watchlist: wl,
		recorder:  rec,
		scanLimit: scanLimit,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)
	s.router.Use(s.corsMiddleware)

	s.router.HandleFunc("/", s.handleHome).Methods("GET")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.router.HandleFunc("/api/scan-results", s.handleScanResults).Methods("GET")
	s.router.HandleFunc("/api/stock-detail", s.handleStockDetail).Methods("GET")
	s.router.HandleFunc("/api/scan-history", s.handleScanHistory).Methods("GET")
	s.router.HandleFunc("/api/watchlist/add", s.handleWatchlistAdd).Methods("POST")
	s.router.HandleFunc("/api/watchlist/remove", s.handleWatchlistRemove).Methods("POST")
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // batch scans can be slow on cold cache
		IdleTimeout:  60 * time.Second,
	}
	s.log.WithField("address", s.addr).Info("starting HTTP server")
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("Alpha Hunter server: READY"))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"watchlist": len(s.watchlist.List()),
		"timestamp": time.Now().Unix(),
	})
}

// handleScanResults scans a universe chosen by the strategy filter and
// returns the dashboard cards, best score first.
func (s *Server) handleScanResults(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("strategy")
	if target == "" {
		target = "ALL"
	}

	var universe []string
	switch target {
	case "SYARIAH":
		universe = screener.SyariahList
	case "ALL", "WATCHLIST":
		universe = s.watchlist.List()
	default:
		universe = screener.MarketUniverse
	}
	if len(universe) > s.scanLimit {
		universe = universe[:s.scanLimit]
	}

	reports := s.screener.ScanAll(r.Context(), universe)

	items := make([]StockItem, 0, len(reports))
	for _, report := range reports {
		res := report.Result
		if res.Status != model.StatusOK || res.LastPrice == 0 {
			continue
		}
		switch target {
		case "SYARIAH":
			if res.Score < syariahMinScore {
				continue
			}
		case "ALL", "WATCHLIST":
			// every scored name from the watchlist is shown
		default:
			if string(res.Strategy) != target {
				continue
			}
		}
		plain := screener.PlainTicker(res.Ticker)
		items = append(items, newStockItem(report, s.watchlist.Contains(plain)))
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleStockDetail(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No Ticker"})
		return
	}

	report := s.screener.Analyze(r.Context(), ticker)
	res := report.Result
	if res.Status != model.StatusOK || res.LastPrice == 0 {
		writeJSON(w, http.StatusOK, notFoundItem(res.Ticker, res.Reason))
		return
	}

	plain := screener.PlainTicker(res.Ticker)
	writeJSON(w, http.StatusOK, newStockItem(report, s.watchlist.Contains(plain)))
}

func (s *Server) handleScanHistory(w http.ResponseWriter, r *http.Request) {
	strategy := r.URL.Query().Get("strategy")
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	recs, err := s.recorder.RecentScans(strategy, limit)
	if err != nil {
		s.log.WithError(err).Error("read scan history")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "history unavailable"})
		return
	}
	if recs == nil {
		recs = []*recorder.ScanRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	s.mutateWatchlist(w, r, s.watchlist.Add)
}

func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	s.mutateWatchlist(w, r, s.watchlist.Remove)
}

func (s *Server) mutateWatchlist(w http.ResponseWriter, r *http.Request, op func(string) (bool, error)) {
	ticker := screener.PlainTicker(r.URL.Query().Get("ticker"))
	if ticker == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No Ticker"})
		return
	}
	if _, err := op(ticker); err != nil {
		s.log.WithError(err).WithField("ticker", ticker).Error("watchlist update")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "watchlist update failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Success",
		"current_list": s.watchlist.List(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("encode response")
	}
}

// Middleware

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapped.statusCode,
			"duration": time.Since(start),
			"remote":   r.RemoteAddr,
		}).Info("HTTP request")
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.log.WithFields(logrus.Fields{
					"error": err,
					"path":  r.URL.Path,
				}).Error("panic recovered")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(next)
}
