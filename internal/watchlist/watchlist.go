// Package watchlist holds the user's monitored tickers behind a small
// store with an explicit lifecycle: constructed at startup, mutated via
// narrow methods, persisted to a JSON file on every change.
package watchlist

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
)

// Store is a concurrency-safe set of plain ticker codes (no .JK suffix).
type Store struct {
	mu       sync.Mutex
	tickers  map[string]bool
	filePath string
}

// NewStore loads the watchlist from disk, seeding it with defaults when no
// file exists yet. An empty filePath keeps the store memory-only.
func NewStore(filePath string, defaults []string) (*Store, error) {
	s := &Store{tickers: make(map[string]bool), filePath: filePath}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			var saved []string
			if err := json.Unmarshal(data, &saved); err != nil {
				return nil, err
			}
			for _, t := range saved {
				s.tickers[t] = true
			}
			return s, nil
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	for _, t := range defaults {
		s.tickers[t] = true
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Add inserts a ticker. Returns false when it was already present.
func (s *Store) Add(ticker string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tickers[ticker] {
		return false, nil
	}
	s.tickers[ticker] = true
	return true, s.save()
}

// Remove deletes a ticker. Returns false when it was not present.
func (s *Store) Remove(ticker string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tickers[ticker] {
		return false, nil
	}
	delete(s.tickers, ticker)
	return true, s.save()
}

// Contains reports membership.
func (s *Store) Contains(ticker string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickers[ticker]
}

// List returns the tickers sorted alphabetically.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.tickers))
	for t := range s.tickers {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// save persists under the held lock.
func (s *Store) save() error {
	if s.filePath == "" {
		return nil
	}
	out := make([]string, 0, len(s.tickers))
	for t := range s.tickers {
		out = append(out, t)
	}
	sort.Strings(out)
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0644)
}
