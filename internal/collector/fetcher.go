package collector

import (
	"context"
	"errors"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// ErrDataUnavailable signals an empty or too-short price history. The
// pipeline converts it into a SKIP result rather than propagating it.
var ErrDataUnavailable = errors.New("price history unavailable")

// Fetcher defines the price-history provider boundary.
type Fetcher interface {
	// FetchHistory returns OHLCV bars for the ticker at the given interval
	// ("1d" or "1wk") over the given range ("1y", "2y", ...), ascending by
	// time.
	FetchHistory(ctx context.Context, ticker, interval, rng string) ([]model.OHLCV, error)
	// FetchFundamentals returns valuation multiples. Implementations
	// substitute documented defaults for missing fields.
	FetchFundamentals(ctx context.Context, ticker string) (model.Fundamentals, error)
	Name() string
}
