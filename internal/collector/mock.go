package collector

import (
	"context"
	"time"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price      float64
	DailyData  []model.OHLCV
	WeeklyData []model.OHLCV
	Fund       *model.Fundamentals
	Err        error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, _ string, interval, _ string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if interval == "1wk" {
		if m.WeeklyData != nil {
			return m.WeeklyData, nil
		}
		return GenerateBars(m.Price, 104), nil
	}
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return GenerateBars(m.Price, 252), nil
}

func (m *MockFetcher) FetchFundamentals(_ context.Context, _ string) (model.Fundamentals, error) {
	if m.Fund != nil {
		return *m.Fund, nil
	}
	return model.DefaultFundamentals(), nil
}

// GenerateBars produces a gently trending synthetic series around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
