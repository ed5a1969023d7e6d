package provider

import (
	"errors"
	"time"

	"StockChat/internal/model"
)

// Fetcher defines the interface for fetching live market data.
// Implementations make a single attempt per call and return every failure
// to the caller; fallback policy lives upstream in the resolver.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	FetchHistory(symbol, period, interval string) ([]model.OHLCV, error)
	FetchQuote(symbol string) (*model.Quote, error)
	Name() string
}

// ErrUnavailable is returned by MockFetcher when configured to fail.
var ErrUnavailable = errors.New("provider unavailable")

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars     []model.OHLCV
	Quote    *model.Quote
	Fail     bool // every call returns ErrUnavailable
	QuoteErr bool // only FetchQuote fails
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.Fail {
		return nil, ErrUnavailable
	}
	if len(m.Bars) > days {
		return m.Bars[len(m.Bars)-days:], nil
	}
	return m.Bars, nil
}

func (m *MockFetcher) FetchHistory(_, _, _ string) ([]model.OHLCV, error) {
	if m.Fail {
		return nil, ErrUnavailable
	}
	return m.Bars, nil
}

func (m *MockFetcher) FetchQuote(_ string) (*model.Quote, error) {
	if m.Fail || m.QuoteErr {
		return nil, ErrUnavailable
	}
	if m.Quote == nil {
		return &model.Quote{}, nil
	}
	return m.Quote, nil
}

// GenerateBars builds a simple ramp of daily bars around basePrice,
// ending today. Handy for wiring up MockFetcher in tests.
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
