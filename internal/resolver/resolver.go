package resolver

import (
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"StockChat/internal/model"
	"StockChat/internal/provider"
)

const demoHistoryBars = 30

// Resolver produces price snapshots and history series for tickers,
// substituting deterministic synthetic data when the live provider is
// unusable. It is the only component that sees provider errors; its public
// operations always return values, never errors.
type Resolver struct {
	fetcher  provider.Fetcher
	fixtures map[string]Fixture

	// Now is the clock used as the end of synthetic history windows.
	// Overridable for deterministic tests.
	Now func() time.Time
}

// New creates a Resolver. An empty fixtures map falls back to DefaultFixtures.
func New(fetcher provider.Fetcher, fixtures map[string]Fixture) *Resolver {
	if len(fixtures) == 0 {
		fixtures = DefaultFixtures
	}
	return &Resolver{
		fetcher:  fetcher,
		fixtures: fixtures,
		Now:      time.Now,
	}
}

// Normalize canonicalizes raw ticker text: trimmed and uppercased.
// Empty or whitespace-only input normalizes to "", which every operation
// treats as "no ticker".
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Snapshot resolves a point-in-time quote for ticker. It returns nil when
// the ticker is empty or unknown and no fixture covers it; it never returns
// an error.
func (r *Resolver) Snapshot(ticker string) *model.Snapshot {
	t := Normalize(ticker)
	if t == "" {
		return nil
	}

	bars, err := r.fetcher.FetchDailyBars(t, 5)
	if err != nil {
		log.Printf("[WARN] live bars for %s failed: %v, trying demo data", t, err)
		return r.demoSnapshot(t)
	}

	closes := make([]float64, 0, len(bars))
	for _, b := range bars {
		if b.Close != 0 {
			closes = append(closes, b.Close)
		}
	}
	if len(closes) == 0 {
		log.Printf("[WARN] no close prices for %s, trying demo data", t)
		return r.demoSnapshot(t)
	}

	lastPrice := closes[len(closes)-1]
	previousClose := lastPrice
	if len(closes) > 1 {
		previousClose = closes[len(closes)-2]
	}
	volume := int64(bars[len(bars)-1].Volume)

	companyName := t
	currency := "USD"
	if strings.HasSuffix(t, ".NS") {
		currency = "INR"
	}

	// Fast quote is best-effort: a failure here leaves the bar-derived
	// values standing and never triggers the demo path.
	if quote, err := r.fetcher.FetchQuote(t); err == nil && quote != nil {
		if quote.LastPrice != 0 {
			lastPrice = quote.LastPrice
		}
		if quote.PreviousClose != 0 {
			previousClose = quote.PreviousClose
		}
		if quote.Volume != 0 {
			volume = quote.Volume
		}
		if quote.Currency != "" {
			currency = quote.Currency
		}
		if quote.CompanyName != "" {
			companyName = quote.CompanyName
		}
	} else if err != nil {
		log.Printf("[WARN] fast quote for %s failed: %v, keeping bar-derived values", t, err)
	}

	return buildSnapshot(t, companyName, currency, lastPrice, previousClose, volume, model.SourceLive)
}

// History resolves an OHLCV series for ticker over period/interval. On
// provider failure or an empty result it falls back to synthetic history;
// unknown tickers resolve to an empty series, never an error.
func (r *Resolver) History(ticker, period, interval string) model.HistorySeries {
	t := Normalize(ticker)
	if t == "" {
		return model.HistorySeries{}
	}

	bars, err := r.fetcher.FetchHistory(t, period, interval)
	if err != nil {
		log.Printf("[WARN] live history for %s failed: %v, trying demo data", t, err)
		return r.demoHistory(t)
	}
	if len(bars) == 0 {
		return r.demoHistory(t)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return model.HistorySeries{Symbol: t, Bars: bars}
}

func (r *Resolver) demoSnapshot(ticker string) *model.Snapshot {
	fx, ok := r.fixtures[ticker]
	if !ok {
		return nil
	}
	return buildSnapshot(ticker, fx.CompanyName, fx.Currency,
		fx.LastPrice, fx.PreviousClose, fx.Volume, model.SourceDemo)
}

// demoHistory generates a fixed 30-bar daily window ending today, seeded by
// the ticker's fixture. The same fixture and day always produce identical
// bars.
func (r *Resolver) demoHistory(ticker string) model.HistorySeries {
	fx, ok := r.fixtures[ticker]
	if !ok {
		return model.HistorySeries{Symbol: ticker}
	}

	now := r.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	base := fx.PreviousClose

	bars := make([]model.OHLCV, 0, demoHistoryBars)
	for i := 0; i < demoHistoryBars; i++ {
		drift := float64(i-15) * 0.002
		open := base * (1 + drift)
		close := open * (1 - 0.0008)
		if i%2 == 0 {
			close = open * (1 + 0.001)
		}
		high := math.Max(open, close) * 1.004
		low := math.Min(open, close) * 0.996
		volume := math.Round(float64(fx.Volume) * (0.85 + float64(i%5)*0.05))

		bars = append(bars, model.OHLCV{
			Time:   end.AddDate(0, 0, i-(demoHistoryBars-1)),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: volume,
		})
	}
	return model.HistorySeries{Symbol: ticker, Bars: bars}
}

func buildSnapshot(ticker, companyName, currency string, lastPrice, previousClose float64, volume int64, source string) *model.Snapshot {
	dayChange := lastPrice - previousClose
	dayChangePct := 0.0
	if previousClose != 0 {
		dayChangePct = dayChange / previousClose * 100
	}
	return &model.Snapshot{
		Ticker:        ticker,
		CompanyName:   companyName,
		Currency:      currency,
		LastPrice:     lastPrice,
		PreviousClose: previousClose,
		DayChange:     dayChange,
		DayChangePct:  dayChangePct,
		Volume:        volume,
		DataSource:    source,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
