package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// HistorySeries holds an ordered run of bars for one symbol, ascending by time.
type HistorySeries struct {
	Symbol string
	Bars   []OHLCV
}

// Empty reports whether the series carries no bars.
func (s HistorySeries) Empty() bool { return len(s.Bars) == 0 }

// Data source tags carried on every Snapshot.
const (
	SourceLive = "live"
	SourceDemo = "demo"
)

// Snapshot is an immutable point-in-time quote for one ticker.
type Snapshot struct {
	Ticker        string
	CompanyName   string
	Currency      string
	LastPrice     float64
	PreviousClose float64
	DayChange     float64
	DayChangePct  float64
	Volume        int64
	DataSource    string
}

// Quote holds best-effort fast-quote metadata from the provider.
// Zero values mean the provider did not supply the field.
type Quote struct {
	LastPrice     float64
	PreviousClose float64
	Volume        int64
	Currency      string
	CompanyName   string
}
