package recorder

import "StockChat/internal/model"

// QueryEvent holds one chatbot exchange.
type QueryEvent struct {
	Message string
	Reply   string
	Ticker  string // "" when no ticker was resolved
}

// Recorder persists chat exchanges and resolved snapshots for analysis.
type Recorder interface {
	RecordQuery(evt *QueryEvent) error
	RecordSnapshot(snap *model.Snapshot) error
	Close() error
}
