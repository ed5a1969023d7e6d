package chart

import (
	"bytes"
	"testing"
	"time"

	"StockChat/internal/model"
	"StockChat/internal/provider"
)

func TestRender_EmptySeries(t *testing.T) {
	if _, err := Render(model.HistorySeries{Symbol: "X.NS"}); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestRender_SinglePoint(t *testing.T) {
	series := model.HistorySeries{
		Symbol: "X.NS",
		Bars:   []model.OHLCV{{Time: time.Now(), Open: 1, High: 2, Low: 0.5, Close: 1.5}},
	}
	if _, err := Render(series); err == nil {
		t.Error("expected error for single-point series")
	}
}

func TestRender_PNGOutput(t *testing.T) {
	series := model.HistorySeries{
		Symbol: "RELIANCE.NS",
		Bars:   provider.GenerateBars(2950, 30),
	}
	img, err := Render(series)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(img) == 0 {
		t.Fatal("expected non-empty image bytes")
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}
