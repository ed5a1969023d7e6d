package chatbot

import (
	"strings"
	"testing"

	"StockChat/internal/provider"
	"StockChat/internal/resolver"
)

func newTestBot(fetcher provider.Fetcher) *Chatbot {
	return New(resolver.New(fetcher, nil), nil, nil)
}

func TestExtractTicker(t *testing.T) {
	cb := newTestBot(&provider.MockFetcher{})

	tests := []struct {
		text string
		want string
	}{
		{"What is RELIANCE.NS price?", "RELIANCE.NS"},
		{"what is reliance.ns price?", "RELIANCE.NS"},
		{"Show me INFY.BO today", "INFY.BO"},
		{"Quote for TCS.NS please", "TCS.NS"},
		{"Tell me about TCS stock", "TCS.NS"},
		{"how is reliance doing", "RELIANCE.NS"},
		{"what's the weather like", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cb.ExtractTicker(tt.text); got != tt.want {
			t.Errorf("ExtractTicker(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractTicker_AliasOrder(t *testing.T) {
	aliases := []Alias{
		{"ACME", "ACME.NS"},
		{"ACM", "ACM.BO"},
	}
	cb := New(resolver.New(&provider.MockFetcher{}, nil), nil, aliases)

	// Both aliases match as substrings; declaration order wins.
	if got := cb.ExtractTicker("thoughts on acme?"); got != "ACME.NS" {
		t.Errorf("expected first declared alias to win, got %q", got)
	}
}

func TestIsPriceIntent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"What is the price?", true},
		{"show me the LATEST", true},
		{"how is the market", true},
		{"any stock tips", true},
		{"hello there", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPriceIntent(tt.text); got != tt.want {
			t.Errorf("IsPriceIntent(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestAnswer_PriceIntentWithoutTicker(t *testing.T) {
	cb := newTestBot(&provider.MockFetcher{Fail: true})

	resp := cb.Answer("price?")
	if resp.Ticker != "" {
		t.Errorf("expected no ticker, got %q", resp.Ticker)
	}
	for _, want := range []string{"RELIANCE.NS", "TCS.NS", "ticker"} {
		if !strings.Contains(resp.Text, want) {
			t.Errorf("ticker request should mention %q: %s", want, resp.Text)
		}
	}
}

func TestAnswer_GenericMessage(t *testing.T) {
	cb := newTestBot(&provider.MockFetcher{Fail: true})

	resp := cb.Answer("hello")
	if resp.Ticker != "" {
		t.Errorf("expected no ticker, got %q", resp.Ticker)
	}
	if !strings.Contains(resp.Text, "stock price queries") {
		t.Errorf("expected capability message, got: %s", resp.Text)
	}
}

func TestAnswer_UnknownTicker(t *testing.T) {
	cb := newTestBot(&provider.MockFetcher{Fail: true})

	resp := cb.Answer("What is INFY.NS price?")
	if resp.Ticker != "INFY.NS" {
		t.Errorf("failed fetch should still report the tried ticker, got %q", resp.Ticker)
	}
	if !strings.Contains(resp.Text, "could not fetch data for INFY.NS") {
		t.Errorf("unexpected reply: %s", resp.Text)
	}
}

func TestAnswer_DemoSnapshot(t *testing.T) {
	cb := newTestBot(&provider.MockFetcher{Fail: true})

	resp := cb.Answer("What is RELIANCE.NS price?")
	if resp.Ticker != "RELIANCE.NS" {
		t.Fatalf("expected resolved ticker, got %q", resp.Ticker)
	}
	for _, want := range []string{
		"Reliance Industries Ltd (RELIANCE.NS)",
		"2968.50 INR",
		"up 17.30",
		"5,123,400",
		"[demo data]",
	} {
		if !strings.Contains(resp.Text, want) {
			t.Errorf("reply missing %q: %s", want, resp.Text)
		}
	}

	// TCS fixture closed below previous close.
	resp = cb.Answer("Tell me about TCS stock")
	if resp.Ticker != "TCS.NS" {
		t.Fatalf("expected TCS.NS via alias, got %q", resp.Ticker)
	}
	if !strings.Contains(resp.Text, "down 22.55") {
		t.Errorf("expected down wording: %s", resp.Text)
	}
}

func TestAnswer_LiveSnapshotNoDemoMarker(t *testing.T) {
	bars := provider.GenerateBars(2950, 5)
	cb := newTestBot(&provider.MockFetcher{Bars: bars, QuoteErr: true})

	resp := cb.Answer("RELIANCE.NS quote")
	if resp.Ticker != "RELIANCE.NS" {
		t.Fatalf("expected resolved ticker, got %q", resp.Ticker)
	}
	if strings.Contains(resp.Text, "[demo data]") {
		t.Errorf("live reply must not carry the demo marker: %s", resp.Text)
	}
}
