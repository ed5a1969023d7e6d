package chatbot

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"

	"StockChat/internal/model"
	"StockChat/internal/resolver"
)

// Alias maps a bare company name to its canonical exchange-qualified
// ticker. Declaration order is the match order.
type Alias struct {
	Name   string
	Ticker string
}

// DefaultAliases covers the curated tickers' plain company names.
var DefaultAliases = []Alias{
	{"RELIANCE", "RELIANCE.NS"},
	{"TCS", "TCS.NS"},
}

var (
	// Explicit exchange-qualified symbol, e.g. RELIANCE.NS.
	exchangeTickerPattern = regexp.MustCompile(`\b[A-Z]{2,10}\.(?:NS|BO|NSE|BSE)\b`)
	tokenPattern          = regexp.MustCompile(`\b[A-Z0-9.]{2,15}\b`)
)

var priceKeywords = []string{"price", "stock", "quote", "latest", "trading", "market", "value"}

// Chatbot maps free-text user messages to price answers. Pure pattern
// matching, intentionally simple; no learned model.
type Chatbot struct {
	resolver *resolver.Resolver
	tickers  []string
	known    map[string]struct{}
	aliases  []Alias
}

// New creates a Chatbot. Nil tickers or aliases fall back to the defaults.
func New(r *resolver.Resolver, tickers []string, aliases []Alias) *Chatbot {
	if len(tickers) == 0 {
		tickers = resolver.DefaultTickers
	}
	if len(aliases) == 0 {
		aliases = DefaultAliases
	}
	known := make(map[string]struct{}, len(tickers))
	for _, t := range tickers {
		known[t] = struct{}{}
	}
	return &Chatbot{resolver: r, tickers: tickers, known: known, aliases: aliases}
}

// ExtractTicker pulls a ticker out of free text: explicit exchange-qualified
// symbols first, then exact curated-set tokens, then alias substrings in
// declaration order. Returns "" when nothing matches.
func (c *Chatbot) ExtractTicker(text string) string {
	message := strings.ToUpper(text)

	if match := exchangeTickerPattern.FindString(message); match != "" {
		return match
	}

	for _, token := range tokenPattern.FindAllString(message, -1) {
		if _, ok := c.known[token]; ok {
			return token
		}
	}

	for _, a := range c.aliases {
		if strings.Contains(message, a.Name) {
			return a.Ticker
		}
	}
	return ""
}

// IsPriceIntent reports whether the message looks like a price question.
func IsPriceIntent(text string) bool {
	message := strings.ToLower(text)
	for _, kw := range priceKeywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// Answer turns a user message into a chat reply, resolving a snapshot when
// a ticker can be extracted. It never returns an error; failures surface as
// plain-language text.
func (c *Chatbot) Answer(text string) model.ChatResponse {
	ticker := c.ExtractTicker(text)

	if ticker == "" && IsPriceIntent(text) {
		return model.ChatResponse{
			Text: fmt.Sprintf(
				"Please share a ticker symbol. Try %s. Default supported symbols: %s",
				c.tickers[0], strings.Join(c.tickers, ", ")),
		}
	}
	if ticker == "" {
		return model.ChatResponse{
			Text: "I can help with stock price queries. Example: 'What is RELIANCE.NS price?' or 'Show TCS.NS stock'.",
		}
	}

	snapshot := c.resolver.Snapshot(ticker)
	if snapshot == nil {
		return model.ChatResponse{
			Text:   fmt.Sprintf("I could not fetch data for %s. Please verify the ticker and try again.", ticker),
			Ticker: ticker,
		}
	}

	direction := "up"
	if snapshot.DayChange < 0 {
		direction = "down"
	}
	sourceNote := ""
	if snapshot.DataSource == model.SourceDemo {
		sourceNote = " [demo data]"
	}
	reply := fmt.Sprintf(
		"%s (%s) is trading at %.2f %s. It is %s %.2f (%.2f%%) vs previous close. Volume: %s.%s",
		snapshot.CompanyName, snapshot.Ticker, snapshot.LastPrice, snapshot.Currency,
		direction, math.Abs(snapshot.DayChange), math.Abs(snapshot.DayChangePct),
		humanize.Comma(snapshot.Volume), sourceNote)

	return model.ChatResponse{Text: reply, Ticker: snapshot.Ticker}
}
