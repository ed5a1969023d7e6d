package resolver

// Fixture seeds synthetic snapshot and history generation for one ticker.
type Fixture struct {
	CompanyName   string
	Currency      string
	LastPrice     float64
	PreviousClose float64
	Volume        int64
}

// DefaultTickers is the curated set of supported exchange symbols, used for
// token matching and as the user-facing fallback hint.
var DefaultTickers = []string{"RELIANCE.NS", "TCS.NS"}

// DefaultFixtures maps each curated ticker to its demo seed data.
var DefaultFixtures = map[string]Fixture{
	"RELIANCE.NS": {
		CompanyName:   "Reliance Industries Ltd",
		Currency:      "INR",
		LastPrice:     2968.50,
		PreviousClose: 2951.20,
		Volume:        5123400,
	},
	"TCS.NS": {
		CompanyName:   "Tata Consultancy Services Ltd",
		Currency:      "INR",
		LastPrice:     4188.40,
		PreviousClose: 4210.95,
		Volume:        2389100,
	},
}
