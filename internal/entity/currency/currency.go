package currency

import (
	"time"

	"golang.org/x/text/language"
)

const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	INR = "INR"
)

// Base is the unit all rates are stored relative to.
const Base = USD

var Currencies = []string{USD, EUR, GBP, INR}

// Rate is one persisted exchange rate relative to Base.
type Rate struct {
	Name      string
	BaseRate  float64
	UpdatedAt time.Time
}

// RateTable maps currency code to its multiplier relative to Base.
type RateTable struct {
	Rates     map[string]float64
	UpdatedAt time.Time
	Fallback  bool
}

// FallbackTable is served when the rate provider is unreachable or has
// not been pulled yet.
func FallbackTable() RateTable {
	return RateTable{
		Rates: map[string]float64{
			USD: 1,
			EUR: 0.92,
			GBP: 0.79,
			INR: 83.12,
		},
		UpdatedAt: time.Now(),
		Fallback:  true,
	}
}

// Rate returns the stored multiplier. Unknown codes resolve to 1 so
// conversion degrades to identity instead of failing.
func (t RateTable) Rate(code string) float64 {
	if rate, ok := t.Rates[code]; ok && rate != 0 {
		return rate
	}
	return 1
}

var locales = map[string]language.Tag{
	USD: language.AmericanEnglish,
	EUR: language.German,
	GBP: language.BritishEnglish,
	INR: language.MustParse("en-IN"),
}

// LocaleFor maps a display currency to the locale its amounts are
// rendered with.
func LocaleFor(code string) language.Tag {
	if tag, ok := locales[code]; ok {
		return tag
	}
	return language.AmericanEnglish
}

func Known(code string) bool {
	for _, curr := range Currencies {
		if curr == code {
			return true
		}
	}
	return false
}
