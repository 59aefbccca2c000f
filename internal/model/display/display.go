// Package display turns stored amounts into strings in the user's
// chosen currency and locale. Rates and preferences are injected, not
// read from ambient state, so formatting is reproducible in tests.
package display

import (
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/message"

	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/entity/finance"
)

type ratesProvider interface {
	Table() currency.RateTable
}

type config interface {
	BaseCurrency() string
}

type Formatter struct {
	rates           ratesProvider
	defaultCurrency string
}

func NewFormatter(rates ratesProvider, config config) *Formatter {
	return &Formatter{
		rates:           rates,
		defaultCurrency: config.BaseCurrency(),
	}
}

// Convert moves amount from one currency to another through the base
// unit. Unknown codes resolve to rate 1, so conversion silently
// degrades to identity. That leniency is inherited product behavior;
// callers wanting strictness must validate codes first.
func (f *Formatter) Convert(amount float64, from, to string) float64 {
	table := f.rates.Table()
	return amount / table.Rate(from) * table.Rate(to)
}

// Format renders amount (stored in base) in the user's display
// currency with that currency's locale conventions.
func (f *Formatter) Format(amount float64, base string, settings finance.Settings) string {
	display := settings.DisplayCurrencyOrDefault(f.defaultCurrency)
	if base == "" {
		base = settings.BaseCurrencyOrDefault(f.defaultCurrency)
	}
	if display != base {
		amount = f.Convert(amount, base, display)
	}
	return render(amount, display)
}

func render(amount float64, code string) string {
	printer := message.NewPrinter(currency.LocaleFor(code))
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f", amount)
	}
	return printer.Sprintf("%v", xcurrency.Symbol(unit.Amount(amount)))
}
