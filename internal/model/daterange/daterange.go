package daterange

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/finance-tracker/internal/entity/finance"
)

// Preset names accepted by PresetRange.
const (
	ThisMonth   = "this-month"
	LastMonth   = "last-month"
	Last3Months = "last-3-months"
	Last6Months = "last-6-months"
	ThisYear    = "this-year"
)

var Presets = []string{ThisMonth, LastMonth, Last3Months, Last6Months, ThisYear}

// Range is inclusive on both ends. Custom ranges come straight from the
// caller; start <= end is not enforced here.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// MonthRange returns the calendar month monthsAgo months before the
// current one. monthsAgo = 0 is the current month.
func MonthRange(monthsAgo int) Range {
	return MonthRangeAt(time.Now(), monthsAgo)
}

func MonthRangeAt(ref time.Time, monthsAgo int) Range {
	// step back from the first of ref's month: AddDate on a day past
	// the target month's end would normalize forward a month
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	month := now.With(first.AddDate(0, -monthsAgo, 0))
	return Range{
		Start: month.BeginningOfMonth(),
		End:   month.EndOfMonth(),
	}
}

// FilterByMonth keeps transactions dated within the month monthsAgo
// months back. Filtering an already-filtered set is a no-op.
func FilterByMonth(txs []finance.Transaction, monthsAgo int) []finance.Transaction {
	return FilterByMonthAt(time.Now(), txs, monthsAgo)
}

func FilterByMonthAt(ref time.Time, txs []finance.Transaction, monthsAgo int) []finance.Transaction {
	return Filter(txs, MonthRangeAt(ref, monthsAgo))
}

func Filter(txs []finance.Transaction, r Range) []finance.Transaction {
	res := make([]finance.Transaction, 0)
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			res = append(res, tx)
		}
	}
	return res
}

// PresetRange resolves a named preset to calendar boundaries around ref.
// Unknown presets resolve to the current month.
func PresetRange(preset string) Range {
	return PresetRangeAt(time.Now(), preset)
}

func PresetRangeAt(ref time.Time, preset string) Range {
	month := now.With(ref)
	switch preset {
	case LastMonth:
		return MonthRangeAt(ref, 1)
	case Last3Months:
		return Range{
			Start: MonthRangeAt(ref, 2).Start,
			End:   month.EndOfMonth(),
		}
	case Last6Months:
		return Range{
			Start: MonthRangeAt(ref, 5).Start,
			End:   month.EndOfMonth(),
		}
	case ThisYear:
		return Range{
			Start: month.BeginningOfYear(),
			End:   month.EndOfYear(),
		}
	default:
		return MonthRangeAt(ref, 0)
	}
}
