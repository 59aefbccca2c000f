// Package overview computes the aggregates the screens display from
// collections already scoped to a date window by the caller.
// Everything here is pure and degrades to zero values on empty input.
package overview

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"max.ks1230/finance-tracker/internal/entity/finance"
)

// Summary is the income/expense/net header of a period.
type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	NetBalance   float64
}

func Summarize(txs []finance.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		if tx.Amount > 0 {
			s.TotalIncome += tx.Amount
		} else if tx.Amount < 0 {
			s.TotalExpense += math.Abs(tx.Amount)
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpense
	return s
}

// PercentageChange renders the change between two period values,
// sign-prefixed with one decimal place. A zero previous value yields
// "+100.0" for any growth and "0.0" otherwise; the asymmetry avoids a
// division by zero and is long-standing product behavior.
func PercentageChange(current, previous float64) string {
	if previous == 0 {
		if current > 0 {
			return "+100.0"
		}
		return "0.0"
	}
	change := (current - previous) / previous * 100
	if change >= 0 {
		return fmt.Sprintf("+%.1f", change)
	}
	return fmt.Sprintf("%.1f", change)
}

// BudgetReport is one budget's consumption within the active window.
type BudgetReport struct {
	Budget     finance.Budget
	Spent      float64
	Remaining  float64
	Percentage float64
	OverBudget bool
}

// ConsumeBudget matches transactions to the budget by exact category
// equality. Categories are expected to be normalized upstream.
func ConsumeBudget(budget finance.Budget, txs []finance.Transaction) BudgetReport {
	var spent float64
	for _, tx := range txs {
		if tx.Amount < 0 && tx.Category == budget.Category {
			spent += math.Abs(tx.Amount)
		}
	}
	rep := BudgetReport{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Maximum - spent,
	}
	if budget.Maximum != 0 {
		rep.Percentage = spent / budget.Maximum * 100
	}
	rep.OverBudget = rep.Percentage > 100
	return rep
}

func ConsumeBudgets(budgets []finance.Budget, txs []finance.Transaction) []BudgetReport {
	res := make([]BudgetReport, 0, len(budgets))
	for _, b := range budgets {
		res = append(res, ConsumeBudget(b, txs))
	}
	return res
}

// PotProgress is a savings goal's completion state. Percentage may
// exceed 100; over-saving is allowed.
type PotProgress struct {
	Pot        finance.Pot
	Percentage float64
	Completed  bool
	NearTarget bool
}

func ProgressOf(pot finance.Pot) PotProgress {
	p := PotProgress{Pot: pot}
	if pot.Target != 0 {
		p.Percentage = pot.Total / pot.Target * 100
	}
	p.Completed = p.Percentage >= 100
	p.NearTarget = p.Percentage >= 90 && p.Percentage < 100
	return p
}

// BillStatusOn derives a bill's state from the day of month alone:
// elapsed due dates count as paid whether or not a payment exists.
func BillStatusOn(bill finance.RecurringBill, today int) finance.BillStatus {
	switch {
	case today == bill.DueDate:
		return finance.BillDue
	case today > bill.DueDate:
		return finance.BillPaid
	default:
		return finance.BillUpcoming
	}
}

// PaidThisMonth cross-checks the transaction list: a bill counts as
// paid when some current-month transaction's name contains the bill
// name (case-insensitive) and its absolute amount equals the bill
// amount. txs must already be scoped to the current calendar month.
func PaidThisMonth(bill finance.RecurringBill, txs []finance.Transaction) bool {
	name := strings.ToLower(bill.Name)
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.Name), name) &&
			math.Abs(tx.Amount) == math.Abs(bill.Amount) {
			return true
		}
	}
	return false
}

// BillStatusWithPayments prefers the payment-matched derivation over
// the date-only one when transactions are available.
func BillStatusWithPayments(bill finance.RecurringBill, today int, txs []finance.Transaction) finance.BillStatus {
	if PaidThisMonth(bill, txs) {
		return finance.BillPaid
	}
	status := BillStatusOn(bill, today)
	if status == finance.BillPaid {
		// date elapsed but no matching payment found
		return finance.BillDue
	}
	return status
}

// DeriveBillStatuses stamps every bill with its date-only status.
func DeriveBillStatuses(bills []finance.RecurringBill, today int) []finance.RecurringBill {
	res := make([]finance.RecurringBill, 0, len(bills))
	for _, bill := range bills {
		bill.Status = BillStatusOn(bill, today)
		res = append(res, bill)
	}
	return res
}

// CategoryShare is one slice of the spending breakdown.
type CategoryShare struct {
	Category   string
	Amount     float64
	Percentage float64
}

const breakdownLimit = 8

// SpendingBreakdown groups period expenses by category, descending by
// amount, capped to the top entries. Categories past the cap are
// dropped rather than folded into an "other" bucket.
func SpendingBreakdown(txs []finance.Transaction) []CategoryShare {
	sums := make(map[string]float64)
	var total float64
	for _, tx := range txs {
		if tx.Amount < 0 {
			amount := math.Abs(tx.Amount)
			sums[tx.Category] += amount
			total += amount
		}
	}

	shares := make([]CategoryShare, 0, len(sums))
	for cat, amount := range sums {
		share := CategoryShare{Category: cat, Amount: amount}
		if total != 0 {
			share.Percentage = amount / total * 100
		}
		shares = append(shares, share)
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Category < shares[j].Category
	})

	if len(shares) > breakdownLimit {
		shares = shares[:breakdownLimit]
	}
	return shares
}

// MonthBucket is one point of the income/expense trend series.
type MonthBucket struct {
	Year    int
	Month   time.Month
	Income  float64
	Expense float64
	Net     float64
}

func (b MonthBucket) Label() string {
	return fmt.Sprintf("%s %d", b.Month.String()[:3], b.Year)
}

// MonthlyTrend buckets transactions into the trailing months calendar
// months ending at ref. Months without transactions stay present with
// zero values so the series has fixed width.
func MonthlyTrend(ref time.Time, txs []finance.Transaction, months int) []MonthBucket {
	if months <= 0 {
		return []MonthBucket{}
	}

	// bucket months derive from the first of ref's month so a ref on
	// the 29th-31st cannot normalize into a neighboring month
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	buckets := make([]MonthBucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		at := first.AddDate(0, -(months - 1 - i), 0)
		buckets[i] = MonthBucket{Year: at.Year(), Month: at.Month()}
		index[monthKey(at.Year(), at.Month())] = i
	}

	for _, tx := range txs {
		i, ok := index[monthKey(tx.Date.Year(), tx.Date.Month())]
		if !ok {
			continue
		}
		if tx.Amount > 0 {
			buckets[i].Income += tx.Amount
		} else if tx.Amount < 0 {
			buckets[i].Expense += math.Abs(tx.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Net = buckets[i].Income - buckets[i].Expense
	}
	return buckets
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
