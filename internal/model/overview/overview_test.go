package overview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/finance-tracker/internal/entity/finance"
)

func Test_OnSummarize_ShouldSplitIncomeAndExpense(t *testing.T) {
	s := Summarize([]finance.Transaction{
		{Amount: 2500},
		{Amount: -50},
		{Amount: -150},
		{Amount: 100},
	})

	assert.Equal(t, 2600.0, s.TotalIncome)
	assert.Equal(t, 200.0, s.TotalExpense)
	assert.Equal(t, 2400.0, s.NetBalance)
}

func Test_OnSummarize_ShouldYieldZeroesForEmptyInput(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
}

func Test_OnPercentageChange_ShouldHandleZeroPreviousAsymmetrically(t *testing.T) {
	assert.Equal(t, "+100.0", PercentageChange(50, 0))
	assert.Equal(t, "0.0", PercentageChange(0, 0))
	assert.Equal(t, "0.0", PercentageChange(-10, 0))
}

func Test_OnPercentageChange_ShouldSignPrefixWithOneDecimal(t *testing.T) {
	assert.Equal(t, "+0.0", PercentageChange(80, 80))
	assert.Equal(t, "+25.0", PercentageChange(100, 80))
	assert.Equal(t, "-50.0", PercentageChange(40, 80))
	assert.Equal(t, "+33.3", PercentageChange(400, 300))
}

func Test_OnConsumeBudget_ShouldReportOverBudgetStrictly(t *testing.T) {
	budget := finance.Budget{Category: "Food", Maximum: 40}
	txs := []finance.Transaction{
		{Amount: -50, Category: "Food"},
	}

	rep := ConsumeBudget(budget, txs)
	assert.Equal(t, 50.0, rep.Spent)
	assert.Equal(t, -10.0, rep.Remaining)
	assert.Equal(t, 125.0, rep.Percentage)
	assert.True(t, rep.OverBudget)
}

func Test_OnConsumeBudget_ShouldNotFlagExactLimit(t *testing.T) {
	budget := finance.Budget{Category: "Food", Maximum: 50}
	txs := []finance.Transaction{{Amount: -50, Category: "Food"}}

	rep := ConsumeBudget(budget, txs)
	assert.Equal(t, 100.0, rep.Percentage)
	assert.False(t, rep.OverBudget)
}

func Test_OnConsumeBudget_ShouldMatchCategoryExactly(t *testing.T) {
	budget := finance.Budget{Category: "Food", Maximum: 100}
	txs := []finance.Transaction{
		{Amount: -30, Category: "food"},
		{Amount: -20, Category: "Food"},
		{Amount: 80, Category: "Food"}, // income never counts as spend
	}

	rep := ConsumeBudget(budget, txs)
	assert.Equal(t, 20.0, rep.Spent)
}

func Test_OnProgressOf_ShouldClassifyNearTargetAtNinety(t *testing.T) {
	p := ProgressOf(finance.Pot{Total: 90, Target: 100})
	assert.Equal(t, 90.0, p.Percentage)
	assert.True(t, p.NearTarget)
	assert.False(t, p.Completed)
}

func Test_OnProgressOf_ShouldCompleteAtTargetAndAllowOversaving(t *testing.T) {
	p := ProgressOf(finance.Pot{Total: 100, Target: 100})
	assert.True(t, p.Completed)
	assert.False(t, p.NearTarget)

	p = ProgressOf(finance.Pot{Total: 130, Target: 100})
	assert.Equal(t, 130.0, p.Percentage)
	assert.True(t, p.Completed)
}

func Test_OnBillStatusOn_ShouldDeriveFromDayOfMonth(t *testing.T) {
	bill := finance.RecurringBill{Name: "Netflix", DueDate: 15}

	assert.Equal(t, finance.BillDue, BillStatusOn(bill, 15))
	assert.Equal(t, finance.BillPaid, BillStatusOn(bill, 20))
	assert.Equal(t, finance.BillUpcoming, BillStatusOn(bill, 5))
}

func Test_OnPaidThisMonth_ShouldMatchNameSubstringAndAmount(t *testing.T) {
	bill := finance.RecurringBill{Name: "Netflix", Amount: 15.99, DueDate: 10}
	txs := []finance.Transaction{
		{Name: "NETFLIX subscription", Amount: -15.99},
	}

	assert.True(t, PaidThisMonth(bill, txs))
	assert.False(t, PaidThisMonth(bill, []finance.Transaction{
		{Name: "Netflix subscription", Amount: -20},
	}))
	assert.False(t, PaidThisMonth(bill, []finance.Transaction{
		{Name: "Spotify", Amount: -15.99},
	}))
}

func Test_OnBillStatusWithPayments_ShouldPreferPaymentMatch(t *testing.T) {
	bill := finance.RecurringBill{Name: "Netflix", Amount: 15.99, DueDate: 10}
	paid := []finance.Transaction{{Name: "Netflix", Amount: -15.99}}

	// payment found before the due date: already paid
	assert.Equal(t, finance.BillPaid, BillStatusWithPayments(bill, 5, paid))
	// date elapsed but nothing matching was paid: still owed
	assert.Equal(t, finance.BillDue, BillStatusWithPayments(bill, 20, nil))
	// not yet due, not yet paid
	assert.Equal(t, finance.BillUpcoming, BillStatusWithPayments(bill, 5, nil))
}

func Test_OnSpendingBreakdown_ShouldSortDescendingWithShares(t *testing.T) {
	txs := []finance.Transaction{
		{Category: "A", Amount: -60},
		{Category: "B", Amount: -40},
	}

	shares := SpendingBreakdown(txs)
	assert.Len(t, shares, 2)
	assert.Equal(t, CategoryShare{Category: "A", Amount: 60, Percentage: 60}, shares[0])
	assert.Equal(t, CategoryShare{Category: "B", Amount: 40, Percentage: 40}, shares[1])
}

func Test_OnSpendingBreakdown_ShouldCapToTopEight(t *testing.T) {
	txs := make([]finance.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		txs = append(txs, finance.Transaction{
			Category: string(rune('A' + i)),
			Amount:   -float64(10 * (i + 1)),
		})
	}

	shares := SpendingBreakdown(txs)
	assert.Len(t, shares, 8)
	// smallest two categories are dropped, not aggregated
	assert.Equal(t, "J", shares[0].Category)
	assert.Equal(t, "C", shares[7].Category)
}

func Test_OnSpendingBreakdown_ShouldIgnoreIncome(t *testing.T) {
	shares := SpendingBreakdown([]finance.Transaction{{Category: "Salary", Amount: 2500}})
	assert.Empty(t, shares)
}

func Test_OnMonthlyTrend_ShouldKeepEmptyMonthsAtZero(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	txs := []finance.Transaction{
		{Amount: 1000, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: -200, Date: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)},
		{Amount: -300, Date: time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{Amount: 50, Date: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)}, // outside window
	}

	trend := MonthlyTrend(ref, txs, 6)
	assert.Len(t, trend, 6)
	assert.Equal(t, time.January, trend[0].Month)
	assert.Equal(t, time.June, trend[5].Month)

	assert.Equal(t, 0.0, trend[0].Income)
	assert.Equal(t, 300.0, trend[3].Expense)
	assert.Equal(t, 1000.0, trend[5].Income)
	assert.Equal(t, 200.0, trend[5].Expense)
	assert.Equal(t, 800.0, trend[5].Net)
}

func Test_OnMonthlyTrend_ShouldBucketEachMonthOnceFromMonthEnd(t *testing.T) {
	ref := time.Date(2024, time.March, 31, 10, 0, 0, 0, time.UTC)
	txs := []finance.Transaction{
		{Amount: -40, Date: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
	}

	trend := MonthlyTrend(ref, txs, 3)
	assert.Len(t, trend, 3)
	assert.Equal(t, time.January, trend[0].Month)
	assert.Equal(t, time.February, trend[1].Month)
	assert.Equal(t, time.March, trend[2].Month)
	assert.Equal(t, 40.0, trend[1].Expense)
}

func Test_OnMonthlyTrend_ShouldSpanYearBoundary(t *testing.T) {
	ref := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	trend := MonthlyTrend(ref, nil, 6)

	assert.Equal(t, 2023, trend[0].Year)
	assert.Equal(t, time.September, trend[0].Month)
	assert.Equal(t, "Sep 2023", trend[0].Label())
	assert.Equal(t, 2024, trend[5].Year)
}
