package statement

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/model/daterange"
	"max.ks1230/finance-tracker/internal/model/storage"
)

type cfgStub struct{}

func (cfgStub) BaseCurrency() string { return currency.USD }

func seedStorage(t *testing.T) *storage.InMemStorage {
	t.Helper()
	ctx := context.Background()
	st := storage.NewInMemStorage()

	thisMonth := time.Now()
	require.NoError(t, st.SaveTransaction(ctx, 1, finance.Transaction{
		Name: "Paycheck", Amount: 3000, Category: "Salary", Date: thisMonth,
	}))
	require.NoError(t, st.SaveTransaction(ctx, 1, finance.Transaction{
		Name: "Weekly groceries", Amount: -120, Category: "Groceries", Date: thisMonth,
	}))
	require.NoError(t, st.SaveTransaction(ctx, 1, finance.Transaction{
		Name: "Dinner", Amount: -80, Category: "Food & Dining", Date: thisMonth,
	}))
	require.NoError(t, st.SaveBudget(ctx, 1, finance.Budget{Category: "Groceries", Maximum: 100}))
	require.NoError(t, st.SaveBill(ctx, 1, finance.RecurringBill{Name: "Rent", Amount: 900, DueDate: 1}))
	require.NoError(t, st.SavePot(ctx, 1, finance.Pot{Name: "Holiday", Total: 95, Target: 100}))
	return st
}

func Test_OnGenerate_ShouldRenderSummaryBreakdownAndAlerts(t *testing.T) {
	gen := NewGenerator(cfgStub{}, seedStorage(t))

	text, err := gen.Generate(context.Background(), 1, daterange.ThisMonth)
	assert.NoError(t, err)

	assert.Contains(t, text, "Statement for")
	assert.Contains(t, text, "Income:")
	assert.Contains(t, text, "Expenses:")
	assert.Contains(t, text, "Spending by category:")
	// breakdown is sorted descending: groceries outspent dining
	assert.Less(t,
		strings.Index(text, "Groceries"),
		strings.Index(text, "Food & Dining"))
	assert.Contains(t, text, "Over budget on Groceries")
	assert.Contains(t, text, "Holiday")
	assert.Contains(t, text, "Rent")
}

func Test_OnGenerate_ShouldRejectUnsupportedPeriod(t *testing.T) {
	gen := NewGenerator(cfgStub{}, storage.NewInMemStorage())

	_, err := gen.Generate(context.Background(), 1, "quarter")
	assert.Error(t, err)
}

func Test_OnGenerate_ShouldDegradeToZeroesOnEmptyData(t *testing.T) {
	gen := NewGenerator(cfgStub{}, storage.NewInMemStorage())

	text, err := gen.Generate(context.Background(), 7, daterange.ThisMonth)
	assert.NoError(t, err)
	assert.Contains(t, text, "Income:")
	assert.NotContains(t, text, "Alerts:")
}

func Test_OnPeriods_ShouldListSupportedWindows(t *testing.T) {
	periods := Periods()
	assert.ElementsMatch(t, []string{daterange.ThisMonth, daterange.LastMonth}, periods)
}
