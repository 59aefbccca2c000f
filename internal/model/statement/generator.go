package statement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/logger"

	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/model/daterange"
	"max.ks1230/finance-tracker/internal/model/display"
	"max.ks1230/finance-tracker/internal/model/overview"
)

// periods a statement can be requested for, mapped to how many months
// back the window sits.
var statementPeriods = map[string]int{
	daterange.ThisMonth: 0,
	daterange.LastMonth: 1,
}

type financeStorage interface {
	GetTransactions(ctx context.Context, userID int64) ([]finance.Transaction, error)
	GetBudgets(ctx context.Context, userID int64) ([]finance.Budget, error)
	GetPots(ctx context.Context, userID int64) ([]finance.Pot, error)
	GetBills(ctx context.Context, userID int64) ([]finance.RecurringBill, error)
	GetSettings(ctx context.Context, userID int64) (finance.Settings, error)
	LoadRates(ctx context.Context) (currency.RateTable, error)
}

type config interface {
	BaseCurrency() string
}

type Generator struct {
	storage         financeStorage
	defaultCurrency string
}

func NewGenerator(config config, storage financeStorage) *Generator {
	return &Generator{
		storage:         storage,
		defaultCurrency: config.BaseCurrency(),
	}
}

type staticTable struct {
	table currency.RateTable
}

func (s staticTable) Table() currency.RateTable {
	return s.table
}

// Generate renders the user's monthly statement: summary with change
// vs the previous month, spending breakdown, bill states and alerts.
// Amounts are shown in the user's display currency.
func (g *Generator) Generate(ctx context.Context, userID int64, period string) (string, error) {
	logger.Info("Generate statement - start", zap.Int64("userID", userID), zap.String("period", period))
	defer logger.Info("Generate statement - end")

	monthsAgo, ok := statementPeriods[period]
	if !ok {
		return "", errors.Wrap(
			fmt.Errorf("statement period %s is not supported", period),
			"generate statement",
		)
	}

	txs, err := g.storage.GetTransactions(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "generate statement")
	}
	budgets, err := g.storage.GetBudgets(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "generate statement")
	}
	pots, err := g.storage.GetPots(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "generate statement")
	}
	bills, err := g.storage.GetBills(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "generate statement")
	}
	settings, err := g.storage.GetSettings(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "generate statement")
	}
	table, err := g.storage.LoadRates(ctx)
	if err != nil {
		return "", errors.Wrap(err, "generate statement")
	}

	formatter := display.NewFormatter(staticTable{table}, currencyConfig{g.defaultCurrency})
	money := func(amount float64) string {
		return formatter.Format(amount, g.defaultCurrency, settings)
	}

	now := time.Now()
	window := daterange.MonthRangeAt(now, monthsAgo)
	current := daterange.Filter(txs, window)
	previous := daterange.Filter(txs, daterange.MonthRangeAt(now, monthsAgo+1))

	summary := overview.Summarize(current)
	prevSummary := overview.Summarize(previous)

	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s %d\n\n", window.Start.Month(), window.Start.Year())

	fmt.Fprintf(&b, "Income: %s (%s%% vs previous month)\n",
		money(summary.TotalIncome), overview.PercentageChange(summary.TotalIncome, prevSummary.TotalIncome))
	fmt.Fprintf(&b, "Expenses: %s (%s%% vs previous month)\n",
		money(summary.TotalExpense), overview.PercentageChange(summary.TotalExpense, prevSummary.TotalExpense))
	fmt.Fprintf(&b, "Net: %s\n", money(summary.NetBalance))

	shares := overview.SpendingBreakdown(current)
	if len(shares) > 0 {
		b.WriteString("\nSpending by category:\n")
		for _, share := range shares {
			fmt.Fprintf(&b, "%s: %s (%.1f%%)\n", share.Category, money(share.Amount), share.Percentage)
		}
	}

	if len(bills) > 0 {
		b.WriteString("\nRecurring bills:\n")
		for _, bill := range bills {
			status := overview.BillStatusWithPayments(bill, now.Day(), current)
			fmt.Fprintf(&b, "%s: %s - %s\n", bill.Name, money(bill.Amount), status)
		}
	}

	alerts := overview.DetectAlerts(budgets, bills, pots, current, now.Day())
	if alerts.Count() > 0 {
		b.WriteString("\nAlerts:\n")
		for _, alert := range alerts.OverBudget {
			fmt.Fprintf(&b, "Over budget on %s by %s\n", alert.Category, money(alert.Shortfall))
		}
		for _, alert := range alerts.DueToday {
			fmt.Fprintf(&b, "%s is due today (%s)\n", alert.Name, money(alert.Amount))
		}
		for _, alert := range alerts.NearTarget {
			fmt.Fprintf(&b, "%s is %s away from its target\n", alert.Name, money(alert.Remaining))
		}
	}

	return b.String(), nil
}

// Periods lists the supported statement periods.
func Periods() []string {
	res := make([]string, 0, len(statementPeriods))
	for k := range statementPeriods {
		res = append(res, k)
	}
	return res
}

type currencyConfig struct {
	base string
}

func (c currencyConfig) BaseCurrency() string {
	return c.base
}
