package server

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/daterange"
	"max.ks1230/finance-tracker/internal/model/overview"
)

// The metrics endpoints degrade instead of failing: a storage error is
// logged and the computation proceeds over an empty collection, so the
// dashboard renders zeros rather than an error page.

func (s *Server) transactionsOrEmpty(ctx context.Context, userID int64) []finance.Transaction {
	txs, err := s.storage.GetTransactions(ctx, userID)
	if err != nil {
		logger.Error("failed to load transactions, using empty set", zap.Error(err))
		return nil
	}
	return txs
}

// getOverview is the dashboard header: current-month totals with the
// change against the previous month, rendered in the user's display
// currency.
func (s *Server) getOverview(c *gin.Context) {
	span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "overview")
	defer span.Finish()

	userID := currentUserID(c)
	txs := s.transactionsOrEmpty(ctx, userID)
	settings, err := s.storage.GetSettings(ctx, userID)
	if err != nil {
		logger.Error("failed to load settings, using defaults", zap.Error(err))
		settings = finance.Settings{UserID: userID}
	}

	summary := overview.Summarize(daterange.FilterByMonth(txs, 0))
	previous := overview.Summarize(daterange.FilterByMonth(txs, 1))

	money := func(amount float64) string {
		return s.formatter.Format(amount, s.baseCode, settings)
	}

	respondOK(c, gin.H{
		"income":          summary.TotalIncome,
		"expense":         summary.TotalExpense,
		"net":             summary.NetBalance,
		"income_display":  money(summary.TotalIncome),
		"expense_display": money(summary.TotalExpense),
		"net_display":     money(summary.NetBalance),
		"income_change":   overview.PercentageChange(summary.TotalIncome, previous.TotalIncome),
		"expense_change":  overview.PercentageChange(summary.TotalExpense, previous.TotalExpense),
	})
}

// getBreakdown groups period expenses by category. ?range accepts the
// named presets; unknown values resolve to the current month.
func (s *Server) getBreakdown(c *gin.Context) {
	txs := s.transactionsOrEmpty(c.Request.Context(), currentUserID(c))

	window := daterange.PresetRange(c.DefaultQuery("range", daterange.ThisMonth))
	shares := overview.SpendingBreakdown(daterange.Filter(txs, window))

	items := make([]gin.H, 0, len(shares))
	for _, share := range shares {
		items = append(items, gin.H{
			"category":   share.Category,
			"amount":     share.Amount,
			"percentage": share.Percentage,
		})
	}
	respondOK(c, gin.H{"items": items})
}

func (s *Server) getTrend(c *gin.Context) {
	txs := s.transactionsOrEmpty(c.Request.Context(), currentUserID(c))

	months := s.trendMonths
	if v := c.Query("months"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			months = parsed
		}
	}

	buckets := overview.MonthlyTrend(time.Now(), txs, months)
	items := make([]gin.H, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, gin.H{
			"label":   bucket.Label(),
			"income":  bucket.Income,
			"expense": bucket.Expense,
			"net":     bucket.Net,
		})
	}
	respondOK(c, gin.H{"items": items})
}

// getAlerts computes the three notification groups for the current
// month. The groups are independent; filtering by the notification
// toggles happens client-side.
func (s *Server) getAlerts(c *gin.Context) {
	userID := currentUserID(c)
	ctx := c.Request.Context()

	txs := s.transactionsOrEmpty(ctx, userID)
	budgets, err := s.storage.GetBudgets(ctx, userID)
	if err != nil {
		logger.Error("failed to load budgets, using empty set", zap.Error(err))
		budgets = nil
	}
	bills, err := s.storage.GetBills(ctx, userID)
	if err != nil {
		logger.Error("failed to load bills, using empty set", zap.Error(err))
		bills = nil
	}
	pots, err := s.storage.GetPots(ctx, userID)
	if err != nil {
		logger.Error("failed to load pots, using empty set", zap.Error(err))
		pots = nil
	}

	current := daterange.FilterByMonth(txs, 0)
	alerts := overview.DetectAlerts(budgets, bills, pots, current, time.Now().Day())

	respondOK(c, gin.H{
		"over_budget": alerts.OverBudget,
		"due_today":   alerts.DueToday,
		"near_target": alerts.NearTarget,
		"count":       alerts.Count(),
	})
}
