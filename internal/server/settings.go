package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/statement"
)

type saveSettingsReq struct {
	Currency       string `json:"currency"`
	BaseCurrency   string `json:"base_currency"`
	BudgetAlerts   bool   `json:"budget_alerts"`
	BillReminders  bool   `json:"bill_reminders"`
	GoalMilestones bool   `json:"goal_milestones"`
	Language       string `json:"language"`
}

func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.storage.GetSettings(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondStorageError(c, err)
		return
	}
	respondOK(c, gin.H{
		"currency":        settings.DisplayCurrencyOrDefault(s.baseCode),
		"base_currency":   settings.BaseCurrencyOrDefault(s.baseCode),
		"budget_alerts":   settings.BudgetAlerts,
		"bill_reminders":  settings.BillReminders,
		"goal_milestones": settings.GoalMilestones,
		"language":        settings.Language,
	})
}

// saveSettings replaces the preference blob. Cached statements are
// rendered in the old display currency, so they get invalidated here.
func (s *Server) saveSettings(c *gin.Context) {
	var req saveSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Currency != "" && !currency.Known(req.Currency) {
		respondError(c, http.StatusBadRequest, "unsupported currency")
		return
	}
	if req.BaseCurrency != "" && !currency.Known(req.BaseCurrency) {
		respondError(c, http.StatusBadRequest, "unsupported currency")
		return
	}

	userID := currentUserID(c)
	settings := finance.Settings{
		UserID:         userID,
		Currency:       req.Currency,
		BaseCurrency:   req.BaseCurrency,
		BudgetAlerts:   req.BudgetAlerts,
		BillReminders:  req.BillReminders,
		GoalMilestones: req.GoalMilestones,
		Language:       req.Language,
	}
	if err := s.storage.SaveSettings(c.Request.Context(), settings); err != nil {
		respondStorageError(c, err)
		return
	}

	if err := s.cache.InvalidateStatements(userID, statement.Periods()); err != nil {
		logger.Error("failed to invalidate statements", zap.Error(err))
	}
	respondOK(c, gin.H{"status": "saved"})
}
