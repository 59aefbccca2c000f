package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/model/daterange"
	"max.ks1230/finance-tracker/internal/model/overview"
)

type createBudgetReq struct {
	Category string  `json:"category" binding:"required"`
	Maximum  float64 `json:"maximum" binding:"required,gt=0"`
	Theme    string  `json:"theme"`
}

type budgetResp struct {
	ID         int64   `json:"id"`
	Category   string  `json:"category"`
	Maximum    float64 `json:"maximum"`
	Theme      string  `json:"theme"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	OverBudget bool    `json:"over_budget"`
}

func (s *Server) createBudget(c *gin.Context) {
	var req createBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	budget := finance.Budget{
		Category: category.Normalize(req.Category),
		Maximum:  req.Maximum,
		Theme:    req.Theme,
	}
	if budget.Theme == "" {
		budget.Theme = category.ColorOf(budget.Category)
	}
	if err := s.storage.SaveBudget(c.Request.Context(), currentUserID(c), budget); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// listBudgets returns each budget with its current-month consumption
// and a roll-up summary.
func (s *Server) listBudgets(c *gin.Context) {
	userID := currentUserID(c)
	budgets, err := s.storage.GetBudgets(c.Request.Context(), userID)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	txs, err := s.storage.GetTransactions(c.Request.Context(), userID)
	if err != nil {
		respondStorageError(c, err)
		return
	}

	current := daterange.FilterByMonth(txs, 0)
	items := make([]budgetResp, 0, len(budgets))
	var totalMaximum, totalRemaining float64
	for _, rep := range overview.ConsumeBudgets(budgets, current) {
		items = append(items, budgetResp{
			ID:         rep.Budget.ID,
			Category:   rep.Budget.Category,
			Maximum:    rep.Budget.Maximum,
			Theme:      rep.Budget.Theme,
			Spent:      rep.Spent,
			Remaining:  rep.Remaining,
			Percentage: rep.Percentage,
			OverBudget: rep.OverBudget,
		})
		totalMaximum += rep.Budget.Maximum
		totalRemaining += rep.Remaining
	}

	respondOK(c, gin.H{
		"items": items,
		"summary": gin.H{
			"count":           len(items),
			"total_maximum":   totalMaximum,
			"total_remaining": totalRemaining,
		},
	})
}

func (s *Server) deleteBudget(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err = s.storage.DeleteBudget(c.Request.Context(), currentUserID(c), id); err != nil {
		respondStorageError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "deleted"})
}
