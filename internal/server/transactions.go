package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/finance"
)

const transactionsPerPage = 10

type createTransactionReq struct {
	Name      string  `json:"name" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	Date      string  `json:"date"`
	Recurring bool    `json:"recurring"`
}

type transactionResp struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Color     string    `json:"category_color"`
	Date      time.Time `json:"date"`
	Recurring bool      `json:"recurring"`
}

func toTransactionResp(tx finance.Transaction) transactionResp {
	return transactionResp{
		ID:        tx.ID,
		Name:      tx.Name,
		Amount:    tx.Amount,
		Category:  tx.Category,
		Color:     category.ColorOf(tx.Category),
		Date:      tx.Date,
		Recurring: tx.Recurring,
	}
}

func (s *Server) createTransaction(c *gin.Context) {
	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date")
			return
		}
		date = parsed
	}

	tx := finance.Transaction{
		Name:      strings.TrimSpace(req.Name),
		Amount:    req.Amount,
		Category:  category.Normalize(req.Category),
		Date:      date,
		Recurring: req.Recurring,
	}
	if err := s.storage.SaveTransaction(c.Request.Context(), currentUserID(c), tx); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// listTransactions filters server-side: free-text search over name and
// category, income/expense type, exact category, then pages the result.
func (s *Server) listTransactions(c *gin.Context) {
	txs, err := s.storage.GetTransactions(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondStorageError(c, err)
		return
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	txType := c.Query("type")
	cat := c.Query("category")

	filtered := make([]finance.Transaction, 0, len(txs))
	for _, tx := range txs {
		if search != "" &&
			!strings.Contains(strings.ToLower(tx.Name), search) &&
			!strings.Contains(strings.ToLower(tx.Category), search) {
			continue
		}
		if txType == category.TypeIncome && !tx.IsIncome() {
			continue
		}
		if txType == category.TypeExpense && !tx.IsExpense() {
			continue
		}
		if cat != "" && tx.Category != category.Normalize(cat) {
			continue
		}
		filtered = append(filtered, tx)
	}

	page := parsePage(c.DefaultQuery("page", "1"))
	start := (page - 1) * transactionsPerPage
	end := start + transactionsPerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]transactionResp, 0, end-start)
	for _, tx := range filtered[start:end] {
		items = append(items, toTransactionResp(tx))
	}

	respondOK(c, gin.H{
		"items": items,
		"total": len(filtered),
		"page":  page,
		"pages": (len(filtered) + transactionsPerPage - 1) / transactionsPerPage,
	})
}

func (s *Server) deleteTransaction(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err = s.storage.DeleteTransaction(c.Request.Context(), currentUserID(c), id); err != nil {
		respondStorageError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "deleted"})
}

func parseDate(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02"}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parsePage(value string) int {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
