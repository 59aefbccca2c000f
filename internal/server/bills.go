package server

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/model/overview"
)

type createBillReq struct {
	Name    string  `json:"name" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	DueDate int     `json:"due_date" binding:"required,min=1,max=31"`
}

type billResp struct {
	ID      int64              `json:"id"`
	Name    string             `json:"name"`
	Amount  float64            `json:"amount"`
	DueDate int                `json:"due_date"`
	Status  finance.BillStatus `json:"status"`
}

func (s *Server) createBill(c *gin.Context) {
	var req createBillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	bill := finance.RecurringBill{Name: req.Name, Amount: req.Amount, DueDate: req.DueDate}
	if err := s.storage.SaveBill(c.Request.Context(), currentUserID(c), bill); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// listBills derives each bill's status from today's day of month, then
// applies name search and sorting. The summary totals split the
// monthly obligation by state.
func (s *Server) listBills(c *gin.Context) {
	bills, err := s.storage.GetBills(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondStorageError(c, err)
		return
	}

	bills = overview.DeriveBillStatuses(bills, time.Now().Day())

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	if search != "" {
		filtered := make([]finance.RecurringBill, 0, len(bills))
		for _, bill := range bills {
			if strings.Contains(strings.ToLower(bill.Name), search) {
				filtered = append(filtered, bill)
			}
		}
		bills = filtered
	}

	sortBills(bills, c.DefaultQuery("sort", "due_date"))

	items := make([]billResp, 0, len(bills))
	var paidTotal, upcomingTotal, dueTotal float64
	for _, bill := range bills {
		items = append(items, billResp{
			ID:      bill.ID,
			Name:    bill.Name,
			Amount:  bill.Amount,
			DueDate: bill.DueDate,
			Status:  bill.Status,
		})
		switch bill.Status {
		case finance.BillPaid:
			paidTotal += bill.Amount
		case finance.BillDue:
			dueTotal += bill.Amount
		default:
			upcomingTotal += bill.Amount
		}
	}

	respondOK(c, gin.H{
		"items": items,
		"summary": gin.H{
			"paid_total":     paidTotal,
			"upcoming_total": upcomingTotal,
			"due_total":      dueTotal,
		},
	})
}

func sortBills(bills []finance.RecurringBill, key string) {
	sort.SliceStable(bills, func(i, j int) bool {
		switch key {
		case "name":
			return bills[i].Name < bills[j].Name
		case "amount":
			return bills[i].Amount > bills[j].Amount
		default:
			return bills[i].DueDate < bills[j].DueDate
		}
	})
}

func (s *Server) deleteBill(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err = s.storage.DeleteBill(c.Request.Context(), currentUserID(c), id); err != nil {
		respondStorageError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "deleted"})
}
