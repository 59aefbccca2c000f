package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/model/overview"
)

type createPotReq struct {
	Name   string  `json:"name" binding:"required"`
	Target float64 `json:"target" binding:"required,gt=0"`
	Theme  string  `json:"theme"`
}

type movePotMoneyReq struct {
	Amount float64 `json:"amount" binding:"required"`
}

type potResp struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Target     float64 `json:"target"`
	Total      float64 `json:"total"`
	Theme      string  `json:"theme"`
	Percentage float64 `json:"percentage"`
	Completed  bool    `json:"completed"`
	NearTarget bool    `json:"near_target"`
}

func (s *Server) createPot(c *gin.Context) {
	var req createPotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pot := finance.Pot{Name: req.Name, Target: req.Target, Theme: req.Theme}
	if err := s.storage.SavePot(c.Request.Context(), currentUserID(c), pot); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// listPots returns every goal with its progress and the saved-total
// summary the pots screen shows.
func (s *Server) listPots(c *gin.Context) {
	pots, err := s.storage.GetPots(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondStorageError(c, err)
		return
	}

	items := make([]potResp, 0, len(pots))
	var totalSaved float64
	var completed, inProgress int
	for _, pot := range pots {
		progress := overview.ProgressOf(pot)
		items = append(items, potResp{
			ID:         pot.ID,
			Name:       pot.Name,
			Target:     pot.Target,
			Total:      pot.Total,
			Theme:      pot.Theme,
			Percentage: progress.Percentage,
			Completed:  progress.Completed,
			NearTarget: progress.NearTarget,
		})
		totalSaved += pot.Total
		if progress.Completed {
			completed++
		} else {
			inProgress++
		}
	}

	var completionRate float64
	if len(pots) > 0 {
		completionRate = float64(completed) / float64(len(pots)) * 100
	}

	respondOK(c, gin.H{
		"items": items,
		"summary": gin.H{
			"total_saved":     totalSaved,
			"active_goals":    len(pots),
			"in_progress":     inProgress,
			"completion_rate": completionRate,
		},
	})
}

// movePotMoney adds to or withdraws from a pot. Negative amounts
// withdraw; the stored total is clamped at zero.
func (s *Server) movePotMoney(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req movePotMoneyReq
	if err = c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err = s.storage.UpdatePotTotal(c.Request.Context(), currentUserID(c), id, req.Amount); err != nil {
		respondStorageError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "updated"})
}

func (s *Server) deletePot(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err = s.storage.DeletePot(c.Request.Context(), currentUserID(c), id); err != nil {
		respondStorageError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "deleted"})
}
