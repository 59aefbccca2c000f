package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/clients/cache"
	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/statement"
)

type requestStatementReq struct {
	Period string `json:"period" binding:"required"`
}

// requestStatement enqueues generation for the reporter and returns
// immediately. The client polls the GET endpoint for the result.
func (s *Server) requestStatement(c *gin.Context) {
	var req requestStatementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validPeriod(req.Period) {
		respondError(c, http.StatusBadRequest, "unsupported period")
		return
	}

	userID := currentUserID(c)
	if err := s.queue.RequestStatement(kafka.NewStatementRequest(userID, req.Period)); err != nil {
		logger.Error("failed to enqueue statement request", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "requested", "period": req.Period})
}

func (s *Server) getStatement(c *gin.Context) {
	period := c.Param("period")
	if !validPeriod(period) {
		respondError(c, http.StatusBadRequest, "unsupported period")
		return
	}

	text, err := s.cache.GetStatement(currentUserID(c), period)
	if errors.Is(err, cache.ErrMiss) {
		c.JSON(http.StatusAccepted, gin.H{"status": "pending"})
		return
	}
	if err != nil {
		logger.Error("failed to read statement", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	respondOK(c, gin.H{"status": "ready", "statement": text})
}

func validPeriod(period string) bool {
	for _, p := range statement.Periods() {
		if p == period {
			return true
		}
	}
	return false
}
