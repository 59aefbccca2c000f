package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

func respondOK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondStorageError maps ownership misses to 404 and everything
// else to 500. Details stay in the log, not the response.
func respondStorageError(c *gin.Context, err error) {
	var notFound *customerr.NotFoundError
	if errors.As(err, &notFound) {
		respondError(c, http.StatusNotFound, notFound.Error())
		return
	}
	logger.Error("storage error", zap.Error(err), zap.String("path", c.FullPath()))
	respondError(c, http.StatusInternalServerError, "internal error")
}
