package server

import (
	"github.com/gin-gonic/gin"
)

// getRates exposes the last-known table. fallback=true means the
// puller has not succeeded yet and the built-in rates are served.
func (s *Server) getRates(c *gin.Context) {
	table := s.rates.Table()
	respondOK(c, gin.H{
		"base":       s.baseCode,
		"rates":      table.Rates,
		"updated_at": table.UpdatedAt,
		"fallback":   table.Fallback,
	})
}
