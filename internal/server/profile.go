package server

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) getProfile(c *gin.Context) {
	profile, err := s.storage.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondStorageError(c, err)
		return
	}
	respondOK(c, gin.H{
		"id":         profile.ID,
		"email":      profile.Email,
		"name":       profile.Name,
		"created_at": profile.CreatedAt,
	})
}
