package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMe handles GET /api/me against the locally held session.
func (h *Handler) GetMe(c *gin.Context) {
	state := h.session.Current()
	if !state.Authenticated {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, state.Student)
}
