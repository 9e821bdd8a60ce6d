package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
)

// GetFeed handles GET /api/feed?filter=<kind|all>&reload=true.
func (h *Handler) GetFeed(c *gin.Context) {
	filter := c.DefaultQuery("filter", model.FilterAll)
	if filter != model.FilterAll {
		if _, ok := model.ParseKind(filter); !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid filter"})
			return
		}
	}

	load := h.feed.Load
	if c.Query("reload") == "true" {
		load = h.feed.Reload
	}

	requests, err := load(c.Request.Context(), filter)
	if err != nil {
		var authErr *portal.AuthError
		if errors.As(err, &authErr) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetStats handles GET /api/stats. The aggregator already substitutes the
// placeholder set on backend failure, so this never errors.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Stats(c.Request.Context()))
}
