package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"college-portal-client/config"
	"college-portal-client/internal/feed"
	"college-portal-client/internal/mw"
	"college-portal-client/internal/session"
	"college-portal-client/internal/submit"
)

// NewRouter wires the local dashboard facade: a read-mostly HTTP view over
// the session, feed, and submission pipeline for `portalctl serve`.
func NewRouter(cfg *config.ServerConfig, sess *session.Store, agg *feed.Aggregator, pipeline *submit.Pipeline) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(sess, agg, pipeline)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	caching := mw.Cache(cache.New(cacheTTL, 2*cacheTTL), cacheTTL)
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), 5)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/me", handler.GetMe)
		api.GET("/feed", handler.GetFeed)
		api.GET("/stats", caching, handler.GetStats)
		api.POST("/requests/:service", handler.PostRequest)
	}

	return r
}
