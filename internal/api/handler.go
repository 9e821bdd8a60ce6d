package api

import (
	"college-portal-client/internal/feed"
	"college-portal-client/internal/session"
	"college-portal-client/internal/submit"
)

// Handler holds the core components the local dashboard facade exposes.
type Handler struct {
	session  *session.Store
	feed     *feed.Aggregator
	pipeline *submit.Pipeline
}

// NewHandler creates the facade handler.
func NewHandler(sess *session.Store, agg *feed.Aggregator, pipeline *submit.Pipeline) *Handler {
	return &Handler{
		session:  sess,
		feed:     agg,
		pipeline: pipeline,
	}
}
