package store

import (
	"context"

	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
)

// Remote is the Backend backed by the portal HTTP API. The API assigns ids
// and statuses; the client treats every record as read-only after creation.
type Remote struct {
	client *portal.Client
}

// NewRemote wraps a portal client as a storage backend.
func NewRemote(client *portal.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) Create(ctx context.Context, payload model.Payload) (*model.ServiceRequest, error) {
	return r.client.CreateRequest(ctx, payload)
}

func (r *Remote) List(ctx context.Context, kind model.ServiceKind, studentID int64) ([]model.ServiceRequest, error) {
	return r.client.ListRequests(ctx, kind, studentID)
}

func (r *Remote) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return r.client.DashboardStats(ctx)
}
