package store

import (
	"context"
	"fmt"

	"college-portal-client/config"
	"college-portal-client/internal/db"
	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
)

// Backend is the pluggable request storage the submission pipeline and feed
// aggregator run against. The portal historically carried two parallel
// implementations of this, one on browser storage and one on the API; here it
// is one contract with two implementations selected by configuration.
type Backend interface {
	// Create submits a validated payload and returns the stored request with
	// id, status, and created_at assigned.
	Create(ctx context.Context, payload model.Payload) (*model.ServiceRequest, error)
	// List returns one kind's requests for a student, newest first.
	List(ctx context.Context, kind model.ServiceKind, studentID int64) ([]model.ServiceRequest, error)
	// Stats returns the portal-wide pending counts.
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

// Open builds the backend named by the configuration.
func Open(cfg *config.StorageConfig, client *portal.Client) (Backend, error) {
	switch cfg.Backend {
	case "remote":
		return NewRemote(client), nil
	case "local":
		gormDB, err := db.Init(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return NewLocal(gormDB), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
