package relay

import (
	"context"
	"log"

	"college-portal-client/config"
	"college-portal-client/internal/model"
)

// job is one queued notification.
type job struct {
	kind    model.ServiceKind
	target  string
	message string
}

// Relay formats a summary of each newly created request and hands it to an
// external messaging channel through a small worker pool. It is strictly
// fire-and-forget: a full queue drops the job with a warning, and delivery
// failures are logged, never reported back to the submitter.
type Relay struct {
	channel Channel
	targets map[string]string
	jobs    chan job
	size    int
}

// New creates a relay from configuration.
func New(cfg *config.RelayConfig) *Relay {
	var channel Channel
	if cfg.Channel == "webpush" {
		channel = NewWebPush(&cfg.Push)
	} else {
		channel = NewWhatsAppLink()
	}
	return NewWithChannel(cfg, channel)
}

// NewWithChannel creates a relay with an explicit channel implementation.
func NewWithChannel(cfg *config.RelayConfig, channel Channel) *Relay {
	return &Relay{
		channel: channel,
		targets: cfg.Numbers,
		jobs:    make(chan job, cfg.Workers*4),
		size:    cfg.Workers,
	}
}

// Start launches the delivery workers.
func (r *Relay) Start(ctx context.Context) {
	for i := 0; i < r.size; i++ {
		go r.worker(ctx, i)
	}
}

// Target returns the per-kind static address notifications for that kind go
// to, falling back to the portal's shared office line.
func (r *Relay) Target(kind model.ServiceKind) string {
	if target, ok := r.targets[string(kind)]; ok && target != "" {
		return target
	}
	return config.DefaultRelayNumber
}

// Notify queues a notification for a just-created request. It never blocks
// the caller and never fails.
func (r *Relay) Notify(kind model.ServiceKind, req *model.ServiceRequest) {
	j := job{kind: kind, target: r.Target(kind), message: Message(kind, req)}
	select {
	case r.jobs <- j:
	default:
		log.Printf("Warning: relay queue full, dropping %s notification for request %d", kind, req.ID)
	}
}

// Jobs exposes the queue for tests.
func (r *Relay) Jobs() chan job {
	return r.jobs
}

func (r *Relay) worker(ctx context.Context, id int) {
	for {
		select {
		case j := <-r.jobs:
			if err := r.channel.Deliver(ctx, j.target, j.message); err != nil {
				log.Printf("Warning: relay delivery for %s request failed: %v", j.kind, err)
			}
		case <-ctx.Done():
			log.Printf("Relay worker %d shutting down", id)
			return
		}
	}
}
