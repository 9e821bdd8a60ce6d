package submit

import (
	"context"
	"sync"

	"college-portal-client/internal/feed"
	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
	"college-portal-client/internal/relay"
	"college-portal-client/internal/session"
	"college-portal-client/internal/store"
)

// ErrInFlight rejects re-entrant submission of a form whose previous
// submission has not finished yet.
var ErrInFlight = &portal.ValidationError{Message: "A submission is already in progress"}

// Pipeline validates and submits service requests. One pipeline serves all
// six kinds; submissions of different kinds may run concurrently, while a
// second submission of the same kind is rejected until the first settles.
// Every invocation produces exactly one outcome: the created request, or an
// error from the taxonomy in package portal.
type Pipeline struct {
	backend store.Backend
	session *session.Store
	feed    *feed.Aggregator
	relay   *relay.Relay

	mu       sync.Mutex
	inflight map[model.ServiceKind]bool
}

// New creates a submission pipeline. feed and relay may be nil in tests.
func New(backend store.Backend, sess *session.Store, agg *feed.Aggregator, rel *relay.Relay) *Pipeline {
	return &Pipeline{
		backend:  backend,
		session:  sess,
		feed:     agg,
		relay:    rel,
		inflight: make(map[model.ServiceKind]bool),
	}
}

// Submit runs one submission end to end: local validation, in-flight guard,
// backend dispatch, and on success the feed invalidation and the relay
// notification. Validation and guard failures never reach the network;
// backend failures surface their message verbatim and leave the form
// resubmittable.
func (p *Pipeline) Submit(ctx context.Context, payload model.Payload) (*model.ServiceRequest, error) {
	state := p.session.Current()
	if !state.Authenticated {
		return nil, &portal.AuthError{Message: "Not authenticated"}
	}

	if err := validate(payload); err != nil {
		return nil, err
	}

	kind := payload.Kind()
	if !p.begin(kind) {
		return nil, ErrInFlight
	}
	defer p.end(kind)

	payload.SetStudent(state.Student.ID)

	created, err := p.backend.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	created.Kind = kind

	if p.feed != nil {
		p.feed.Invalidate()
	}
	if p.relay != nil {
		p.relay.Notify(kind, created)
	}
	return created, nil
}

func (p *Pipeline) begin(kind model.ServiceKind) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inflight[kind] {
		return false
	}
	p.inflight[kind] = true
	return true
}

func (p *Pipeline) end(kind model.ServiceKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, kind)
}
