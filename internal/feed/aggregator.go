package feed

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
	"college-portal-client/internal/session"
	"college-portal-client/internal/store"
)

const feedKey = "feed"

// Aggregator merges the six per-kind request collections into one feed. The
// full tagged feed is cached so that switching the kind filter is a pure
// in-memory operation; only Reload or an invalidation (new submission, session
// change) causes the six fetches to be reissued.
type Aggregator struct {
	backend store.Backend
	session *session.Store
	cache   *cache.Cache
}

// New creates an aggregator whose cached feed expires after ttl. The
// aggregator drops its cache on every session transition.
func New(backend store.Backend, sess *session.Store, ttl time.Duration) *Aggregator {
	a := &Aggregator{
		backend: backend,
		session: sess,
		cache:   cache.New(ttl, 2*ttl),
	}
	sess.Subscribe(func(session.State) { a.Invalidate() })
	return a
}

// Load returns the aggregated feed, filtered to one kind or "all". It serves
// from cache when possible and never fails once the fetch starts: a kind
// whose fetch errors contributes an empty list and a logged warning. The only
// error is an unauthenticated session, which gates aggregation entirely.
func (a *Aggregator) Load(ctx context.Context, filter string) (model.Feed, error) {
	if cached, found := a.cache.Get(feedKey); found {
		return cached.(model.Feed).Filter(filter), nil
	}

	state := a.session.Current()
	if !state.Authenticated {
		return nil, &portal.AuthError{Message: "Not authenticated"}
	}

	feed := a.fetchAll(ctx, state.Student.ID)
	a.cache.Set(feedKey, feed, cache.DefaultExpiration)
	return feed.Filter(filter), nil
}

// Reload drops the cached feed and loads it fresh.
func (a *Aggregator) Reload(ctx context.Context, filter string) (model.Feed, error) {
	a.Invalidate()
	return a.Load(ctx, filter)
}

// Invalidate drops the cached feed so the next Load refetches.
func (a *Aggregator) Invalidate() {
	a.cache.Delete(feedKey)
}

// fetchAll issues the six per-kind fetches concurrently and joins on all of
// them. Each fetch is independently fault-tolerant; a failure never aborts
// the other five. Results keep the canonical kind order so the later stable
// sort breaks created_at ties by per-kind response order.
func (a *Aggregator) fetchAll(ctx context.Context, studentID int64) model.Feed {
	kinds := model.AllKinds()
	results := make([][]model.ServiceRequest, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind model.ServiceKind) {
			defer wg.Done()
			items, err := a.backend.List(ctx, kind, studentID)
			if err != nil {
				log.Printf("Warning: could not load %s: %v", kind.Endpoint(), err)
				return
			}
			// Responses are not self-describing; tag each item with its kind.
			for j := range items {
				items[j].Kind = kind
			}
			results[i] = items
		}(i, kind)
	}
	wg.Wait()

	merged := make(model.Feed, 0)
	for _, items := range results {
		merged = append(merged, items...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt.Time)
	})
	return merged
}

// Stats returns the dashboard counts, substituting the documented placeholder
// set when the backend is unavailable.
func (a *Aggregator) Stats(ctx context.Context) *model.DashboardStats {
	stats, err := a.backend.Stats(ctx)
	if err != nil {
		log.Printf("Warning: could not load dashboard stats, using placeholders: %v", err)
		return model.PlaceholderStats()
	}
	return stats
}
