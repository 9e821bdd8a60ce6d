package session

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"

	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
)

// State is the current session snapshot. It is replaced wholesale on every
// transition, never mutated in place.
type State struct {
	Student       *model.Student
	Authenticated bool
}

// Store is the single source of truth for who is acting. Dependent components
// read it through Current or observe transitions through Subscribe; nothing
// else mutates the session.
type Store struct {
	client *portal.Client
	path   string

	mu    sync.RWMutex
	state State
	subs  []func(State)
}

// persistedSession is the on-disk session snapshot, the CLI's stand-in for
// the browser's storage: the last known identity plus the session cookies.
type persistedSession struct {
	Student *model.Student `json:"student,omitempty"`
	Cookies []*http.Cookie `json:"cookies,omitempty"`
}

// NewStore creates a session store persisting to the given file. A previously
// saved session is restored into the client's cookie jar but the state stays
// unauthenticated until CheckSession confirms it with the backend.
func NewStore(client *portal.Client, path string) *Store {
	s := &Store{client: client, path: path}
	s.restore()
	return s
}

// Current returns the session state.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers an observer invoked after every state transition.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// CheckSession asks the backend who the current session belongs to. It never
// returns an error: any failure, network included, fails closed to an
// unauthenticated state.
func (s *Store) CheckSession(ctx context.Context) State {
	student, err := s.client.Me(ctx)
	if err != nil {
		s.set(State{})
		return s.Current()
	}
	s.set(State{Student: student, Authenticated: true})
	return s.Current()
}

// Login authenticates with the backend. On failure the session is unchanged
// and the backend's message is returned verbatim inside the typed error.
func (s *Store) Login(ctx context.Context, loginID, password string) (*model.Student, error) {
	student, err := s.client.Login(ctx, loginID, password)
	if err != nil {
		return nil, err
	}
	s.set(State{Student: student, Authenticated: true})
	return student, nil
}

// Signup validates the profile locally before any network call, then registers
// and signs in. A validation failure issues zero requests.
func (s *Store) Signup(ctx context.Context, profile *model.SignupProfile) (*model.Student, error) {
	if err := validateSignup(profile); err != nil {
		return nil, err
	}
	student, err := s.client.Signup(ctx, profile)
	if err != nil {
		return nil, err
	}
	s.set(State{Student: student, Authenticated: true})
	return student, nil
}

// DemoLogin signs in with the portal's demo account.
func (s *Store) DemoLogin(ctx context.Context) (*model.Student, error) {
	student, err := s.client.DemoLogin(ctx)
	if err != nil {
		return nil, err
	}
	s.set(State{Student: student, Authenticated: true})
	return student, nil
}

// Logout notifies the backend best-effort and clears the session
// unconditionally. Logout is always locally effective.
func (s *Store) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		log.Printf("Warning: backend logout failed: %v", err)
	}
	s.set(State{})
}

// validateSignup enforces the local signup rules. Required-field checks stay
// with the backend; the password rules fail fast here.
func validateSignup(profile *model.SignupProfile) error {
	if len(profile.Password) < 6 {
		return &portal.ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	if profile.Password != profile.ConfirmPassword {
		return &portal.ValidationError{Field: "confirm_password", Message: "Passwords do not match"}
	}
	return nil
}

// set replaces the state atomically, persists it, and notifies subscribers.
func (s *Store) set(state State) {
	s.mu.Lock()
	s.state = state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.persist(state)
	for _, fn := range subs {
		fn(state)
	}
}

// persist writes the session snapshot to disk. Failures are logged, not
// surfaced; a missing snapshot only costs a re-login.
func (s *Store) persist(state State) {
	if s.path == "" {
		return
	}
	if !state.Authenticated {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: failed to remove session file %s: %v", s.path, err)
		}
		return
	}
	snapshot := persistedSession{Student: state.Student, Cookies: s.client.Cookies()}
	data, err := json.MarshalIndent(&snapshot, "", "  ")
	if err != nil {
		log.Printf("Warning: failed to encode session snapshot: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Printf("Warning: failed to write session file %s: %v", s.path, err)
	}
}

// restore loads persisted cookies back into the client. The identity snapshot
// is not trusted; CheckSession revalidates it against the backend.
func (s *Store) restore() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var snapshot persistedSession
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("Warning: ignoring corrupt session file %s: %v", s.path, err)
		return
	}
	s.client.SetCookies(snapshot.Cookies)
}
