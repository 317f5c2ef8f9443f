// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: per-user navigation state: the route options currently on screen
//       and the most recent requests. In-memory only; both the history and
//       the registry are bounded.

package navigator

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Registry and history bounds used when none is configured.
const (
	DefaultHistoryLimit = 50
	DefaultMaxSessions  = 1000
	DefaultSessionTTL   = 30 * time.Minute
)

// Request is one navigation request as recorded in a session history.
type Request struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	At     time.Time `json:"at"`
	Routes int       `json:"routes"`
	Error  string    `json:"error,omitempty"`
}

// Session holds the state of one user. It is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	userID   string
	current  []Route
	history  []Request
	limit    int
	lastSeen time.Time
	now      func() time.Time
}

// NewSession starts an empty session for userID that keeps the last
// DefaultHistoryLimit requests.
func NewSession(userID string) *Session {
	return newSession(userID, DefaultHistoryLimit, time.Now)
}

func newSession(userID string, limit int, now func() time.Time) *Session {
	return &Session{userID: userID, limit: limit, now: now, lastSeen: now()}
}

// UserID returns the owner of the session.
func (s *Session) UserID() string { return s.userID }

// Navigate computes the route options from → to with nav's default bound,
// records the request and, on success, replaces the current options.
// A failed request leaves the current options untouched.
func (s *Session) Navigate(ctx context.Context, nav *Navigator, from, to string) ([]Route, error) {
	return s.NavigateWithin(ctx, nav, from, to, 0, 0)
}

// NavigateWithin is Navigate with an explicit node bound and result limit;
// values below 1 select the defaults of ComputeBestPaths.
func (s *Session) NavigateWithin(ctx context.Context, nav *Navigator, from, to string, maxDepth, limit int) ([]Route, error) {
	routes, err := nav.ComputeBestPaths(ctx, from, to, maxDepth, limit)

	req := Request{From: from, To: to, Routes: len(routes)}
	if err != nil {
		req.Error = err.Error()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	req.At = s.now()
	s.lastSeen = req.At
	s.record(req)
	if err != nil {
		return nil, err
	}
	s.current = routes

	return cloneRoutes(routes), nil
}

// record appends req and drops the oldest entries beyond the limit.
// The caller holds s.mu.
func (s *Session) record(req Request) {
	s.history = append(s.history, req)
	if over := len(s.history) - s.limit; s.limit > 0 && over > 0 {
		n := copy(s.history, s.history[over:])
		clear(s.history[n:])
		s.history = s.history[:n]
	}
}

// Current returns the options of the last successful request, cheapest first.
func (s *Session) Current() []Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneRoutes(s.current)
}

// History returns the recorded requests, oldest first. Only the most recent
// ones are kept.
func (s *Session) History() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.history...)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

func (s *Session) touch(at time.Time) {
	s.mu.Lock()
	s.lastSeen = at
	s.mu.Unlock()
}

func cloneRoutes(rs []Route) []Route {
	if rs == nil {
		return nil
	}

	return append([]Route(nil), rs...)
}

// SessionsOption configures a Sessions registry.
type SessionsOption func(*Sessions)

// WithMaxSessions caps the registry; the least recently used session is
// evicted to make room. Values below 1 are ignored.
func WithMaxSessions(n int) SessionsOption {
	return func(r *Sessions) {
		if n >= 1 {
			r.max = n
		}
	}
}

// WithSessionTTL drops sessions idle for longer than d. 0 disables expiry;
// negative values are ignored.
func WithSessionTTL(d time.Duration) SessionsOption {
	return func(r *Sessions) {
		if d >= 0 {
			r.ttl = d
		}
	}
}

// WithHistoryLimit sets how many requests each session keeps.
// Values below 1 are ignored.
func WithHistoryLimit(n int) SessionsOption {
	return func(r *Sessions) {
		if n >= 1 {
			r.historyLimit = n
		}
	}
}

// WithClock replaces time.Now, for expiry and request timestamps.
func WithClock(now func() time.Time) SessionsOption {
	return func(r *Sessions) {
		if now != nil {
			r.now = now
		}
	}
}

// Sessions is a bounded registry of sessions keyed by user ID.
//
// Entries live in a recency list: Get moves a session to the front, expired
// sessions are swept from the back, and the back entry is evicted when the
// registry is full.
type Sessions struct {
	mu           sync.Mutex
	byID         map[string]*list.Element
	lru          *list.List // of *Session, most recent first
	max          int
	ttl          time.Duration
	historyLimit int
	now          func() time.Time
}

// NewSessions returns an empty registry with DefaultMaxSessions,
// DefaultSessionTTL and DefaultHistoryLimit unless overridden.
func NewSessions(opts ...SessionsOption) *Sessions {
	r := &Sessions{
		byID:         make(map[string]*list.Element),
		lru:          list.New(),
		max:          DefaultMaxSessions,
		ttl:          DefaultSessionTTL,
		historyLimit: DefaultHistoryLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Get returns the session of userID, creating it on first use. An expired
// session is replaced by a fresh one.
func (r *Sessions) Get(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.expire(now)

	if el, ok := r.byID[userID]; ok {
		r.lru.MoveToFront(el)
		s := el.Value.(*Session)
		s.touch(now)
		return s
	}

	for r.lru.Len() >= r.max {
		r.remove(r.lru.Back())
	}
	s := newSession(userID, r.historyLimit, r.now)
	r.byID[userID] = r.lru.PushFront(s)

	return s
}

// Len returns the number of live sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.expire(r.now())

	return r.lru.Len()
}

// expire removes sessions idle longer than the TTL. The caller holds r.mu.
func (r *Sessions) expire(now time.Time) {
	if r.ttl == 0 {
		return
	}
	for el := r.lru.Back(); el != nil; {
		prev := el.Prev()
		if now.Sub(el.Value.(*Session).idleSince()) > r.ttl {
			r.remove(el)
		}
		el = prev
	}
}

func (r *Sessions) remove(el *list.Element) {
	s := r.lru.Remove(el).(*Session)
	delete(r.byID, s.userID)
}
