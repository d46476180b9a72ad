package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
)

var ErrSessionNotFound = errors.New("ledger session not found")

// SessionRegistry keeps ledger viewing sessions in memory.
//
// Calls on one session are serialized. Fetches run without holding the session
// lock so the previous view stays readable while a refresh is in flight; when
// two refreshes overlap the one that finishes last wins.
type SessionRegistry struct {
	store     ledger.Store
	formatter ledger.CurrencyFormatter
	ttl       time.Duration
	logger    *logrus.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *ledger.Session
	lastUsed time.Time
}

func NewSessionRegistry(store ledger.Store, formatter ledger.CurrencyFormatter, ttl time.Duration, logger *logrus.Logger) *SessionRegistry {
	return &SessionRegistry{
		store:     store,
		formatter: formatter,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*sessionEntry),
	}
}

// Create opens a session and loads it. A failed initial fetch still creates
// the session, with the failure reported on its view.
func (r *SessionRegistry) Create(ctx context.Context) (uuid.UUID, ledger.View, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, ledger.View{}, err
	}

	session := ledger.NewSession(ledger.WithFormatter(r.formatter))
	var view ledger.View
	snap, err := ledger.Fetch(ctx, r.store)
	if err != nil {
		r.logger.WithError(err).WithField("sessionID", id.String()).Warn("SessionRegistry.Create.fetch failed")
		view = session.FetchFailed(err)
	} else {
		view = session.Load(snap)
	}

	r.mu.Lock()
	r.evictExpiredLocked()
	r.sessions[id] = &sessionEntry{session: session, lastUsed: r.now()}
	r.mu.Unlock()

	return id, view, nil
}

// View returns the current view of a session.
func (r *SessionRegistry) View(id uuid.UUID) (ledger.View, error) {
	return r.Update(id, func(s *ledger.Session) (ledger.View, error) {
		return s.View(), nil
	})
}

// Update runs fn with exclusive access to the session.
func (r *SessionRegistry) Update(id uuid.UUID, fn func(*ledger.Session) (ledger.View, error)) (ledger.View, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return ledger.View{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

// Refresh re-reads the store and applies the result to the session. On failure
// the session keeps its records and reports the error on the view.
func (r *SessionRegistry) Refresh(ctx context.Context, id uuid.UUID) (ledger.View, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return ledger.View{}, err
	}

	snap, fetchErr := ledger.Fetch(ctx, r.store)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if fetchErr != nil {
		r.logger.WithError(fetchErr).WithField("sessionID", id.String()).Warn("SessionRegistry.Refresh.fetch failed")
		return entry.session.FetchFailed(fetchErr), nil
	}
	return entry.session.Load(snap), nil
}

// Close discards a session.
func (r *SessionRegistry) Close(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// EvictExpired drops every session idle for longer than the TTL and returns
// how many were dropped.
func (r *SessionRegistry) EvictExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evictExpiredLocked()
}

// RunEviction calls EvictExpired every interval until ctx is done.
func (r *SessionRegistry) RunEviction(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.EvictExpired(); n > 0 {
				r.logger.WithField("evicted", n).Info("SessionRegistry.RunEviction")
			}
		}
	}
}

// Len reports the number of open sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionRegistry) lookup(id uuid.UUID) (*sessionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := r.now()
	if r.expired(entry, now) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	entry.lastUsed = now
	return entry, nil
}

func (r *SessionRegistry) evictExpiredLocked() int {
	now := r.now()
	evicted := 0
	for id, entry := range r.sessions {
		if r.expired(entry, now) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *SessionRegistry) expired(entry *sessionEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(entry.lastUsed) > r.ttl
}
