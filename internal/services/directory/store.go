package directory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/view"
)

// Store keeps live sessions keyed by a random identifier and evicts idle ones.
type Store struct {
	log     *slog.Logger
	lister  client.EmployeeLister
	metrics *metrics.Metrics
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates a store whose sessions fetch through lister, each request bounded by timeout.
func NewStore(
	log *slog.Logger,
	lister client.EmployeeLister,
	metrics *metrics.Metrics,
	ttl, timeout time.Duration,
) *Store {
	ctx, cancel := context.WithCancel(context.Background())

	return &Store{
		log:      log,
		lister:   lister,
		metrics:  metrics,
		ttl:      ttl,
		timeout:  timeout,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*Session),
	}
}

func (st *Store) initLogger(opn string) *slog.Logger {
	return st.log.With(
		slog.String("op", opn),
		slog.String("division", "directory"),
	)
}

// Create registers a new session and issues its initial fetch.
func (st *Store) Create() *Session {
	const opn = "Directory.Create"

	sess := &Session{
		id:       uuid.NewString(),
		lister:   st.lister,
		metrics:  st.metrics,
		baseCtx:  st.ctx,
		timeout:  st.timeout,
		page:     view.NewPage(),
		lastSeen: st.now(),
	}
	sess.log = st.initLogger(opn).With(slog.String("session", sess.id))

	st.mu.Lock()
	st.sessions[sess.id] = sess
	st.metrics.ActiveSessions.Set(float64(len(st.sessions)))
	st.mu.Unlock()

	sess.start()
	sess.log.Debug("Session created")

	return sess
}

// Get returns the session and marks it as recently used.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	sess, ok := st.sessions[id]
	st.mu.Unlock()

	if !ok {
		return nil, false
	}

	sess.touch(st.now())

	return sess, true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return len(st.sessions)
}

// Evict drops sessions idle for longer than the TTL and cancels their fetches.
func (st *Store) Evict() int {
	now := st.now()
	var evicted []*Session

	st.mu.Lock()
	for id, sess := range st.sessions {
		if sess.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			evicted = append(evicted, sess)
		}
	}
	st.metrics.ActiveSessions.Set(float64(len(st.sessions)))
	st.mu.Unlock()

	for _, sess := range evicted {
		sess.stop()
	}

	return len(evicted)
}

// Start evicts idle sessions every interval until ctx is done, then closes the store.
func (st *Store) Start(ctx context.Context, interval time.Duration) error {
	const opn = "Directory.Start"
	log := st.initLogger(opn)

	log.InfoContext(ctx, "Starting session janitor", "interval", interval.String(), "ttl", st.ttl.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if evicted := st.Evict(); evicted > 0 {
				log.InfoContext(ctx, "Evicted idle sessions", "value", evicted)
			}
		case <-ctx.Done():
			log.InfoContext(ctx, "Service shutting down.")
			st.Close()
			return nil
		}
	}
}

// Close cancels every in-flight fetch and drops all sessions.
func (st *Store) Close() {
	st.cancel()

	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.metrics.ActiveSessions.Set(0)
	st.mu.Unlock()

	for _, sess := range sessions {
		sess.stop()
		sess.Wait()
	}
}
