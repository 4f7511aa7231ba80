package directory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/view"
)

// Session binds one visitor's list page to the employee API.
// Every request the page issues runs on its own goroutine; issuing a new one cancels the previous,
// and the page drops any result that is not for the latest request.
type Session struct {
	id      string
	log     *slog.Logger
	lister  client.EmployeeLister
	metrics *metrics.Metrics
	baseCtx context.Context
	timeout time.Duration

	mu       sync.Mutex
	page     *view.Page
	cancel   context.CancelFunc
	lastSeen time.Time

	inflight sync.WaitGroup
}

func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the page.
func (s *Session) State() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page.State()
}

// SetInput records typed filter text without applying it.
func (s *Session) SetInput(firstName, lastName string) view.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page.SetInput(firstName, lastName)

	return s.page.State()
}

// Submit records the typed text and applies it as filters when the page allows a search.
func (s *Session) Submit(firstName, lastName string) (view.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page.SetInput(firstName, lastName)

	return s.submit()
}

// SubmitInput applies the text already typed, leaving it untouched.
func (s *Session) SubmitInput() (view.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submit()
}

// submit must be called with s.mu held.
func (s *Session) submit() (view.State, bool) {
	req, ok := s.page.Submit()
	if ok {
		s.dispatch(req)
	}

	return s.page.State(), ok
}

// Reset clears inputs and filters when the page allows it.
func (s *Session) Reset() (view.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.page.Reset()
	if ok {
		s.dispatch(req)
	}

	return s.page.State(), ok
}

// Exportable returns the displayed list if export is currently enabled.
func (s *Session) Exportable() ([]models.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.page.CanExport() {
		return nil, false
	}

	employees := make([]models.Employee, len(s.page.Employees()))
	copy(employees, s.page.Employees())

	return employees, true
}

// Wait blocks until no fetch is running.
func (s *Session) Wait() {
	s.inflight.Wait()
}

func (s *Session) start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(s.page.Start())
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastSeen)
}

// stop cancels the in-flight fetch, if any.
func (s *Session) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// dispatch must be called with s.mu held.
func (s *Session) dispatch(req view.Request) {
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(s.baseCtx, s.timeout)
	s.cancel = cancel

	s.inflight.Add(1)
	go s.fetch(ctx, cancel, req)
}

func (s *Session) fetch(ctx context.Context, cancel context.CancelFunc, req view.Request) {
	defer s.inflight.Done()
	defer cancel()

	log := s.log.With(slog.Uint64("seq", req.Seq))
	log.DebugContext(ctx, "Fetching employees", sl.Filters(req.Filters))

	employees, err := s.lister.List(ctx, req.Filters)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.page.Resolve(req.Seq, employees, err) {
		s.metrics.StaleResponses.Inc()
		log.DebugContext(ctx, "Discarded response of superseded request", "latest", s.page.Latest())
		return
	}

	if err != nil {
		log.WarnContext(ctx, "Employee list fetch failed", sl.Filters(req.Filters), sl.Err(err))
		return
	}

	log.DebugContext(ctx, "Employee list updated", "count", len(employees))
}
