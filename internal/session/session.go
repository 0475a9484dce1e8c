// Package session owns the client-side lifecycle of one PIX checkout:
// empty -> creating -> pending -> paid | canceled, with a polling loop
// that refreshes the order status while it is pending.
package session

import (
	"sync"
	"sync/atomic"

	"pix-checkout/internal/domain"
	"pix-checkout/internal/infra"
)

type State string

const (
	StateEmpty    State = "empty"
	StateCreating State = "creating"
	StatePending  State = "pending"
	StatePaid     State = "paid"
	StateCanceled State = "canceled"
)

// Session is the state holder for a single checkout. It is owned by one
// consumer at a time and never survives a process restart.
type Session struct {
	mu         sync.RWMutex
	state      State
	order      domain.Order
	stop       chan struct{}
	stopOnce   sync.Once
	refreshing atomic.Bool
}

func newSession() *Session {
	return &Session{
		state: StateCreating,
		stop:  make(chan struct{}),
	}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Order returns a snapshot of the tracked order, or nil while the
// session holds none.
func (s *Session) Order() *domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == StateEmpty || s.state == StateCreating {
		return nil
	}
	o := s.order
	if s.order.Pix != nil {
		pix := *s.order.Pix
		o.Pix = &pix
	}
	return &o
}

// activate adopts the backend's order. The session state must always
// agree with the order status: a create response the gateway mapped to
// a terminal status lands the session directly in that terminal state.
func (s *Session) activate(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = *order
	switch order.Status {
	case domain.StatusPaid:
		s.state = StatePaid
	case domain.StatusCanceled:
		s.state = StateCanceled
	default:
		s.state = StatePending
	}
}

// applyUpdate folds one status poll into the session. Refreshes that
// keep the order pending only carry a fresher expiry; paid and canceled
// are terminal and halt the poller. Calls outside pending are no-ops.
func (s *Session) applyUpdate(update *infra.StatusUpdate) (from, to domain.OrderStatus, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePending {
		return s.order.Status, s.order.Status, false
	}

	if update.ExpiresAt != "" && s.order.Pix != nil {
		s.order.Pix.ExpiresAt = update.ExpiresAt
	}

	from = s.order.Status
	to = infra.MapStatus(update.Status)
	if to == domain.StatusPending {
		return from, to, false
	}

	s.order.Status = to
	switch to {
	case domain.StatusPaid:
		s.state = StatePaid
	case domain.StatusCanceled:
		s.state = StateCanceled
	}
	s.halt()
	return from, to, true
}

// reset returns the session to empty and halts its poller.
func (s *Session) reset() {
	s.mu.Lock()
	s.state = StateEmpty
	s.order = domain.Order{}
	s.mu.Unlock()
	s.halt()
}

// halt closes the stop channel exactly once. Safe to call with or
// without the mutex held; it touches no guarded state.
func (s *Session) halt() {
	s.stopOnce.Do(func() { close(s.stop) })
}
