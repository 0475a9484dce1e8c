package session

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"pix-checkout/internal/domain"
	"pix-checkout/internal/infra"
)

// ChangeFunc is invoked after a session leaves pending, with a snapshot
// of the order and the transition that happened.
type ChangeFunc func(order *domain.Order, from, to domain.OrderStatus)

// Store keeps at most one active session per order and drives the
// status poller for each pending one.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	gateway  infra.PixGatewayInterface
	interval time.Duration
	onChange ChangeFunc
	group    singleflight.Group
}

func NewStore(gateway infra.PixGatewayInterface, interval time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		gateway:  gateway,
		interval: interval,
	}
}

// SetOnChange registers the transition callback. Must be called before
// any session is activated.
func (st *Store) SetOnChange(fn ChangeFunc) {
	st.onChange = fn
}

// Begin opens a session in the creating state, covering the window
// while the submission is in flight. The session is not yet tracked.
func (st *Store) Begin() *Session {
	return newSession()
}

// Abandon returns a failed submission's session to empty.
func (st *Store) Abandon(s *Session) {
	s.reset()
}

// Activate adopts the backend-created order, tracks the session under
// its order id and starts the poller while the order is pending.
func (st *Store) Activate(s *Session, order *domain.Order) {
	s.activate(order)

	st.mu.Lock()
	if prev, ok := st.sessions[order.OrderID]; ok && prev != s {
		prev.reset()
	}
	st.sessions[order.OrderID] = s
	st.mu.Unlock()

	if order.Status == domain.StatusPending {
		go st.poll(s, order.OrderID)
	}
}

func (st *Store) Get(orderID string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[orderID]
	return s, ok
}

// Clear is the explicit user reset: session back to empty, poller
// stopped, tracking dropped.
func (st *Store) Clear(orderID string) {
	st.mu.Lock()
	s, ok := st.sessions[orderID]
	delete(st.sessions, orderID)
	st.mu.Unlock()
	if ok {
		s.reset()
	}
}

// Close halts every poller. Used on shutdown and in tests.
func (st *Store) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		s.halt()
		delete(st.sessions, id)
	}
}

// Refresh performs one status fetch and folds the result into the
// session. Concurrent callers for the same order share a single
// backend request. Faults are swallowed: the session stays pending and
// the next tick retries.
func (st *Store) Refresh(ctx context.Context, orderID string) {
	st.group.Do(orderID, func() (interface{}, error) {
		s, ok := st.Get(orderID)
		if !ok || s.State() != StatePending {
			return nil, nil
		}

		update, err := st.gateway.FetchStatus(ctx, orderID)
		if err != nil {
			log.Printf("status refresh for order %s failed: %v", orderID, err)
			return nil, nil
		}
		if update == nil {
			return nil, nil
		}

		from, to, changed := s.applyUpdate(update)
		if changed && st.onChange != nil {
			st.onChange(s.Order(), from, to)
		}
		return nil, nil
	})
}

// poll ticks at the store interval until the session leaves pending.
// A tick is skipped when the previous refresh is still in flight, so a
// slow backend never stacks overlapping polls.
func (st *Store) poll(s *Session, orderID string) {
	ticker := time.NewTicker(st.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if !s.refreshing.CompareAndSwap(false, true) {
				continue
			}
			go func() {
				defer s.refreshing.Store(false)
				st.Refresh(context.Background(), orderID)
			}()
		}
	}
}
