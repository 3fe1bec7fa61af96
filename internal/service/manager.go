package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/internal/metrics"
)

// ErrFormNotFound is returned when a form identifier matches no live session.
var ErrFormNotFound = errors.New("form not found")

// FormManager owns the live form sessions. Sessions expire after a period of
// inactivity; a background sweeper reclaims them so abandoned forms do not
// accumulate.
type FormManager struct {
	mu     sync.RWMutex
	forms  map[string]*FormState
	ttl    time.Duration
	stopCh chan struct{}
}

// NewFormManager creates a manager whose sessions expire ttl after their last
// access. A non-positive ttl defaults to 30 minutes.
func NewFormManager(ttl time.Duration) *FormManager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	m := &FormManager{
		forms:  make(map[string]*FormState),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go m.startCleanup()
	return m
}

// Create allocates a new empty form session and returns it.
func (m *FormManager) Create() *FormState {
	form := NewFormState(uuid.NewString())

	m.mu.Lock()
	m.forms[form.ID()] = form
	size := len(m.forms)
	m.mu.Unlock()

	metrics.SetActiveForms(size)
	log.Debug().Str("form_id", form.ID()).Msg("Form session created")
	return form
}

// Get returns the live session for the given identifier.
func (m *FormManager) Get(id string) (*FormState, error) {
	m.mu.RLock()
	form, ok := m.forms[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrFormNotFound
	}
	return form, nil
}

// Delete removes a session outright.
func (m *FormManager) Delete(id string) {
	m.mu.Lock()
	delete(m.forms, id)
	size := len(m.forms)
	m.mu.Unlock()
	metrics.SetActiveForms(size)
}

// Len returns the number of live sessions.
func (m *FormManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.forms)
}

// Stop shuts down the background sweeper.
func (m *FormManager) Stop() {
	close(m.stopCh)
}

// startCleanup periodically evicts sessions idle past the TTL.
func (m *FormManager) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCh:
			return
		}
	}
}

func (m *FormManager) cleanup() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	evicted := 0
	for id, form := range m.forms {
		if form.LastAccess().Before(cutoff) {
			delete(m.forms, id)
			evicted++
		}
	}
	size := len(m.forms)
	m.mu.Unlock()

	metrics.SetActiveForms(size)
	if evicted > 0 {
		log.Debug().Int("evicted", evicted).Int("remaining", size).Msg("Expired form sessions evicted")
	}
}
