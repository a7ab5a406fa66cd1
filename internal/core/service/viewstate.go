package service

import (
	"sync"

	"github.com/agrigo/storefront/internal/core/domain"
)

type viewPhase int

const (
	phaseIdle viewPhase = iota
	phaseLoading
	phaseSubmitting
)

// viewState is the per-session controller state machine:
// idle → loading|submitting → idle, with an optional edit target recorded
// while the product form is open. The mutex makes the guard a real mutual
// exclusion rather than a boolean checked and then set in separate steps.
type viewState struct {
	mu        sync.Mutex
	phase     viewPhase
	editingID string
}

// begin moves the state from idle to the given phase, or fails with ErrBusy
// when another operation is still in flight.
func (s *viewState) begin(p viewPhase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != phaseIdle {
		return domain.ErrBusy
	}
	s.phase = p
	return nil
}

// end returns the state to idle. Call it deferred so the guard is released
// regardless of outcome.
func (s *viewState) end() {
	s.mu.Lock()
	s.phase = phaseIdle
	s.mu.Unlock()
}

func (s *viewState) setEditing(id string) {
	s.mu.Lock()
	s.editingID = id
	s.mu.Unlock()
}

func (s *viewState) editing() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *viewState) clearEditing() {
	s.setEditing("")
}

// viewStates tracks one viewState per session ID.
type viewStates struct {
	mu     sync.Mutex
	states map[string]*viewState
}

func newViewStates() *viewStates {
	return &viewStates{states: make(map[string]*viewState)}
}

func (v *viewStates) get(sid string) *viewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	st, ok := v.states[sid]
	if !ok {
		st = &viewState{}
		v.states[sid] = st
	}
	return st
}

func (v *viewStates) drop(sid string) {
	v.mu.Lock()
	delete(v.states, sid)
	v.mu.Unlock()
}
