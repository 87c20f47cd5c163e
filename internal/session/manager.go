package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"docmap/internal/domain"
	"docmap/internal/interaction"
	"docmap/internal/viewport"
)

// ErrNotFound is returned for unknown session ids
var ErrNotFound = errors.New("session not found")

// NavigateFunc receives committed navigations with the emitting session
type NavigateFunc func(sessionID, path string)

// Manager tracks live sessions and hands each one its own model clone
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	model    *domain.Model

	reducedMotion bool
	onNavigate    NavigateFunc
}

// NewManager creates a manager serving the given model. onNavigate may be
// nil; reducedMotion shortens the click confirmation fade for every session.
func NewManager(model *domain.Model, reducedMotion bool, onNavigate NavigateFunc) *Manager {
	return &Manager{
		sessions:      make(map[string]*Session),
		model:         model,
		reducedMotion: reducedMotion,
		onNavigate:    onNavigate,
	}
}

// Create starts a session. currentPath seeds the focus when present; a path
// that no longer matches a node degrades to "no focus" downstream rather
// than failing.
func (m *Manager) Create(currentPath string, width, height float64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()

	opts := []interaction.Option{}
	if m.reducedMotion {
		opts = append(opts, interaction.WithReducedMotion())
	}

	s := &Session{
		id:      id,
		model:   m.model.Clone(),
		focusID: currentPath,
		width:   width,
		height:  height,
		vp:      viewport.New(),
	}
	s.ic = interaction.New(func(path string) {
		if m.onNavigate != nil {
			m.onNavigate(id, path)
		}
	}, opts...)

	m.sessions[id] = s
	return s
}

// Get returns a session by id
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Remove drops a session
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SetModel swaps in a freshly built model, fanned out to every live session
// as its own clone
func (m *Manager) SetModel(model *domain.Model) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.model = model
	for _, s := range m.sessions {
		s.setModel(model.Clone())
	}
}
