package session

import (
	"sync"

	"github.com/google/uuid"

	"chefbook/internal/models"
)

// Registry is the in-memory Store. It is the only shared mutable state
// in the process; all access goes through the mutex, and no I/O happens
// while it is held. Constructing a new Registry starts from an empty
// mapping, which tests rely on to isolate session state between runs.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]models.Chef
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]models.Chef),
	}
}

// Issue generates a fresh token for chef and records the association.
func (r *Registry) Issue(chef models.Chef) (string, error) {
	token := uuid.New().String()

	r.mu.Lock()
	r.sessions[token] = chef
	r.mu.Unlock()

	return token, nil
}

// Resolve returns the chef a token authenticates, or (nil, nil) when
// the token is unknown. It has no side effects.
func (r *Registry) Resolve(token string) (*models.Chef, error) {
	r.mu.RLock()
	chef, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return &chef, nil
}

// Revoke removes the token's session. Unknown tokens are ignored.
func (r *Registry) Revoke(token string) error {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
	return nil
}
