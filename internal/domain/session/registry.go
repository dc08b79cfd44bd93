package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry owns the stores of all signed-in users.
type Registry struct {
	mu     sync.Mutex
	stores map[uuid.UUID]*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[uuid.UUID]*Store)}
}

// Open returns a fresh loading store for userID, replacing any previous one.
func (r *Registry) Open(userID uuid.UUID) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := newStore()
	r.stores[userID] = store

	return store
}

// Get returns the store of userID if the user is signed in.
func (r *Registry) Get(userID uuid.UUID) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[userID]

	return store, ok
}

// Dispatch applies ev to the store of userID. It reports false when the
// user has no store.
func (r *Registry) Dispatch(userID uuid.UUID, ev Event) bool {
	store, ok := r.Get(userID)
	if !ok {
		return false
	}
	store.Apply(ev)

	return true
}

// Close drops the store of userID on sign-out.
func (r *Registry) Close(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.stores, userID)
}

// Reset drops every store.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stores = make(map[uuid.UUID]*Store)
}

// Len returns the number of open stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.stores)
}
