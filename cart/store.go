package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kevin997/Olku-Olkanda/models"
)

// Store keeps one cart per browsing session, in memory only. Nothing survives
// a restart. Each mutation reads the current value, applies a pure
// transformation and publishes the result under the lock, so the next action
// always observes the previous one's outcome.
type Store struct {
	mu    sync.Mutex
	carts map[string]models.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]models.Cart)}
}

// Create registers a new empty cart and returns its session ID.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = models.Cart{}
	s.mu.Unlock()
	return id
}

// Get returns the current cart value for id. An unknown id reads as an empty
// cart rather than an error, matching the no-op treatment of lookup misses
// inside the cart itself.
func (s *Store) Get(id string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[id]
}

// Apply replaces the cart for id with fn(current) and returns the new value.
func (s *Store) Apply(id string, fn func(models.Cart) models.Cart) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.carts[id])
	s.carts[id] = next
	return next
}

// Clear empties the cart for id.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	s.carts[id] = models.Cart{}
	s.mu.Unlock()
}
