package storage

import (
	"sort"
	"sync"
	"time"
)

// InMemoryEntityStore is a thread-safe in-memory implementation of EntityStore.
type InMemoryEntityStore struct {
	mu       sync.RWMutex
	entities map[string]*Entity
	nextSeq  uint64
}

// NewInMemoryEntityStore creates a new InMemoryEntityStore.
func NewInMemoryEntityStore() *InMemoryEntityStore {
	return &InMemoryEntityStore{
		entities: make(map[string]*Entity),
	}
}

// Get returns a copy of the named entity, or nil if not found.
func (s *InMemoryEntityStore) Get(name string) *Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entities[name].Clone()
}

// Create stores a copy of e. Returns ErrExists if the name is taken.
func (s *InMemoryEntityStore) Create(e *Entity) error {
	if e == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entities[e.Name]; exists {
		return ErrExists
	}
	stored := e.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.nextSeq++
	stored.seq = s.nextSeq
	s.entities[e.Name] = stored
	return nil
}

// Update applies fn to the stored entity. The name cannot be changed.
func (s *InMemoryEntityStore) Update(name string, fn func(*Entity)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, exists := s.entities[name]
	if !exists {
		return ErrNotFound
	}
	fn(e)
	e.Name = name
	return nil
}

// Delete removes an entity. Returns true if deleted, false if not found.
func (s *InMemoryEntityStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entities[name]; exists {
		delete(s.entities, name)
		return true
	}
	return false
}

// List returns copies of all entities in creation order.
func (s *InMemoryEntityStore) List() []*Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Entity, 0, len(s.entities))
	for _, e := range s.entities {
		result = append(result, e.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].seq < result[j].seq
	})
	return result
}

// Count returns the number of stored entities.
func (s *InMemoryEntityStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all stored entities.
func (s *InMemoryEntityStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = make(map[string]*Entity)
}

// Exists checks if an entity with the given name exists.
func (s *InMemoryEntityStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.entities[name]
	return exists
}

// Ensure InMemoryEntityStore implements EntityStore.
var _ EntityStore = (*InMemoryEntityStore)(nil)
