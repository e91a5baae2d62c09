// Package storage provides the entity store behind the stand-in editor.
//
// It defines the EntityStore interface for creating, reading, updating and
// deleting named scene entities, along with a thread-safe in-memory
// implementation.
//
// Key types:
//
//   - EntityStore: the contract the stand-in editor handlers use
//   - InMemoryEntityStore: map-backed implementation, listing in creation order
//   - Entity: a named game object or light with its transform and colour
//
// Names are unique. Create fails with ErrExists for a taken name, and
// Update fails with ErrNotFound for an unknown one, mirroring how the real
// editor rejects duplicate and dangling references.
package storage
