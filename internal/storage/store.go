package storage

import (
	"errors"
	"time"

	"github.com/scenectl/scenectl/pkg/editorclient"
)

// Sentinel errors for store operations.
var (
	// ErrExists is returned when creating an entity whose name is taken.
	ErrExists = errors.New("entity already exists")
	// ErrNotFound is returned when updating an unknown entity.
	ErrNotFound = errors.New("entity not found")
)

// Kind distinguishes plain game objects from lights.
type Kind string

// Entity kinds.
const (
	KindGameObject Kind = "gameobject"
	KindLight      Kind = "light"
)

// Entity is a named object in the stand-in scene.
type Entity struct {
	Name      string               `json:"name"`
	Kind      Kind                 `json:"kind"`
	Primitive string               `json:"primitiveType,omitempty"`
	LightType string               `json:"lightType,omitempty"`
	Position  editorclient.Vector3 `json:"position"`
	Rotation  editorclient.Vector3 `json:"rotation"`
	Scale     editorclient.Vector3 `json:"scale"`
	Color     *editorclient.Color  `json:"color,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`

	seq uint64
}

// Clone returns a deep copy of e.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	out := *e
	if e.Color != nil {
		c := *e.Color
		out.Color = &c
	}
	return &out
}

// EntityStore defines storage for scene entities keyed by name.
type EntityStore interface {
	// Get returns a copy of the named entity, or nil if not found.
	Get(name string) *Entity

	// Create stores a new entity. Returns ErrExists if the name is taken.
	Create(e *Entity) error

	// Update applies fn to the stored entity. Returns ErrNotFound if missing.
	Update(name string, fn func(*Entity)) error

	// Delete removes an entity. Returns true if deleted, false if not found.
	Delete(name string) bool

	// List returns copies of all entities in creation order.
	List() []*Entity

	// Count returns the number of stored entities.
	Count() int

	// Clear removes all entities.
	Clear()

	// Exists checks if an entity with the given name exists.
	Exists(name string) bool
}
