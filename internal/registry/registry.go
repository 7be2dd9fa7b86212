package registry

import (
	"log/slog"
	"sort"

	gocache "github.com/patrickmn/go-cache"
)

// Entity is anything that can be registered under an identifier.
type Entity interface {
	ID() string
	Kind() string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used by the registry and by every entity
// created against it.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry is an identifier to entity store. Last write wins.
type Registry struct {
	store  *gocache.Cache
	logger *slog.Logger
}

// New creates and initializes a new, empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		store:  gocache.New(gocache.NoExpiration, 0),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Logger returns the logger entities created against this registry use.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

// Put inserts or overwrites the entry for e.ID().
func (r *Registry) Put(e Entity) {
	if e == nil || e.ID() == "" {
		r.logger.Warn("Refusing to register an entity without identifier.")
		return
	}
	if prev, ok := r.Get(e.ID()); ok && prev != e {
		r.logger.Debug("Overwriting registry entry.", "id", e.ID(), "previous_kind", prev.Kind(), "kind", e.Kind())
	}
	r.store.Set(e.ID(), e, gocache.NoExpiration)
}

// Get returns the entity registered under id. A miss is a normal outcome.
func (r *Registry) Get(id string) (Entity, bool) {
	v, ok := r.store.Get(id)
	if !ok {
		return nil, false
	}
	e, ok := v.(Entity)
	return e, ok
}

// Contains reports whether an entity is registered under id.
func (r *Registry) Contains(id string) bool {
	_, ok := r.store.Get(id)
	return ok
}

// Rename moves the entry stored under oldID to newID, keeping the entity
// value. Any entry already stored under newID is overwritten. An empty
// newID is a no-op, and a missing oldID is logged and ignored. It reports
// whether an entry was moved.
func (r *Registry) Rename(oldID, newID string) bool {
	if newID == "" {
		r.logger.Debug("Registry rename skipped, no new identifier given.", "id", oldID)
		return false
	}
	e, ok := r.Get(oldID)
	if !ok {
		r.logger.Warn("Cannot rename unknown registry entry.", "id", oldID, "new_id", newID)
		return false
	}
	if oldID == newID {
		return true
	}
	r.store.Delete(oldID)
	r.store.Set(newID, e, gocache.NoExpiration)
	r.logger.Debug("Registry entry renamed.", "id", oldID, "new_id", newID, "kind", e.Kind())
	return true
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return r.store.ItemCount()
}

// IDs returns every registered identifier, sorted alphabetically.
func (r *Registry) IDs() []string {
	items := r.store.Items()
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Find returns the first entity, in identifier order, that match accepts.
func (r *Registry) Find(match func(Entity) bool) (Entity, bool) {
	for _, id := range r.IDs() {
		if e, ok := r.Get(id); ok && match(e) {
			return e, true
		}
	}
	return nil, false
}

// Reset drops every entry.
func (r *Registry) Reset() {
	r.store.Flush()
}
