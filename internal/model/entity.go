package model

import (
	"log/slog"

	"github.com/specialistvlad/chemlite/internal/meta"
	"github.com/specialistvlad/chemlite/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Entity is the identity and metadata base embedded by Compound, Reaction
// and Pathway.
type Entity struct {
	kind  string
	id    string
	infos meta.Infos
	reg   *registry.Registry
}

func newEntity(reg *registry.Registry, kind, id string, infos meta.Infos) (Entity, error) {
	if reg == nil {
		panic("model: nil registry")
	}
	if err := validateID(kind, id); err != nil {
		return Entity{}, err
	}
	return Entity{kind: kind, id: id, infos: infos.Clone(), reg: reg}, nil
}

// ID returns the identifier of the entity.
func (e *Entity) ID() string { return e.id }

// Kind returns the concrete kind name, e.g. "Compound".
func (e *Entity) Kind() string { return e.kind }

// Registry returns the registry the entity was created with.
func (e *Entity) Registry() *registry.Registry { return e.reg }

func (e *Entity) logger() *slog.Logger {
	return e.reg.Logger().With("kind", e.kind, "id", e.id)
}

// SetID changes the identifier. An empty identifier is rejected with an
// *IDError and leaves the entity untouched. When the registry entry under
// the previous identifier is this entity, it is moved to the new key.
func (e *Entity) SetID(id string) error {
	if err := validateID(e.kind, id); err != nil {
		return err
	}
	old := e.id
	e.id = id
	if old == id {
		return nil
	}
	if cur, ok := e.reg.Get(old); ok && cur.ID() == id {
		e.reg.Rename(old, id)
	}
	return nil
}

// Info returns the metadata value stored under key. A missing key is
// reported with ok == false and logged at debug level.
func (e *Entity) Info(key string) (cty.Value, bool) {
	v, ok := e.infos[key]
	if !ok {
		e.logger().Debug("No such info key.", "key", key)
		return cty.NilVal, false
	}
	return v, true
}

// Infos returns a copy of the whole metadata bag.
func (e *Entity) Infos() meta.Infos {
	return e.infos.Clone()
}

// SetInfos replaces the metadata bag with a copy of infos.
func (e *Entity) SetInfos(infos meta.Infos) {
	e.infos = infos.Clone()
}

// AddInfo stores value under key, replacing any previous value.
func (e *Entity) AddInfo(key string, value cty.Value) {
	if e.infos == nil {
		e.infos = make(meta.Infos)
	}
	e.infos[key] = value
}

// AddNativeInfo converts a plain Go value and stores it under key.
func (e *Entity) AddNativeInfo(key string, value any) error {
	v, err := meta.FromNative(value)
	if err != nil {
		return err
	}
	e.AddInfo(key, v)
	return nil
}

// DelInfo removes key from the metadata bag. Removing an absent key is a
// logged no-op.
func (e *Entity) DelInfo(key string) {
	if _, ok := e.infos[key]; !ok {
		e.logger().Warn("No such info key found, nothing deleted.", "key", key)
		return
	}
	delete(e.infos, key)
}

// String renders the entity as "<Kind> <id>".
func (e *Entity) String() string {
	return e.kind + " " + e.id
}

func (e *Entity) equal(o *Entity) bool {
	return e.kind == o.kind && e.id == o.id && e.infos.Equal(o.infos)
}

func (e *Entity) nativeInfos() map[string]any {
	if len(e.infos) == 0 {
		return nil
	}
	out, err := e.infos.ToNative()
	if err != nil {
		e.logger().Warn("Metadata cannot be exported, infos omitted.", "error", err)
		return nil
	}
	return out
}
