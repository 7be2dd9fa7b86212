package model

import (
	"github.com/specialistvlad/chemlite/internal/meta"
	"github.com/specialistvlad/chemlite/internal/registry"
)

// KindCompound is the Kind of a Compound.
const KindCompound = "Compound"

// CompoundParams holds the optional descriptors of a new Compound. The
// chemical strings are opaque and never validated.
type CompoundParams struct {
	Name     string
	SMILES   string
	InChI    string
	InChIKey string
	Formula  string
	Infos    meta.Infos
}

// Compound is a chemical species.
type Compound struct {
	Entity
	name     string
	smiles   string
	inchi    string
	inchikey string
	formula  string
}

// NewCompound creates a Compound and registers it under id.
func NewCompound(reg *registry.Registry, id string, p CompoundParams) (*Compound, error) {
	base, err := newEntity(reg, KindCompound, id, p.Infos)
	if err != nil {
		return nil, err
	}
	c := &Compound{
		Entity:   base,
		name:     p.Name,
		smiles:   p.SMILES,
		inchi:    p.InChI,
		inchikey: p.InChIKey,
		formula:  p.Formula,
	}
	reg.Put(c)
	return c, nil
}

func (c *Compound) Name() string     { return c.name }
func (c *Compound) SMILES() string   { return c.smiles }
func (c *Compound) InChI() string    { return c.inchi }
func (c *Compound) InChIKey() string { return c.inchikey }
func (c *Compound) Formula() string  { return c.formula }

func (c *Compound) SetName(v string)     { c.name = v }
func (c *Compound) SetSMILES(v string)   { c.smiles = v }
func (c *Compound) SetInChI(v string)    { c.inchi = v }
func (c *Compound) SetInChIKey(v string) { c.inchikey = v }
func (c *Compound) SetFormula(v string)  { c.formula = v }

// Equal reports whether other is a Compound with the same identifier,
// metadata and descriptors.
func (c *Compound) Equal(other registry.Entity) bool {
	o, ok := other.(*Compound)
	if !ok || o == nil {
		return false
	}
	return c.Entity.equal(&o.Entity) &&
		c.name == o.name &&
		c.smiles == o.smiles &&
		c.inchi == o.inchi &&
		c.inchikey == o.inchikey &&
		c.formula == o.formula
}

// LookupCompound returns the Compound registered under id, if any.
func LookupCompound(reg *registry.Registry, id string) (*Compound, bool) {
	e, ok := reg.Get(id)
	if !ok {
		return nil, false
	}
	c, ok := e.(*Compound)
	return c, ok
}

// FindCompoundBySMILES returns the first registered Compound, in identifier
// order, whose SMILES is smiles.
func FindCompoundBySMILES(reg *registry.Registry, smiles string) (*Compound, bool) {
	if smiles == "" {
		return nil, false
	}
	e, ok := reg.Find(func(e registry.Entity) bool {
		c, ok := e.(*Compound)
		return ok && c.smiles == smiles
	})
	if !ok {
		return nil, false
	}
	return e.(*Compound), true
}

// ensureCompound registers a bare Compound under id unless some entity is
// already registered there.
func ensureCompound(reg *registry.Registry, id string) {
	if reg.Contains(id) {
		return
	}
	if _, err := NewCompound(reg, id, CompoundParams{}); err != nil {
		reg.Logger().Error("Cannot auto-register compound.", "id", id, "error", err)
		return
	}
	reg.Logger().Debug("Auto-registered bare compound.", "id", id)
}
