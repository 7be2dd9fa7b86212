package model

import (
	"slices"
	"sort"
	"strings"

	"github.com/specialistvlad/chemlite/internal/meta"
	"github.com/specialistvlad/chemlite/internal/registry"
	"github.com/specialistvlad/chemlite/internal/stoichio"
)

// KindPathway is the Kind of a Pathway.
const KindPathway = "Pathway"

const pathwayBanner = "----------------"

// Pathway is an ordered collection of reactions, each stored under a
// pathway-local key that may differ from the reaction's own identifier.
// Species are not owned: they are resolved through the registry.
type Pathway struct {
	Entity
	order     []string
	reactions map[string]*Reaction
}

// NewPathway creates an empty Pathway and registers it under id.
func NewPathway(reg *registry.Registry, id string, infos meta.Infos) (*Pathway, error) {
	base, err := newEntity(reg, KindPathway, id, infos)
	if err != nil {
		return nil, err
	}
	p := &Pathway{Entity: base, reactions: make(map[string]*Reaction)}
	reg.Put(p)
	return p, nil
}

// AddReaction stores rxn under its own identifier.
func (p *Pathway) AddReaction(rxn *Reaction) {
	if rxn == nil {
		p.logger().Warn("Refusing to add a nil reaction.")
		return
	}
	p.AddReactionAs(rxn.ID(), rxn)
}

// AddReactionAs stores rxn under alias. Re-adding an existing key replaces
// the reaction and keeps its position.
func (p *Pathway) AddReactionAs(alias string, rxn *Reaction) {
	if rxn == nil || alias == "" {
		p.logger().Warn("Refusing to add a reaction without key.", "alias", alias)
		return
	}
	if _, ok := p.reactions[alias]; !ok {
		p.order = append(p.order, alias)
	}
	p.reactions[alias] = rxn
}

// Reaction returns the reaction stored under id.
func (p *Pathway) Reaction(id string) (*Reaction, bool) {
	rxn, ok := p.reactions[id]
	if !ok {
		p.logger().Debug("No such reaction in the pathway.", "reaction", id)
	}
	return rxn, ok
}

// Reactions returns a copy of the key to reaction mapping.
func (p *Pathway) Reactions() map[string]*Reaction {
	out := make(map[string]*Reaction, len(p.reactions))
	for k, v := range p.reactions {
		out[k] = v
	}
	return out
}

// ReactionsIDs returns the reaction keys in insertion order.
func (p *Pathway) ReactionsIDs() []string { return slices.Clone(p.order) }

// ListOfReactions returns the reactions in insertion order.
func (p *Pathway) ListOfReactions() []*Reaction {
	out := make([]*Reaction, len(p.order))
	for i, id := range p.order {
		out[i] = p.reactions[id]
	}
	return out
}

func (p *Pathway) NbReactions() int { return len(p.order) }

// ReplaceReaction overwrites the reaction stored under id in place. It
// returns false, and logs a warning, when id is not a key of the pathway.
func (p *Pathway) ReplaceReaction(id string, rxn *Reaction) bool {
	if _, ok := p.reactions[id]; !ok {
		p.logger().Warn("There is no such reaction in the pathway, nothing replaced.", "reaction", id)
		return false
	}
	if rxn == nil {
		p.logger().Warn("Refusing to replace with a nil reaction.", "reaction", id)
		return false
	}
	p.reactions[id] = rxn
	return true
}

// DelReaction removes the reaction stored under id. The registry is not
// touched. It returns false, and logs an error, when id is absent.
func (p *Pathway) DelReaction(id string) bool {
	if _, ok := p.reactions[id]; !ok {
		p.logger().Error("There is no such reaction in the pathway, nothing deleted.", "reaction", id)
		return false
	}
	delete(p.reactions, id)
	p.order = slices.DeleteFunc(p.order, func(k string) bool { return k == id })
	return true
}

// SpeciesIDs returns the deduplicated species of every reaction, sorted.
func (p *Pathway) SpeciesIDs() []string {
	return p.collectIDs(func(r *Reaction) []string { return r.SpeciesIDs() })
}

// ReactantsIDs returns every identifier that is a reactant of at least one
// reaction, sorted. This is a per-reaction view: a species may also appear
// in ProductsIDs.
func (p *Pathway) ReactantsIDs() []string {
	return p.collectIDs(func(r *Reaction) []string { return r.ReactantsIDs() })
}

// ProductsIDs returns every identifier that is a product of at least one
// reaction, sorted.
func (p *Pathway) ProductsIDs() []string {
	return p.collectIDs(func(r *Reaction) []string { return r.ProductsIDs() })
}

func (p *Pathway) collectIDs(ids func(*Reaction) []string) []string {
	seen := make(map[string]struct{})
	for _, rxn := range p.reactions {
		for _, id := range ids(rxn) {
			seen[id] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (p *Pathway) NbSpecies() int { return len(p.SpeciesIDs()) }

// CompoundsIDs is an alias of SpeciesIDs.
func (p *Pathway) CompoundsIDs() []string { return p.SpeciesIDs() }

// Specie resolves id through the registry. A miss is logged at debug level.
func (p *Pathway) Specie(id string) (*Compound, bool) {
	c, ok := LookupCompound(p.reg, id)
	if !ok {
		p.logger().Debug("No such species in the registry.", "species", id)
	}
	return c, ok
}

// Compound is an alias of Specie.
func (p *Pathway) Compound(id string) (*Compound, bool) { return p.Specie(id) }

// Species resolves every species of the pathway, in identifier order.
// Unregistered identifiers are skipped.
func (p *Pathway) Species() []*Compound {
	ids := p.SpeciesIDs()
	out := make([]*Compound, 0, len(ids))
	for _, id := range ids {
		if c, ok := p.Specie(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// Compounds is an alias of Species.
func (p *Pathway) Compounds() []*Compound { return p.Species() }

// RenameCompound renames the species oldID to newID across the pathway.
// The registered Compound gets the new identifier and is stored under the
// new key before any reaction is rewritten, so resolving either side of
// the rename never misses. An empty newID is rejected with an *IDError.
func (p *Pathway) RenameCompound(oldID, newID string) error {
	if err := validateID(KindCompound, newID); err != nil {
		return err
	}
	if oldID == newID {
		return nil
	}
	var touched []*Reaction
	for _, key := range p.order {
		if rxn := p.reactions[key]; rxn.HasSpecies(oldID) {
			touched = append(touched, rxn)
		}
	}
	if len(touched) == 0 {
		p.logger().Debug("Species not found in any reaction, nothing renamed.", "species", oldID)
		return nil
	}
	if c, ok := LookupCompound(p.reg, oldID); ok {
		if err := c.SetID(newID); err != nil {
			return err
		}
		p.reg.Put(c)
	}
	for _, rxn := range touched {
		rxn.RenameCompound(oldID, newID)
	}
	return nil
}

// NetReaction returns the cancellation-aware stoichiometric sum of every
// reaction in the pathway.
func (p *Pathway) NetReaction() stoichio.Map {
	return SumStoichio(p.ListOfReactions()...)
}

// PseudoReaction is an alias of NetReaction.
func (p *Pathway) PseudoReaction() stoichio.Map { return p.NetReaction() }

// BuildNetReaction registers a Reaction under id holding the net
// stoichiometry of the pathway.
func (p *Pathway) BuildNetReaction(id string) (*Reaction, error) {
	net := p.NetReaction()
	return NewReaction(p.reg, id, ReactionParams{
		Reactants: net.Reactants(),
		Products:  net.Products(),
	})
}

// String renders a banner with the pathway identifier followed by one line
// per reaction, in insertion order.
func (p *Pathway) String() string {
	var b strings.Builder
	b.WriteString(pathwayBanner + "\n")
	b.WriteString(p.Entity.String() + "\n")
	b.WriteString(pathwayBanner + "\n")
	lines := make([]string, 0, len(p.order))
	for _, rxn := range p.ListOfReactions() {
		lines = append(lines, rxn.String())
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// Equal reports whether other is a Pathway with the same identifier,
// metadata and equal reactions under the same keys in the same order.
func (p *Pathway) Equal(other registry.Entity) bool {
	o, ok := other.(*Pathway)
	if !ok || o == nil {
		return false
	}
	if !p.Entity.equal(&o.Entity) || !slices.Equal(p.order, o.order) {
		return false
	}
	for _, key := range p.order {
		if !p.reactions[key].Equal(o.reactions[key]) {
			return false
		}
	}
	return true
}
