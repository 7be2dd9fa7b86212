package model

import (
	"math"
	"slices"
	"strings"

	"github.com/specialistvlad/chemlite/internal/meta"
	"github.com/specialistvlad/chemlite/internal/registry"
	"github.com/specialistvlad/chemlite/internal/stoichio"
)

// KindReaction is the Kind of a Reaction.
const KindReaction = "Reaction"

// ReactionParams holds the optional parts of a new Reaction. ECNumber is
// appended after ECNumbers. Coefficient signs in Reactants and Products are
// ignored, only magnitudes are kept.
type ReactionParams struct {
	ECNumber  string
	ECNumbers []string
	Reactants stoichio.Map
	Products  stoichio.Map
	Infos     meta.Infos
}

// Reaction holds a signed stoichiometry over compound identifiers:
// negative coefficients are reactants, positive ones products. A species
// sits on one side at most and zero coefficients are never stored.
type Reaction struct {
	Entity
	ecNumbers []string
	stoichio  stoichio.Map
}

// NewReaction creates a Reaction and registers it under id. Every species
// not yet known to the registry is registered as a bare Compound.
func NewReaction(reg *registry.Registry, id string, p ReactionParams) (*Reaction, error) {
	base, err := newEntity(reg, KindReaction, id, p.Infos)
	if err != nil {
		return nil, err
	}
	r := &Reaction{Entity: base, stoichio: make(stoichio.Map)}
	r.SetECNumbers(p.ECNumbers)
	r.AddECNumber(p.ECNumber)
	r.SetReactants(p.Reactants)
	r.SetProducts(p.Products)
	reg.Put(r)
	return r, nil
}

// LookupReaction returns the Reaction registered under id, if any.
func LookupReaction(reg *registry.Registry, id string) (*Reaction, bool) {
	e, ok := reg.Get(id)
	if !ok {
		return nil, false
	}
	r, ok := e.(*Reaction)
	return r, ok
}

// ECNumbers returns a copy of the EC numbers in insertion order.
func (r *Reaction) ECNumbers() []string {
	return slices.Clone(r.ecNumbers)
}

// SetECNumbers replaces the EC numbers. Empty entries are dropped.
func (r *Reaction) SetECNumbers(numbers []string) {
	r.ecNumbers = nil
	for _, n := range numbers {
		r.AddECNumber(n)
	}
}

// AddECNumber appends number unless it is empty. Duplicates are kept.
func (r *Reaction) AddECNumber(number string) {
	if number == "" {
		return
	}
	r.ecNumbers = append(r.ecNumbers, number)
}

// Reactants returns the consumed species with positive coefficients.
func (r *Reaction) Reactants() stoichio.Map { return r.stoichio.Reactants() }

// Products returns the produced species.
func (r *Reaction) Products() stoichio.Map { return r.stoichio.Products() }

// Left is an alias of Reactants.
func (r *Reaction) Left() stoichio.Map { return r.Reactants() }

// Right is an alias of Products.
func (r *Reaction) Right() stoichio.Map { return r.Products() }

// Species returns the canonical signed view of the reaction.
func (r *Reaction) Species() stoichio.Map { return r.stoichio.Clone() }

// Reactant returns the coefficient of id as a reactant, or 0.
func (r *Reaction) Reactant(id string) float64 {
	if c := r.stoichio[id]; c < 0 {
		return -c
	}
	return 0
}

// Product returns the coefficient of id as a product, or 0.
func (r *Reaction) Product(id string) float64 {
	if c := r.stoichio[id]; c > 0 {
		return c
	}
	return 0
}

// HasSpecies reports whether id appears on either side.
func (r *Reaction) HasSpecies(id string) bool {
	_, ok := r.stoichio[id]
	return ok
}

func (r *Reaction) ReactantsIDs() []string { return r.Reactants().Keys() }
func (r *Reaction) ProductsIDs() []string  { return r.Products().Keys() }

// SpeciesIDs returns the identifiers on both sides, sorted.
func (r *Reaction) SpeciesIDs() []string { return r.stoichio.Keys() }

func (r *Reaction) NbReactants() int { return len(r.ReactantsIDs()) }
func (r *Reaction) NbProducts() int  { return len(r.ProductsIDs()) }
func (r *Reaction) NbSpecies() int   { return len(r.stoichio) }

// ReactantCompounds resolves the reactants through the registry.
// Identifiers without a registered Compound are skipped.
func (r *Reaction) ReactantCompounds() []*Compound { return r.resolve(r.ReactantsIDs()) }

// ProductCompounds resolves the products through the registry.
func (r *Reaction) ProductCompounds() []*Compound { return r.resolve(r.ProductsIDs()) }

// SpeciesCompounds resolves every species through the registry.
func (r *Reaction) SpeciesCompounds() []*Compound { return r.resolve(r.SpeciesIDs()) }

func (r *Reaction) resolve(ids []string) []*Compound {
	out := make([]*Compound, 0, len(ids))
	for _, id := range ids {
		c, ok := LookupCompound(r.reg, id)
		if !ok {
			r.logger().Debug("Species is not a registered compound.", "species", id)
			continue
		}
		out = append(out, c)
	}
	return out
}

const (
	reactantSide = -1.0
	productSide  = 1.0
)

// SetReactant stores abs(coeff) for id as a reactant, replacing any value on
// either side. A zero coefficient removes id.
func (r *Reaction) SetReactant(id string, coeff float64) { r.store(id, coeff, reactantSide, false) }

// SetProduct stores abs(coeff) for id as a product.
func (r *Reaction) SetProduct(id string, coeff float64) { r.store(id, coeff, productSide, false) }

// AddReactant adds abs(coeff) to the reactant coefficient of id. If id is
// not a reactant yet, it behaves like SetReactant.
func (r *Reaction) AddReactant(id string, coeff float64) { r.store(id, coeff, reactantSide, true) }

// AddProduct adds abs(coeff) to the product coefficient of id.
func (r *Reaction) AddProduct(id string, coeff float64) { r.store(id, coeff, productSide, true) }

// SetReactants replaces every reactant with the given species.
func (r *Reaction) SetReactants(species stoichio.Map) { r.replaceSide(species, reactantSide) }

// SetProducts replaces every product with the given species.
func (r *Reaction) SetProducts(species stoichio.Map) { r.replaceSide(species, productSide) }

func (r *Reaction) replaceSide(species stoichio.Map, sign float64) {
	for id, c := range r.stoichio {
		if c*sign > 0 {
			delete(r.stoichio, id)
		}
	}
	for _, id := range species.Keys() {
		r.store(id, species[id], sign, true)
	}
}

func (r *Reaction) store(id string, coeff, sign float64, accumulate bool) {
	if id == "" {
		r.logger().Error("A compound identifier has to be provided.")
		return
	}
	mag := math.Abs(coeff)
	if accumulate && mag == 0 {
		return
	}
	cur, ok := r.stoichio[id]
	switch {
	case ok && cur*sign > 0 && accumulate:
		mag += math.Abs(cur)
	case ok && cur*sign < 0:
		r.logger().Debug("Species changes side.", "species", id, "from", cur, "to", sign*mag)
	}
	if mag == 0 {
		delete(r.stoichio, id)
		return
	}
	r.stoichio[id] = sign * mag
	ensureCompound(r.reg, id)
}

// RenameCompound rewrites the species key oldID to newID, keeping its
// coefficient and side. The registry is not touched. Blank identifiers
// and unknown species are ignored.
func (r *Reaction) RenameCompound(oldID, newID string) {
	if newID == "" || oldID == newID {
		return
	}
	c, ok := r.stoichio[oldID]
	if !ok {
		return
	}
	if prev, clash := r.stoichio[newID]; clash {
		r.logger().Warn("Renamed species overwrites an existing one.", "species", oldID, "new_id", newID, "overwritten", prev)
	}
	delete(r.stoichio, oldID)
	r.stoichio[newID] = c
}

// MultStoichioCoeff multiplies every coefficient by factor. A negative
// factor swaps the sides. A zero factor is rejected with ErrZeroFactor and
// the reaction is left unchanged.
func (r *Reaction) MultStoichioCoeff(factor float64) error {
	if factor == 0 {
		return ErrZeroFactor
	}
	r.stoichio = r.stoichio.Scale(factor)
	return nil
}

// SMILES builds the reaction SMILES "LEFT>>RIGHT". Each species contributes
// its compound SMILES repeated coefficient times; fractional coefficients
// are rounded to the nearest positive integer. Species without a SMILES
// contribute nothing.
func (r *Reaction) SMILES() string {
	return r.sideSMILES(r.Reactants()) + ">>" + r.sideSMILES(r.Products())
}

func (r *Reaction) sideSMILES(side stoichio.Map) string {
	var mols []string
	for _, t := range side.Terms() {
		c, ok := LookupCompound(r.reg, t.ID)
		if !ok || c.SMILES() == "" {
			r.logger().Warn("Species has no SMILES, omitted from reaction SMILES.", "species", t.ID)
			continue
		}
		n := math.Round(t.Coeff)
		if n < 1 {
			n = 1
		}
		if n != t.Coeff {
			r.logger().Warn("Coefficient rounded for reaction SMILES.", "species", t.ID, "coeff", t.Coeff, "rounded", n)
		}
		for i := 0; i < int(n); i++ {
			mols = append(mols, c.SMILES())
		}
	}
	return strings.Join(mols, ".")
}

// String renders "Reaction <id>: <coeff> <id> + ... = <coeff> <id> + ...".
// It falls back to the Entity form when either side is empty.
func (r *Reaction) String() string {
	if r.NbReactants() == 0 || r.NbProducts() == 0 {
		return r.Entity.String()
	}
	return r.Entity.String() + ": " + joinTerms(r.Reactants()) + " = " + joinTerms(r.Products())
}

func joinTerms(m stoichio.Map) string {
	terms := m.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// Equal reports whether other is a Reaction with the same identifier,
// metadata, EC numbers and stoichiometry.
func (r *Reaction) Equal(other registry.Entity) bool {
	o, ok := other.(*Reaction)
	if !ok || o == nil {
		return false
	}
	return r.Entity.equal(&o.Entity) &&
		slices.Equal(r.ecNumbers, o.ecNumbers) &&
		r.stoichio.Equal(o.stoichio)
}

// SumStoichio sums the signed stoichiometry of the given reactions.
// Species whose total is exactly zero are dropped. Nil reactions are
// skipped.
func SumStoichio(reactions ...*Reaction) stoichio.Map {
	maps := make([]stoichio.Map, 0, len(reactions))
	for _, r := range reactions {
		if r != nil {
			maps = append(maps, r.stoichio)
		}
	}
	return stoichio.Sum(maps...)
}
