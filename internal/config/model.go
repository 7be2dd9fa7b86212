package config

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Model is the merged content of every loaded definition file. Definitions
// are keyed by identifier; a later definition replaces an earlier one.
type Model struct {
	Compounds map[string]*Compound
	Reactions map[string]*Reaction
	Pathways  map[string]*Pathway
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{
		Compounds: make(map[string]*Compound),
		Reactions: make(map[string]*Reaction),
		Pathways:  make(map[string]*Pathway),
	}
}

// Source locates a definition in its file.
type Source struct {
	File string
	Line int
}

// Compound is the format-agnostic representation of a `compound` block.
type Compound struct {
	ID       string
	Name     string
	SMILES   string
	InChI    string
	InChIKey string
	Formula  string
	Info     map[string]cty.Value
	Source   Source
}

// Reaction is the format-agnostic representation of a `reaction` block.
// Either Equation or Reactants/Products is set, never both.
type Reaction struct {
	ID        string
	ECNumbers []string
	Reactants map[string]float64
	Products  map[string]float64
	Equation  string
	Info      map[string]cty.Value
	Source    Source
}

// Pathway is the format-agnostic representation of a `pathway` block.
type Pathway struct {
	ID string
	// Reactions lists reaction identifiers in insertion order.
	Reactions []string
	Info      map[string]cty.Value
	Source    Source
}

// CompoundIDs returns the compound identifiers sorted alphabetically.
func (m *Model) CompoundIDs() []string { return sortedKeys(m.Compounds) }

// ReactionIDs returns the reaction identifiers sorted alphabetically.
func (m *Model) ReactionIDs() []string { return sortedKeys(m.Reactions) }

// PathwayIDs returns the pathway identifiers sorted alphabetically.
func (m *Model) PathwayIDs() []string { return sortedKeys(m.Pathways) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
