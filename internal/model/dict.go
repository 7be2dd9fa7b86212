package model

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/specialistvlad/chemlite/internal/meta"
	"github.com/specialistvlad/chemlite/internal/registry"
	"github.com/specialistvlad/chemlite/internal/stoichio"
	"gopkg.in/yaml.v3"
)

// CompoundDict is the interchange form of a Compound.
type CompoundDict struct {
	ID       string         `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	SMILES   string         `json:"smiles" yaml:"smiles"`
	InChI    string         `json:"inchi" yaml:"inchi"`
	InChIKey string         `json:"inchikey" yaml:"inchikey"`
	Formula  string         `json:"formula" yaml:"formula"`
	Infos    map[string]any `json:"infos,omitempty" yaml:"infos,omitempty"`
}

// ReactionDict is the interchange form of a Reaction. Reactants and
// Products hold positive coefficients.
type ReactionDict struct {
	ID        string             `json:"id" yaml:"id"`
	ECNumbers []string           `json:"ec_numbers" yaml:"ec_numbers"`
	Reactants map[string]float64 `json:"reactants" yaml:"reactants"`
	Products  map[string]float64 `json:"products" yaml:"products"`
	Infos     map[string]any     `json:"infos,omitempty" yaml:"infos,omitempty"`
}

// PathwayDict is the interchange form of a Pathway. Species is computed
// from the reactions at export time.
type PathwayDict struct {
	ID        string                  `json:"id" yaml:"id"`
	Reactions map[string]ReactionDict `json:"reactions" yaml:"reactions"`
	Species   map[string]CompoundDict `json:"species" yaml:"species"`
	Infos     map[string]any          `json:"infos,omitempty" yaml:"infos,omitempty"`
}

// ToDict exports the compound.
func (c *Compound) ToDict() CompoundDict {
	return CompoundDict{
		ID:       c.id,
		Name:     c.name,
		SMILES:   c.smiles,
		InChI:    c.inchi,
		InChIKey: c.inchikey,
		Formula:  c.formula,
		Infos:    c.nativeInfos(),
	}
}

// ToDict exports the reaction.
func (r *Reaction) ToDict() ReactionDict {
	ec := r.ECNumbers()
	if ec == nil {
		ec = []string{}
	}
	return ReactionDict{
		ID:        r.id,
		ECNumbers: ec,
		Reactants: r.Reactants(),
		Products:  r.Products(),
		Infos:     r.nativeInfos(),
	}
}

// ToDict exports the pathway. Reactions are keyed by their pathway key.
// Species without a registered Compound are exported as bare entries.
func (p *Pathway) ToDict() PathwayDict {
	d := PathwayDict{
		ID:        p.id,
		Reactions: make(map[string]ReactionDict, len(p.order)),
		Species:   make(map[string]CompoundDict),
		Infos:     p.nativeInfos(),
	}
	for _, key := range p.order {
		d.Reactions[key] = p.reactions[key].ToDict()
	}
	for _, id := range p.SpeciesIDs() {
		if c, ok := p.Specie(id); ok {
			d.Species[id] = c.ToDict()
		} else {
			d.Species[id] = CompoundDict{ID: id}
		}
	}
	return d
}

// CompoundFromDict creates and registers the Compound described by d.
func CompoundFromDict(reg *registry.Registry, d CompoundDict) (*Compound, error) {
	infos, err := meta.InfosFromNative(d.Infos)
	if err != nil {
		return nil, fmt.Errorf("compound %q: %w", d.ID, err)
	}
	return NewCompound(reg, d.ID, CompoundParams{
		Name:     d.Name,
		SMILES:   d.SMILES,
		InChI:    d.InChI,
		InChIKey: d.InChIKey,
		Formula:  d.Formula,
		Infos:    infos,
	})
}

// ReactionFromDict creates and registers the Reaction described by d.
func ReactionFromDict(reg *registry.Registry, d ReactionDict) (*Reaction, error) {
	infos, err := meta.InfosFromNative(d.Infos)
	if err != nil {
		return nil, fmt.Errorf("reaction %q: %w", d.ID, err)
	}
	return NewReaction(reg, d.ID, ReactionParams{
		ECNumbers: d.ECNumbers,
		Reactants: stoichio.Map(d.Reactants),
		Products:  stoichio.Map(d.Products),
		Infos:     infos,
	})
}

// PathwayFromDict creates and registers the Pathway described by d, with
// its species and reactions. Dict reactions carry no order, so they are
// added in key order.
func PathwayFromDict(reg *registry.Registry, d PathwayDict) (*Pathway, error) {
	for _, id := range sortedKeys(d.Species) {
		cd := d.Species[id]
		if cd.ID == "" {
			cd.ID = id
		}
		if _, err := CompoundFromDict(reg, cd); err != nil {
			return nil, err
		}
	}
	infos, err := meta.InfosFromNative(d.Infos)
	if err != nil {
		return nil, fmt.Errorf("pathway %q: %w", d.ID, err)
	}
	p, err := NewPathway(reg, d.ID, infos)
	if err != nil {
		return nil, err
	}
	for _, key := range sortedKeys(d.Reactions) {
		rd := d.Reactions[key]
		if rd.ID == "" {
			rd.ID = key
		}
		rxn, err := ReactionFromDict(reg, rd)
		if err != nil {
			return nil, err
		}
		p.AddReactionAs(key, rxn)
	}
	return p, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DecodeCompoundDict decodes a generic map, as produced by a JSON or YAML
// decoder, into a CompoundDict.
func DecodeCompoundDict(raw map[string]any) (CompoundDict, error) {
	var d CompoundDict
	return d, decodeDict(raw, &d)
}

// DecodeReactionDict decodes a generic map into a ReactionDict.
func DecodeReactionDict(raw map[string]any) (ReactionDict, error) {
	var d ReactionDict
	return d, decodeDict(raw, &d)
}

// DecodePathwayDict decodes a generic map into a PathwayDict.
func DecodePathwayDict(raw map[string]any) (PathwayDict, error) {
	var d PathwayDict
	return d, decodeDict(raw, &d)
}

func decodeDict(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decoding dict: %w", err)
	}
	return nil
}

// MarshalYAML renders a dict form as YAML.
func MarshalYAML(dict any) ([]byte, error) {
	return yaml.Marshal(dict)
}

// UnmarshalPathwayYAML parses a YAML document holding a pathway dict.
func UnmarshalPathwayYAML(data []byte) (PathwayDict, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return PathwayDict{}, fmt.Errorf("parsing pathway YAML: %w", err)
	}
	return DecodePathwayDict(raw)
}
