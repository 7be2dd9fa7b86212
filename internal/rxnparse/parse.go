package rxnparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/registry"
	"github.com/specialistvlad/chemlite/internal/stoichio"
)

// Format selects the equation syntax.
type Format int

const (
	// FormatAuto picks FormatSMILES when the input contains ">>" and
	// FormatIDs otherwise.
	FormatAuto Format = iota
	FormatSMILES
	FormatIDs
)

func (f Format) String() string {
	switch f {
	case FormatSMILES:
		return "smiles"
	case FormatIDs:
		return "ids"
	default:
		return "auto"
	}
}

// ParseFormat maps "auto", "smiles" or "ids" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "smiles":
		return FormatSMILES, nil
	case "ids", "id":
		return FormatIDs, nil
	default:
		return FormatAuto, fmt.Errorf("unknown equation format %q (expected auto, smiles or ids)", s)
	}
}

const (
	smilesArrow = ">>"
	idsArrow    = "="
)

// ParseError reports an equation that cannot be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rxnparse: cannot parse %q: %s", e.Input, e.Reason)
}

// Equation is a parsed equation before it is bound to a registry. In the
// SMILES form the keys are SMILES strings, in the identifier form they are
// compound identifiers. Coefficients are positive.
type Equation struct {
	Format    Format
	Reactants stoichio.Map
	Products  stoichio.Map
}

// Shared returns the keys present on both sides, sorted.
func (eq Equation) Shared() []string {
	var out []string
	for _, id := range eq.Reactants.Keys() {
		if _, ok := eq.Products[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// DetectFormat resolves FormatAuto for s. Other formats are returned as is.
func DetectFormat(s string, format Format) Format {
	if format != FormatAuto {
		return format
	}
	if strings.Contains(s, smilesArrow) {
		return FormatSMILES
	}
	return FormatIDs
}

// ParseEquation parses s without touching any registry.
func ParseEquation(s string, format Format) (Equation, error) {
	if strings.TrimSpace(s) == "" {
		return Equation{}, &ParseError{Input: s, Reason: "empty equation"}
	}
	format = DetectFormat(s, format)

	arrow, parseSide := idsArrow, parseIDSide
	if format == FormatSMILES {
		arrow, parseSide = smilesArrow, parseSMILESSide
	}
	sides := strings.Split(s, arrow)
	if len(sides) != 2 {
		return Equation{}, &ParseError{Input: s, Reason: fmt.Sprintf("expected exactly one %q", arrow)}
	}

	left, err := parseSide(sides[0])
	if err != nil {
		return Equation{}, &ParseError{Input: s, Reason: "left side: " + err.Error()}
	}
	right, err := parseSide(sides[1])
	if err != nil {
		return Equation{}, &ParseError{Input: s, Reason: "right side: " + err.Error()}
	}
	return Equation{Format: format, Reactants: left, Products: right}, nil
}

func parseSMILESSide(side string) (stoichio.Map, error) {
	out := make(stoichio.Map)
	side = strings.TrimSpace(side)
	if side == "" {
		return out, nil
	}
	for i, mol := range strings.Split(side, ".") {
		mol = strings.TrimSpace(mol)
		if mol == "" {
			return nil, fmt.Errorf("empty molecule at position %d", i+1)
		}
		out[mol]++
	}
	return out, nil
}

func parseIDSide(side string) (stoichio.Map, error) {
	out := make(stoichio.Map)
	if strings.TrimSpace(side) == "" {
		return out, nil
	}
	for i, term := range strings.Split(side, "+") {
		fields := strings.Fields(term)
		switch len(fields) {
		case 0:
			return nil, fmt.Errorf("empty term at position %d", i+1)
		case 1:
			out[fields[0]]++
		case 2:
			c, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coefficient %q in term %q", fields[0], strings.TrimSpace(term))
			}
			if c <= 0 || math.IsInf(c, 0) || math.IsNaN(c) {
				return nil, fmt.Errorf("coefficient must be a positive number in term %q", strings.TrimSpace(term))
			}
			out[fields[1]] += c
		default:
			return nil, fmt.Errorf("malformed term %q", strings.TrimSpace(term))
		}
	}
	return out, nil
}

// Options tunes Parse.
type Options struct {
	// ID of the reaction. A fresh one is generated when empty.
	ID        string
	ECNumbers []string
	Format    Format
}

// Parse parses s and registers the resulting Reaction in reg.
//
// In the SMILES form every molecule is resolved to the registered Compound
// with the same SMILES; unknown molecules are registered as new compounds
// whose identifier is their SMILES. A species present on both sides is
// kept as a product.
func Parse(reg *registry.Registry, s string, opts Options) (*model.Reaction, error) {
	eq, err := ParseEquation(s, opts.Format)
	if err != nil {
		return nil, err
	}
	if eq.Format == FormatSMILES {
		eq = bindSMILES(reg, eq)
	}
	for _, id := range eq.Shared() {
		reg.Logger().Warn("Species appears on both sides, kept as product.", "species", id, "equation", s)
	}

	id := opts.ID
	if id == "" {
		id = model.NewID("rxn")
	}
	return model.NewReaction(reg, id, model.ReactionParams{
		ECNumbers: opts.ECNumbers,
		Reactants: eq.Reactants,
		Products:  eq.Products,
	})
}

func bindSMILES(reg *registry.Registry, eq Equation) Equation {
	ids := make(map[string]string)
	resolve := func(smiles string) string {
		if id, ok := ids[smiles]; ok {
			return id
		}
		id := smiles
		if c, ok := model.FindCompoundBySMILES(reg, smiles); ok {
			id = c.ID()
		} else if !reg.Contains(smiles) {
			if _, err := model.NewCompound(reg, smiles, model.CompoundParams{SMILES: smiles}); err != nil {
				reg.Logger().Error("Cannot register parsed molecule.", "smiles", smiles, "error", err)
			}
		}
		ids[smiles] = id
		return id
	}
	bind := func(side stoichio.Map) stoichio.Map {
		out := make(stoichio.Map, len(side))
		for _, t := range side.Terms() {
			out[resolve(t.ID)] += t.Coeff
		}
		return out
	}
	return Equation{Format: eq.Format, Reactants: bind(eq.Reactants), Products: bind(eq.Products)}
}
