package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/chemlite/internal/config"
	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/specialistvlad/chemlite/internal/meta"
	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/registry"
	"github.com/specialistvlad/chemlite/internal/rxnparse"
	"github.com/specialistvlad/chemlite/internal/stoichio"
)

// DefaultBuilder registers entities into a single registry.
type DefaultBuilder struct {
	reg *registry.Registry
}

// New creates a builder registering into reg.
func New(reg *registry.Registry) Builder {
	return &DefaultBuilder{reg: reg}
}

// Build implements the Builder interface.
func (b *DefaultBuilder) Build(ctx context.Context, m *config.Model) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building entities.", "compounds", len(m.Compounds), "reactions", len(m.Reactions), "pathways", len(m.Pathways))

	res := &Result{Registry: b.reg}

	for _, id := range m.CompoundIDs() {
		c, err := b.buildCompound(m.Compounds[id])
		if err != nil {
			return nil, err
		}
		res.Compounds = append(res.Compounds, c)
	}

	reactions := make(map[string]*model.Reaction, len(m.Reactions))
	for _, id := range m.ReactionIDs() {
		rxn, err := b.buildReaction(m.Reactions[id])
		if err != nil {
			return nil, err
		}
		reactions[id] = rxn
		res.Reactions = append(res.Reactions, rxn)
	}

	for _, id := range m.PathwayIDs() {
		def := m.Pathways[id]
		p, err := model.NewPathway(b.reg, def.ID, meta.Infos(def.Info))
		if err != nil {
			return nil, fmt.Errorf("%s: building pathway '%s': %w", def.Source.File, def.ID, err)
		}
		for _, rxnID := range def.Reactions {
			rxn, ok := reactions[rxnID]
			if !ok {
				return nil, fmt.Errorf("%s: pathway '%s' references unknown reaction '%s'", def.Source.File, def.ID, rxnID)
			}
			p.AddReaction(rxn)
		}
		logger.Debug("Pathway built.", "pathway", p.ID(), "reactions", p.NbReactions(), "species", p.NbSpecies())
		res.Pathways = append(res.Pathways, p)
	}

	logger.Debug("Build complete.", "registered", b.reg.Len())
	return res, nil
}

func (b *DefaultBuilder) buildCompound(def *config.Compound) (*model.Compound, error) {
	c, err := model.NewCompound(b.reg, def.ID, model.CompoundParams{
		Name:     def.Name,
		SMILES:   def.SMILES,
		InChI:    def.InChI,
		InChIKey: def.InChIKey,
		Formula:  def.Formula,
		Infos:    meta.Infos(def.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: building compound '%s': %w", def.Source.File, def.ID, err)
	}
	return c, nil
}

func (b *DefaultBuilder) buildReaction(def *config.Reaction) (*model.Reaction, error) {
	var (
		rxn *model.Reaction
		err error
	)
	if def.Equation != "" {
		rxn, err = rxnparse.Parse(b.reg, def.Equation, rxnparse.Options{ID: def.ID, ECNumbers: def.ECNumbers})
		if err == nil {
			rxn.SetInfos(meta.Infos(def.Info))
		}
	} else {
		rxn, err = model.NewReaction(b.reg, def.ID, model.ReactionParams{
			ECNumbers: def.ECNumbers,
			Reactants: stoichio.Map(def.Reactants),
			Products:  stoichio.Map(def.Products),
			Infos:     meta.Infos(def.Info),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("%s: building reaction '%s': %w", def.Source.File, def.ID, err)
	}
	return rxn, nil
}
