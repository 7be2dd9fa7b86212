package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/rxnparse"
)

// DefaultNetReactionID is the identifier given to net reactions.
const DefaultNetReactionID = "net_rxn"

// Show loads the definitions and reports the selected pathways.
func (a *App) Show(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Show method started.")

	res, err := a.Load(ctx)
	if err != nil {
		return err
	}
	pathways, err := a.selectPathways(res)
	if err != nil {
		return err
	}

	texts := make([]string, len(pathways))
	dicts := make([]model.PathwayDict, len(pathways))
	for i, p := range pathways {
		texts[i] = p.String()
		dicts[i] = p.ToDict()
	}

	if len(dicts) == 1 {
		return a.render(texts[0], dicts[0])
	}
	return a.render(strings.Join(texts, "\n\n"), dicts)
}

// Net loads the definitions and reports the net reaction of the selected
// pathway, registered under id. An empty id means DefaultNetReactionID.
func (a *App) Net(ctx context.Context, id string) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Net method started.", "id", id)

	res, err := a.Load(ctx)
	if err != nil {
		return err
	}
	pathways, err := a.selectPathways(res)
	if err != nil {
		return err
	}
	if len(pathways) > 1 {
		return fmt.Errorf("%d pathways defined, select one of %v", len(pathways), res.PathwayIDs())
	}

	if id == "" {
		id = DefaultNetReactionID
	}
	net, err := pathways[0].BuildNetReaction(id)
	if err != nil {
		return fmt.Errorf("building net reaction of pathway '%s': %w", pathways[0].ID(), err)
	}
	logger.Info("Net reaction built.", "pathway", pathways[0].ID(), "species", net.NbSpecies())

	return a.render(net.String(), net.ToDict())
}

// ParseRequest describes one equation handed to Parse.
type ParseRequest struct {
	Equation  string
	ID        string
	ECNumbers []string
	Format    rxnparse.Format
}

// Parse turns an equation into a registered Reaction and reports it. When
// definition paths are configured they are loaded first, so the equation
// resolves against the defined compounds.
func (a *App) Parse(ctx context.Context, req ParseRequest) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Parse method started.", "equation", req.Equation)

	if len(a.cfg.Paths) > 0 {
		if _, err := a.Load(ctx); err != nil {
			return err
		}
	}

	rxn, err := rxnparse.Parse(a.registry, req.Equation, rxnparse.Options{
		ID:        req.ID,
		ECNumbers: req.ECNumbers,
		Format:    req.Format,
	})
	if err != nil {
		return err
	}
	logger.Debug("Equation parsed.", "reaction", rxn.ID())

	text := rxn.String()
	if rxnparse.DetectFormat(req.Equation, req.Format) == rxnparse.FormatSMILES {
		text += "\n" + rxn.SMILES()
	}
	return a.render(text, rxn.ToDict())
}
