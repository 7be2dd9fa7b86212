package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/chemlite/internal/builder"
	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/specialistvlad/chemlite/internal/model"
)

// Load reads the configured definition paths and builds their entities
// into the App registry.
func (a *App) Load(ctx context.Context) (*builder.Result, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	if err := a.cfg.RequirePaths(); err != nil {
		return nil, err
	}
	logger.Debug("Loading definitions...", "paths", a.cfg.Paths)

	cfgModel, err := a.loader.Load(ctx, a.cfg.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	logger.Debug("Definitions loaded and translated into unified model.")

	res, err := builder.New(a.registry).Build(ctx, cfgModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build entities: %w", err)
	}
	logger.Info("Definitions loaded successfully.",
		"compounds", len(res.Compounds),
		"reactions", len(res.Reactions),
		"pathways", len(res.Pathways),
	)
	return res, nil
}

// selectPathways returns the configured pathway, or every built pathway
// when none is selected.
func (a *App) selectPathways(res *builder.Result) ([]*model.Pathway, error) {
	if a.cfg.Pathway == "" {
		if len(res.Pathways) == 0 {
			return nil, fmt.Errorf("no pathway defined in %v", a.cfg.Paths)
		}
		return res.Pathways, nil
	}
	p, ok := res.Pathway(a.cfg.Pathway)
	if !ok {
		return nil, fmt.Errorf("unknown pathway '%s', available: %v", a.cfg.Pathway, res.PathwayIDs())
	}
	return []*model.Pathway{p}, nil
}
