package hcl_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/chemlite/internal/config"
	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/specialistvlad/chemlite/internal/fsutil"
)

// ErrNoFiles is returned when the given paths hold no .hcl file.
var ErrNoFiles = errors.New("no .hcl definition files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges their blocks into one
// model. It is agnostic to the origin of the paths and accepts any block
// from any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.merge(ctx, model, file, hclFile.Body); err != nil {
			return nil, err
		}
	}

	if err := validate(model); err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.",
		"compounds", len(model.Compounds),
		"reactions", len(model.Reactions),
		"pathways", len(model.Pathways),
	)
	return model, nil
}

// LoadSource parses a single in-memory HCL document. filename is only used
// in diagnostics.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	model := config.NewModel()
	if err := l.merge(ctx, model, filename, hclFile.Body); err != nil {
		return nil, err
	}
	if err := validate(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (l *Loader) merge(ctx context.Context, model *config.Model, file string, body hcl.Body) error {
	ctx = ctxlog.With(ctx, "file", file)
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	for _, b := range root.Compounds {
		def, err := l.translateCompound(ctx, file, b)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if prev, ok := model.Compounds[def.ID]; ok {
			logger.Warn("Compound redefined, the last definition wins.", "compound", def.ID, "previous_file", prev.Source.File)
		}
		model.Compounds[def.ID] = def
	}
	for _, b := range root.Reactions {
		def, err := l.translateReaction(ctx, file, b)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if prev, ok := model.Reactions[def.ID]; ok {
			logger.Warn("Reaction redefined, the last definition wins.", "reaction", def.ID, "previous_file", prev.Source.File)
		}
		model.Reactions[def.ID] = def
	}
	for _, b := range root.Pathways {
		def, err := l.translatePathway(ctx, file, b)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if prev, ok := model.Pathways[def.ID]; ok {
			logger.Warn("Pathway redefined, the last definition wins.", "pathway", def.ID, "previous_file", prev.Source.File)
		}
		model.Pathways[def.ID] = def
	}
	return nil
}

// validate checks cross references once every file is merged.
func validate(model *config.Model) error {
	var errs []error
	for _, id := range model.PathwayIDs() {
		p := model.Pathways[id]
		for _, rxnID := range p.Reactions {
			if _, ok := model.Reactions[rxnID]; !ok {
				errs = append(errs, fmt.Errorf("%s: pathway '%s' references unknown reaction '%s'", p.Source.File, id, rxnID))
			}
		}
	}
	return errors.Join(errs...)
}
