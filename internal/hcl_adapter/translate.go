// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/chemlite/internal/config"
	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/specialistvlad/chemlite/internal/rxnparse"
)

// translateCompound converts the HCL compound schema into the agnostic model.
func (l *Loader) translateCompound(ctx context.Context, file string, b *CompoundBlock) (*config.Compound, error) {
	info, err := decodeInfo(ctx, b.Info)
	if err != nil {
		return nil, fmt.Errorf("in compound '%s': %w", b.ID, err)
	}
	return &config.Compound{
		ID:       b.ID,
		Name:     b.Name,
		SMILES:   b.SMILES,
		InChI:    b.InChI,
		InChIKey: b.InChIKey,
		Formula:  b.Formula,
		Info:     info,
		Source:   config.Source{File: file},
	}, nil
}

// translateReaction converts the HCL reaction schema into the agnostic
// model. An equation is checked for syntax here so that errors point at the
// defining file.
func (l *Loader) translateReaction(ctx context.Context, file string, b *ReactionBlock) (*config.Reaction, error) {
	logger := ctxlog.FromContext(ctx).With("reaction", b.ID)
	ctx = ctxlog.WithLogger(ctx, logger)

	r := &config.Reaction{
		ID:     b.ID,
		Source: config.Source{File: file},
	}
	if b.ECNumbers != nil {
		r.ECNumbers = append(r.ECNumbers, b.ECNumbers...)
	}
	if b.ECNumber != "" {
		r.ECNumbers = append(r.ECNumbers, b.ECNumber)
	}

	var err error
	if r.Info, err = decodeInfo(ctx, b.Info); err != nil {
		return nil, fmt.Errorf("in reaction '%s': %w", b.ID, err)
	}

	hasSides := isExprDefined(ctx, b.Reactants, "reactants") || isExprDefined(ctx, b.Products, "products")
	if isExprDefined(ctx, b.Equation, "equation") {
		if hasSides {
			return nil, fmt.Errorf("in reaction '%s': equation cannot be combined with reactants or products", b.ID)
		}
		if diags := gohcl.DecodeExpression(b.Equation, nil, &r.Equation); diags.HasErrors() {
			return nil, fmt.Errorf("in reaction '%s': invalid equation: %w", b.ID, diags)
		}
		if _, err := rxnparse.ParseEquation(r.Equation, rxnparse.FormatAuto); err != nil {
			return nil, fmt.Errorf("in reaction '%s': %w", b.ID, err)
		}
		logger.Debug("Reaction defined by equation.", "equation", r.Equation)
		return r, nil
	}

	if r.Reactants, err = decodeCoefficients(ctx, b.Reactants, "reactants"); err != nil {
		return nil, fmt.Errorf("in reaction '%s': %w", b.ID, err)
	}
	if r.Products, err = decodeCoefficients(ctx, b.Products, "products"); err != nil {
		return nil, fmt.Errorf("in reaction '%s': %w", b.ID, err)
	}
	return r, nil
}

// translatePathway converts the HCL pathway schema into the agnostic model.
func (l *Loader) translatePathway(ctx context.Context, file string, b *PathwayBlock) (*config.Pathway, error) {
	info, err := decodeInfo(ctx, b.Info)
	if err != nil {
		return nil, fmt.Errorf("in pathway '%s': %w", b.ID, err)
	}
	return &config.Pathway{
		ID:        b.ID,
		Reactions: append([]string(nil), b.Reactions...),
		Info:      info,
		Source:    config.Source{File: file},
	}, nil
}
