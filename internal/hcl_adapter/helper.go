package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// isExprDefined reports whether expr comes from an attribute written in the
// file. gohcl fills omitted optional attributes with zero-width placeholder
// expressions rather than nil.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	if rng.End.Byte <= rng.Start.Byte {
		return false
	}
	ctxlog.FromContext(ctx).Debug("Attribute defined.", "attribute", attrName, "range", rng.String())
	return true
}

// decodeInfo evaluates an `info` object into its attribute values.
func decodeInfo(ctx context.Context, expr hcl.Expression) (map[string]cty.Value, error) {
	if !isExprDefined(ctx, expr, "info") {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid info: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("info must be an object, got %s", ty.FriendlyName())
	}
	out := make(map[string]cty.Value, val.LengthInt())
	it := val.ElementIterator()
	for it.Next() {
		k, v := it.Element()
		out[k.AsString()] = v
	}
	return out, nil
}

// decodeCoefficients evaluates a `reactants` or `products` object into a
// map of coefficients.
func decodeCoefficients(ctx context.Context, expr hcl.Expression, attrName string) (map[string]float64, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}
	var out map[string]float64
	if diags := gohcl.DecodeExpression(expr, nil, &out); diags.HasErrors() {
		return nil, fmt.Errorf("invalid %s: %w", attrName, diags)
	}
	return out, nil
}
