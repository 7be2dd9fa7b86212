// Package meta holds the free-form metadata values attached to entities.
//
// Values are cty.Value, a tagged union over strings, numbers, booleans,
// lists and objects. cty values are immutable, so storing or returning one
// never aliases caller-held state. ToNative and FromNative convert to and
// from the plain Go representation used by the dict forms.
package meta

import (
	"fmt"
	"math"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Infos is the metadata bag of an entity.
type Infos map[string]cty.Value

// Clone returns a shallow copy of the bag. Values are immutable.
func (in Infos) Clone() Infos {
	out := make(Infos, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Keys returns the metadata keys sorted alphabetically.
func (in Infos) Keys() []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether both bags hold the same keys with identical values.
func (in Infos) Equal(other Infos) bool {
	if len(in) != len(other) {
		return false
	}
	for k, v := range in {
		ov, ok := other[k]
		if !ok || !v.RawEquals(ov) {
			return false
		}
	}
	return true
}

// ToNative converts the bag into plain Go values.
func (in Infos) ToNative() (map[string]any, error) {
	out := make(map[string]any, len(in))
	for k, v := range in {
		nv, err := ToNative(v)
		if err != nil {
			return nil, fmt.Errorf("in info %q: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

// InfosFromNative converts plain Go values into a metadata bag.
func InfosFromNative(in map[string]any) (Infos, error) {
	out := make(Infos, len(in))
	for k, v := range in {
		cv, err := FromNative(v)
		if err != nil {
			return nil, fmt.Errorf("in info %q: %w", k, err)
		}
		out[k] = cv
	}
	return out, nil
}

// ToNative recursively converts a cty.Value to its most natural Go
// counterpart: string, float64, bool, []any or map[string]any. Null and
// unknown values become nil.
func ToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, el := it.Element()
			nv, err := ToNative(el)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nv)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, el := it.Element()
			k := key.AsString()
			nv, err := ToNative(el)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", k, err)
			}
			m[k] = nv
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported cty type for native conversion: %s", ty.FriendlyName())
	}
}

// FromNative converts a plain Go value into a cty.Value. Slices become
// tuples and maps become objects, so heterogeneous content is preserved.
func FromNative(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return x, nil
	case string:
		return cty.StringVal(x), nil
	case bool:
		return cty.BoolVal(x), nil
	case int:
		return cty.NumberIntVal(int64(x)), nil
	case int32:
		return cty.NumberIntVal(int64(x)), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case uint:
		return cty.NumberUIntVal(uint64(x)), nil
	case uint64:
		return cty.NumberUIntVal(x), nil
	case float32:
		return numberFromFloat(float64(x))
	case float64:
		return numberFromFloat(x)
	case []string:
		vals := make([]cty.Value, len(x))
		for i, s := range x {
			vals[i] = cty.StringVal(s)
		}
		if len(vals) == 0 {
			return cty.EmptyTupleVal, nil
		}
		return cty.TupleVal(vals), nil
	case []any:
		if len(x) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(x))
		for i, el := range x {
			cv, err := FromNative(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("at index %d: %w", i, err)
			}
			vals[i] = cv
		}
		return cty.TupleVal(vals), nil
	case map[string]any:
		if len(x) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(x))
		for k, el := range x {
			cv, err := FromNative(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute '%s': %w", k, err)
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	case map[string]string:
		if len(x) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(x))
		for k, s := range x {
			attrs[k] = cty.StringVal(s)
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported metadata value of type %T", v)
	}
}

func numberFromFloat(f float64) (cty.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return cty.NilVal, fmt.Errorf("non-finite number %v", f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return cty.NumberIntVal(int64(f)), nil
	}
	return cty.NumberFloatVal(f), nil
}
