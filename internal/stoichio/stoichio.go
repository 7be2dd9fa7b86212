package stoichio

import (
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Map associates a compound identifier with its signed coefficient.
type Map map[string]float64

// Term is a single identifier/coefficient pair, used for ordered renderings.
type Term struct {
	ID    string
	Coeff float64
}

// String renders the term as "<coeff> <id>".
func (t Term) String() string {
	return FormatCoeff(t.Coeff) + " " + t.ID
}

// Keys returns the identifiers of the map sorted alphabetically.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

// Terms returns the entries of the map in alphabetical identifier order.
func (m Map) Terms() []Term {
	terms := make([]Term, 0, len(m))
	for _, id := range m.Keys() {
		terms = append(terms, Term{ID: id, Coeff: m[id]})
	}
	return terms
}

// Clone returns an independent copy of the map. Zero entries are dropped.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, c := range m {
		if c != 0 {
			out[id] = c
		}
	}
	return out
}

// Equal reports whether both maps hold the same non-zero entries. A nil map
// equals an empty one.
func (m Map) Equal(other Map) bool {
	a, b := m.Clone(), other.Clone()
	if len(a) != len(b) {
		return false
	}
	for id, c := range a {
		if oc, ok := b[id]; !ok || oc != c {
			return false
		}
	}
	return true
}

// Reactants returns the consumed species with positive magnitudes.
func (m Map) Reactants() Map {
	out := make(Map)
	for id, c := range m {
		if c < 0 {
			out[id] = -c
		}
	}
	return out
}

// Products returns the produced species.
func (m Map) Products() Map {
	out := make(Map)
	for id, c := range m {
		if c > 0 {
			out[id] = c
		}
	}
	return out
}

// Negate returns the map with every sign flipped.
func (m Map) Negate() Map {
	return m.Scale(-1)
}

// Scale returns the map with every coefficient multiplied by factor. A zero
// factor yields an empty map.
func (m Map) Scale(factor float64) Map {
	out := make(Map, len(m))
	for id, c := range m {
		if v := c * factor; v != 0 {
			out[id] = v
		}
	}
	return out
}

// String renders the signed map as "id:coeff" pairs in alphabetical order.
func (m Map) String() string {
	parts := make([]string, 0, len(m))
	for _, t := range m.Terms() {
		parts = append(parts, t.ID+":"+FormatCoeff(t.Coeff))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FromSides merges a reactant and a product map (both holding magnitudes)
// into one signed map. An identifier present in both keeps its product entry.
func FromSides(reactants, products Map) Map {
	out := make(Map, len(reactants)+len(products))
	for id, c := range reactants {
		if c != 0 {
			out[id] = -math.Abs(c)
		}
	}
	for id, c := range products {
		if c != 0 {
			out[id] = math.Abs(c)
		}
	}
	return out
}

// Sum adds the signed maps together and drops every identifier whose total
// is exactly zero. Accumulation uses exact rational arithmetic, so the
// result does not depend on the order of the inputs. Non-finite coefficients
// are ignored.
func Sum(maps ...Map) Map {
	acc := make(map[string]*big.Rat)
	for _, m := range maps {
		for id, c := range m {
			r := new(big.Rat)
			if r.SetFloat64(c) == nil {
				continue
			}
			if cur, ok := acc[id]; ok {
				cur.Add(cur, r)
			} else {
				acc[id] = r
			}
		}
	}

	out := make(Map, len(acc))
	for id, r := range acc {
		if r.Sign() == 0 {
			continue
		}
		f, _ := r.Float64()
		out[id] = f
	}
	return out
}

// FormatCoeff renders a coefficient without trailing zeros, e.g. "2" or "0.5".
func FormatCoeff(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
