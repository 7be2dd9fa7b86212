package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/chemlite/internal/meta"
	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newPyruvate(t *testing.T) *model.Compound {
	t.Helper()
	reg, _ := testutil.NewRegistry(t)
	c, err := model.NewCompound(reg, "MNXM23", testutil.Species["MNXM23"])
	require.NoError(t, err)
	return c
}

func TestNewCompound(t *testing.T) {
	c := newPyruvate(t)

	assert.Equal(t, "MNXM23", c.ID())
	assert.Equal(t, "pyruvate", c.Name())
	assert.Equal(t, "CC(=O)C(=O)O]", c.SMILES())
	assert.Equal(t, "InChI=1S/C3H4O3/c1-2(4)3(5)6/h1H3,(H,5,6)", c.InChI())
	assert.Equal(t, "LCTONWCANYUPML-UHFFFAOYSA-N", c.InChIKey())
	assert.Equal(t, "C3H3O3", c.Formula())

	got, ok := model.LookupCompound(c.Registry(), "MNXM23")
	require.True(t, ok)
	assert.Same(t, c, got)
}

func TestCompoundSetters(t *testing.T) {
	c := newPyruvate(t)

	c.SetName("pyr")
	c.SetSMILES("CC(=O)C(=O)O")
	c.SetInChI("")
	c.SetInChIKey("key")
	c.SetFormula("C3H4O3")

	assert.Equal(t, model.CompoundDict{
		ID:       "MNXM23",
		Name:     "pyr",
		SMILES:   "CC(=O)C(=O)O",
		InChIKey: "key",
		Formula:  "C3H4O3",
	}, c.ToDict())
}

func TestCompoundEqual(t *testing.T) {
	c := newPyruvate(t)
	other := newPyruvate(t)
	assert.True(t, c.Equal(other))

	other.SetFormula("C3H4O3")
	assert.False(t, c.Equal(other))

	rxn, err := model.NewReaction(c.Registry(), "MNXM23_rxn", model.ReactionParams{})
	require.NoError(t, err)
	assert.False(t, c.Equal(rxn))
	assert.False(t, c.Equal(nil))
}

func TestFindCompoundBySMILES(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	testutil.RegisterSpecies(t, reg)

	c, ok := model.FindCompoundBySMILES(reg, "O=C=O")
	require.True(t, ok)
	assert.Equal(t, "MNXM13", c.ID())

	_, ok = model.FindCompoundBySMILES(reg, "C#N")
	assert.False(t, ok)
	_, ok = model.FindCompoundBySMILES(reg, "")
	assert.False(t, ok)
}

func TestCompoundDict_RoundTrip(t *testing.T) {
	infos, err := meta.InfosFromNative(map[string]any{
		"rpSBML": map[string]any{"compartment": "MNXC3", "score": 0.5},
	})
	require.NoError(t, err)
	p := testutil.Species["MNXM13"]
	p.Infos = infos

	reg, _ := testutil.NewRegistry(t)
	c, err := model.NewCompound(reg, "MNXM13", p)
	require.NoError(t, err)

	d := c.ToDict()
	assert.Equal(t, map[string]any{
		"rpSBML": map[string]any{"compartment": "MNXC3", "score": 0.5},
	}, d.Infos)

	other, _ := testutil.NewRegistry(t)
	back, err := model.CompoundFromDict(other, d)
	require.NoError(t, err)
	assert.True(t, c.Equal(back))
	if diff := cmp.Diff(d, back.ToDict()); diff != "" {
		t.Errorf("dict mismatch (-want +got):\n%s", diff)
	}
}

func TestProperty_CompoundDictRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg, _ := testutil.NewRegistry(t)
		id := rapid.StringMatching(`[A-Z]{1,6}_[0-9]{1,10}`).Draw(rt, "id")
		c, err := model.NewCompound(reg, id, model.CompoundParams{
			Name:     rapid.String().Draw(rt, "name"),
			SMILES:   rapid.String().Draw(rt, "smiles"),
			InChI:    rapid.String().Draw(rt, "inchi"),
			InChIKey: rapid.String().Draw(rt, "inchikey"),
			Formula:  rapid.String().Draw(rt, "formula"),
		})
		if err != nil {
			rt.Fatalf("NewCompound: %v", err)
		}

		other, _ := testutil.NewRegistry(t)
		back, err := model.CompoundFromDict(other, c.ToDict())
		if err != nil {
			rt.Fatalf("CompoundFromDict: %v", err)
		}
		if !c.Equal(back) {
			rt.Fatalf("round trip changed the compound: %+v != %+v", c.ToDict(), back.ToDict())
		}
	})
}
