package model_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/stoichio"
	"github.com/specialistvlad/chemlite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPathway_NetReaction(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)

	if diff := cmp.Diff(testutil.NetReaction, p.NetReaction()); diff != "" {
		t.Errorf("NetReaction() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, p.NetReaction(), p.PseudoReaction())
	for _, id := range []string{"CMPD_0000000025", "CMPD_0000000010", "CMPD_0000000003", "MNXM1"} {
		assert.NotContains(t, p.NetReaction(), id)
	}
}

func TestPathway_BuildNetReaction(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)

	net, err := p.BuildNetReaction("net_rxn")
	require.NoError(t, err)
	assert.Equal(t, testutil.NetReaction, net.Species())

	got, ok := model.LookupReaction(reg, "net_rxn")
	require.True(t, ok)
	assert.Same(t, net, got)
	assert.Equal(t, 4, p.NbReactions(), "the pathway itself is unchanged")

	_, err = p.BuildNetReaction("")
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

func TestPathway_Reactions(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)

	wantIDs := []string{"rxn_4", "rxn_3", "rxn_2", "rxn_1"}
	assert.Equal(t, wantIDs, p.ReactionsIDs())
	assert.Equal(t, 4, p.NbReactions())
	assert.Len(t, p.Reactions(), 4)

	list := p.ListOfReactions()
	require.Len(t, list, 4)
	for i, rxn := range list {
		assert.Equal(t, wantIDs[i], rxn.ID())
	}

	rxn, ok := p.Reaction("rxn_2")
	require.True(t, ok)
	assert.Equal(t, "rxn_2", rxn.ID())

	_, ok = p.Reaction("ghost")
	assert.False(t, ok)
}

func TestPathway_AddReactionAs(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p, err := model.NewPathway(reg, "pw", nil)
	require.NoError(t, err)
	rxn, err := model.NewReaction(reg, "global", model.ReactionParams{Reactants: stoichio.Map{"A": 1}})
	require.NoError(t, err)

	p.AddReactionAs("local", rxn)
	p.AddReaction(nil)
	p.AddReactionAs("", rxn)

	assert.Equal(t, []string{"local"}, p.ReactionsIDs())
	got, ok := p.Reaction("local")
	require.True(t, ok)
	assert.Same(t, rxn, got)
	assert.Equal(t, "global", rxn.ID())
	assert.True(t, reg.Contains("global"))
	assert.False(t, reg.Contains("local"))
}

func TestPathway_ReplaceReaction(t *testing.T) {
	reg, logs := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)
	repl, err := model.NewReaction(reg, "rxn_3b", model.ReactionParams{
		Reactants: stoichio.Map{"CMPD_0000000010": 1},
		Products:  stoichio.Map{"CMPD_0000000003": 1},
	})
	require.NoError(t, err)

	assert.True(t, p.ReplaceReaction("rxn_3", repl))
	assert.Equal(t, []string{"rxn_4", "rxn_3", "rxn_2", "rxn_1"}, p.ReactionsIDs())
	got, _ := p.Reaction("rxn_3")
	assert.Same(t, repl, got)

	assert.False(t, p.ReplaceReaction("ghost", repl))
	assert.Equal(t, 4, p.NbReactions())
	testutil.AssertLogged(t, logs, "WARN", "nothing replaced")
}

func TestPathway_DelReaction(t *testing.T) {
	reg, logs := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)

	assert.True(t, p.DelReaction("rxn_2"))
	assert.Equal(t, []string{"rxn_4", "rxn_3", "rxn_1"}, p.ReactionsIDs())
	_, ok := model.LookupReaction(reg, "rxn_2")
	assert.True(t, ok, "the registry keeps deleted reactions")

	before := p.ToDict()
	assert.False(t, p.DelReaction("ghost"))
	assert.Equal(t, []string{"rxn_4", "rxn_3", "rxn_1"}, p.ReactionsIDs())
	if diff := cmp.Diff(before, p.ToDict()); diff != "" {
		t.Errorf("deleting an absent reaction changed the pathway (-before +after):\n%s", diff)
	}
	testutil.AssertLogged(t, logs, "ERROR", "nothing deleted")
}

func TestPathway_Species(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)

	assert.Equal(t, []string{
		"CMPD_0000000003", "CMPD_0000000010", "CMPD_0000000025",
		"MNXM1", "MNXM13", "MNXM2", "MNXM23", "MNXM337", "MNXM4", "MNXM5", "MNXM6",
		"TARGET_0000000001",
	}, p.SpeciesIDs())
	assert.Equal(t, p.SpeciesIDs(), p.CompoundsIDs())
	assert.Equal(t, 12, p.NbSpecies())
	assert.Len(t, p.Species(), 12)
	assert.Len(t, p.Compounds(), 12)

	assert.Equal(t, []string{
		"CMPD_0000000003", "CMPD_0000000010", "CMPD_0000000025",
		"MNXM1", "MNXM337", "MNXM4", "MNXM6",
	}, p.ReactantsIDs())
	assert.Equal(t, []string{
		"CMPD_0000000003", "CMPD_0000000010", "CMPD_0000000025",
		"MNXM1", "MNXM13", "MNXM2", "MNXM23", "MNXM5",
		"TARGET_0000000001",
	}, p.ProductsIDs())

	c, ok := p.Specie("MNXM13")
	require.True(t, ok)
	assert.Equal(t, "CO2", c.Name())
	_, ok = p.Compound("ghost")
	assert.False(t, ok)
}

func TestPathway_RenameCompound(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)
	o2, ok := model.LookupCompound(reg, "MNXM4")
	require.True(t, ok)

	require.NoError(t, p.RenameCompound("MNXM4", "O2"))

	for _, id := range []string{"rxn_4", "rxn_2"} {
		rxn, _ := p.Reaction(id)
		assert.Equal(t, 1.0, rxn.Reactant("O2"), id)
		assert.False(t, rxn.HasSpecies("MNXM4"), id)
	}
	got, ok := model.LookupCompound(reg, "O2")
	require.True(t, ok)
	assert.Same(t, o2, got)
	assert.Equal(t, "O2", o2.ID())
	assert.Equal(t, "O=O", o2.SMILES())
	assert.False(t, reg.Contains("MNXM4"))

	net := p.NetReaction()
	assert.Equal(t, -2.0, net["O2"])
	assert.NotContains(t, net, "MNXM4")
	assert.Contains(t, p.ToDict().Species, "O2")
}

func TestPathway_RenameCompound_EdgeCases(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)
	before := p.ToDict()

	assert.ErrorIs(t, p.RenameCompound("MNXM4", ""), model.ErrInvalidID)
	require.NoError(t, p.RenameCompound("MNXM4", "MNXM4"))
	require.NoError(t, p.RenameCompound("ghost", "still_ghost"))

	if diff := cmp.Diff(before, p.ToDict()); diff != "" {
		t.Errorf("pathway changed (-before +after):\n%s", diff)
	}
	assert.False(t, reg.Contains("still_ghost"))
}

func TestProperty_RenameToSelfIsIdempotent(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)
	before := p.ToDict()
	ids := p.SpeciesIDs()

	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.SampledFrom(ids).Draw(rt, "species")
		if err := p.RenameCompound(id, id); err != nil {
			rt.Fatalf("RenameCompound(%q, %q): %v", id, id, err)
		}
		if diff := cmp.Diff(before, p.ToDict()); diff != "" {
			rt.Fatalf("rename to self changed the pathway (-before +after):\n%s", diff)
		}
	})
}

func TestPathway_String(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	p := testutil.NewTestPathway(t, reg)

	lines := strings.Split(p.String(), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "----------------", lines[0])
	assert.Equal(t, "Pathway test_pathway", lines[1])
	assert.Equal(t, "----------------", lines[2])
	assert.Equal(t, "Reaction rxn_4: 1 CMPD_0000000003 + 1 MNXM4 = 2 MNXM1 + 1 TARGET_0000000001", lines[3])
	assert.Equal(t, "Reaction rxn_1: 1 MNXM337 = 1 CMPD_0000000025 + 1 MNXM23", lines[6])
}

func TestPathway_Equal(t *testing.T) {
	regA, _ := testutil.NewRegistry(t)
	regB, _ := testutil.NewRegistry(t)
	a := testutil.NewTestPathway(t, regA)
	b := testutil.NewTestPathway(t, regB)
	assert.True(t, a.Equal(b))

	b.DelReaction("rxn_1")
	assert.False(t, a.Equal(b))

	rxn, _ := a.Reaction("rxn_1")
	assert.False(t, a.Equal(rxn))
}
