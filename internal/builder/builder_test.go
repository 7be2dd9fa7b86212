package builder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/chemlite/internal/config"
	"github.com/specialistvlad/chemlite/internal/ctxlog"
	"github.com/specialistvlad/chemlite/internal/hcl_adapter"
	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestBuild_TestPathway(t *testing.T) {
	reg, logs := testutil.NewRegistry(t)
	ctx := ctxlog.WithLogger(context.Background(), reg.Logger())

	m, err := hcl_adapter.NewLoader().Load(ctx, filepath.Join("..", "hcl_adapter", "testdata", "test_pathway.hcl"))
	require.NoError(t, err)

	res, err := New(reg).Build(ctx, m)
	require.NoError(t, err)

	assert.Len(t, res.Compounds, 4)
	assert.Len(t, res.Reactions, 4)
	assert.Equal(t, []string{"test_pathway"}, res.PathwayIDs())

	p, ok := res.Pathway("test_pathway")
	require.True(t, ok)
	assert.Equal(t, []string{"rxn_4", "rxn_3", "rxn_2", "rxn_1"}, p.ReactionsIDs())
	if diff := cmp.Diff(testutil.NetReaction, p.NetReaction()); diff != "" {
		t.Errorf("NetReaction() mismatch (-want +got):\n%s", diff)
	}

	rxn4, _ := p.Reaction("rxn_4")
	assert.Equal(t, []string{"1.13.11.1"}, rxn4.ECNumbers())
	assert.Equal(t, 2.0, rxn4.Product("MNXM1"))

	co2, ok := model.LookupCompound(reg, "MNXM13")
	require.True(t, ok)
	assert.Equal(t, "CO2", co2.Name())
	bare, ok := model.LookupCompound(reg, "MNXM337")
	require.True(t, ok, "undeclared species are registered bare")
	assert.Empty(t, bare.SMILES())

	_, ok = p.Info("parameters")
	assert.True(t, ok)
	assert.Contains(t, logs.String(), "Build complete.")

	_, ok = res.Pathway("ghost")
	assert.False(t, ok)
}

func TestBuild_SharedReaction(t *testing.T) {
	reg, _ := testutil.NewRegistry(t)
	m := config.NewModel()
	m.Reactions["r"] = &config.Reaction{ID: "r", Equation: "A = B", Info: map[string]cty.Value{"k": cty.True}}
	m.Pathways["p1"] = &config.Pathway{ID: "p1", Reactions: []string{"r"}}
	m.Pathways["p2"] = &config.Pathway{ID: "p2", Reactions: []string{"r"}}

	res, err := New(reg).Build(context.Background(), m)
	require.NoError(t, err)

	p1, _ := res.Pathway("p1")
	p2, _ := res.Pathway("p2")
	r1, _ := p1.Reaction("r")
	r2, _ := p2.Reaction("r")
	assert.Same(t, r1, r2)

	v, ok := r1.Info("k")
	require.True(t, ok)
	assert.True(t, v.True())
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		model     func() *config.Model
		errSubstr string
	}{
		{
			name: "unknown reaction",
			model: func() *config.Model {
				m := config.NewModel()
				m.Pathways["p"] = &config.Pathway{ID: "p", Reactions: []string{"ghost"}, Source: config.Source{File: "main.hcl"}}
				return m
			},
			errSubstr: "main.hcl: pathway 'p' references unknown reaction 'ghost'",
		},
		{
			name: "empty compound identifier",
			model: func() *config.Model {
				m := config.NewModel()
				m.Compounds[""] = &config.Compound{}
				return m
			},
			errSubstr: "invalid Compound identifier",
		},
		{
			name: "bad equation",
			model: func() *config.Model {
				m := config.NewModel()
				m.Reactions["r"] = &config.Reaction{ID: "r", Equation: "A + B"}
				return m
			},
			errSubstr: "building reaction 'r'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg, _ := testutil.NewRegistry(t)
			_, err := New(reg).Build(context.Background(), tc.model())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}
