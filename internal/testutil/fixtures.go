package testutil

import (
	"log/slog"
	"testing"

	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/registry"
	"github.com/specialistvlad/chemlite/internal/stoichio"
	"github.com/stretchr/testify/require"
)

// NewRegistry returns an empty registry logging at debug level into the
// returned buffer.
func NewRegistry(t *testing.T) (*registry.Registry, *SafeBuffer) {
	t.Helper()
	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return registry.New(registry.WithLogger(logger)), logs
}

// Species holds the MetaNetX compounds of the test pathway.
var Species = map[string]model.CompoundParams{
	"TARGET_0000000001": {
		SMILES:   "[H]OC(=O)C([H])=C([H])C([H])=C([H])C(=O)O[H]",
		InChI:    "InChI=1S/C6H6O4/c7-5(8)3-1-2-4-6(9)10/h1-4H,(H,7,8)(H,9,10)",
		InChIKey: "TXXHDPDFNKHHGW-UHFFFAOYSA-N",
	},
	"CMPD_0000000010": {
		SMILES:   "[H]OC(=O)c1c([H])c([H])c(O[H])c(O[H])c1[H]",
		InChI:    "InChI=1S/C7H6O4/c8-5-2-1-4(7(10)11)3-6(5)9/h1-3,8-9H,(H,10,11)",
		InChIKey: "YQUVCSBJEUQKSH-UHFFFAOYSA-N",
	},
	"MNXM23": {
		Name:     "pyruvate",
		Formula:  "C3H3O3",
		SMILES:   "CC(=O)C(=O)O]",
		InChI:    "InChI=1S/C3H4O3/c1-2(4)3(5)6/h1H3,(H,5,6)",
		InChIKey: "LCTONWCANYUPML-UHFFFAOYSA-N",
	},
	"CMPD_0000000025": {
		SMILES:   "[H]OC(=O)c1c([H])c([H])c([H])c(O[H])c1[H]",
		InChI:    "InChI=1S/C7H6O3/c8-6-3-1-2-5(4-6)7(9)10/h1-4,8H,(H,9,10)",
		InChIKey: "IJFXRHURBJZNAO-UHFFFAOYSA-N",
	},
	"CMPD_0000000003": {
		SMILES:   "[H]Oc1c([H])c([H])c([H])c([H])c1O[H]",
		InChI:    "InChI=1S/C6H6O2/c7-5-3-1-2-4-6(5)8/h1-4,7-8H",
		InChIKey: "YCIMNLLNPGFGHC-UHFFFAOYSA-N",
	},
	"MNXM337": {
		SMILES:   "[H]OC(=O)C(OC1([H])C([H])=C(C(=O)O[H])C([H])=C([H])C1([H])O[H])=C([H])[H]",
		InChI:    "InChI=1S/C10H10O6/c1-5(9(12)13)16-8-4-6(10(14)15)2-3-7(8)11/h2-4,7-8,11H,1H2,(H,12,13)(H,14,15)",
		InChIKey: "WTFXTQVDAKGDEY-UHFFFAOYSA-N",
	},
	"MNXM2": {
		SMILES:   "[H]O[H]",
		InChI:    "InChI=1S/H2O/h1H2",
		InChIKey: "XLYOFNOQVPJJNP-UHFFFAOYSA-N",
	},
	"MNXM13": {
		Name:     "CO2",
		Formula:  "CO2",
		SMILES:   "O=C=O",
		InChI:    "InChI=1S/CO2/c2-1-3",
		InChIKey: "CURLTUGMZLYLDI-UHFFFAOYSA-N",
	},
	"MNXM5": {
		Name:     "NADP(+)",
		Formula:  "C21H25N7O17P3",
		SMILES:   "N=C(O)c1ccc[n+](C2OC(COP(=O)(O)OP(=O)(O)OCC3OC(n4cnc5c(N)ncnc54)C(OP(=O)(O)O)C3O)C(O)C2O)c1",
		InChIKey: "XJLXINKUBYWONI-UHFFFAOYSA-O",
	},
	"MNXM4": {
		SMILES:   "O=O",
		InChI:    "InChI=1S/O2/c1-2",
		InChIKey: "MYMOFIZGZYHOMD-UHFFFAOYSA-N",
	},
	"MNXM1": {
		SMILES:   "[H+]",
		InChI:    "InChI=1S/p+1",
		InChIKey: "GPRLSGONYQIRFK-UHFFFAOYSA-N",
	},
	"MNXM6": {
		SMILES:   "[H]N=C(O[H])C1=C([H])N(C2([H])OC([H])(C([H])([H])OP(=O)(O[H])OP(=O)(O[H])OC([H])([H])C3([H])OC([H])(n4c([H])nc5c(N([H])[H])nc([H])nc54)C([H])(OP(=O)(O[H])O[H])C3([H])O[H])C([H])(O[H])C2([H])O[H])C([H])=C([H])C1([H])[H]",
		InChIKey: "ACFIXJIJDZMPPO-UHFFFAOYSA-N",
	},
}

// ReactionDef is a reaction of the test pathway.
type ReactionDef struct {
	ID        string
	ECNumbers []string
	Reactants stoichio.Map
	Products  stoichio.Map
}

// Reactions is the linear test pathway from MNXM337 to TARGET_0000000001,
// in the order the reactions are added.
var Reactions = []ReactionDef{
	{
		ID:        "rxn_4",
		ECNumbers: []string{"1.13.11.1"},
		Reactants: stoichio.Map{"CMPD_0000000003": 1, "MNXM4": 1},
		Products:  stoichio.Map{"TARGET_0000000001": 1, "MNXM1": 2},
	},
	{
		ID:        "rxn_3",
		ECNumbers: []string{"4.1.1.63"},
		Reactants: stoichio.Map{"CMPD_0000000010": 1, "MNXM1": 1},
		Products:  stoichio.Map{"CMPD_0000000003": 1, "MNXM13": 1},
	},
	{
		ID:        "rxn_2",
		ECNumbers: []string{"1.14.13.23"},
		Reactants: stoichio.Map{"CMPD_0000000025": 1, "MNXM4": 1, "MNXM6": 1, "MNXM1": 1},
		Products:  stoichio.Map{"CMPD_0000000010": 1, "MNXM2": 1, "MNXM5": 1},
	},
	{
		ID:        "rxn_1",
		ECNumbers: []string{"4.1.3.45"},
		Reactants: stoichio.Map{"MNXM337": 1},
		Products:  stoichio.Map{"CMPD_0000000025": 1, "MNXM23": 1},
	},
}

// NetReaction is the expected net stoichiometry of the test pathway.
var NetReaction = stoichio.Map{
	"MNXM4":             -2,
	"TARGET_0000000001": 1,
	"MNXM13":            1,
	"MNXM6":             -1,
	"MNXM2":             1,
	"MNXM5":             1,
	"MNXM337":           -1,
	"MNXM23":            1,
}

// RegisterSpecies registers every compound of Species into reg.
func RegisterSpecies(t *testing.T, reg *registry.Registry) map[string]*model.Compound {
	t.Helper()
	out := make(map[string]*model.Compound, len(Species))
	for id, p := range Species {
		c, err := model.NewCompound(reg, id, p)
		require.NoError(t, err)
		out[id] = c
	}
	return out
}

// NewReactions registers the reactions of the test pathway, in order.
func NewReactions(t *testing.T, reg *registry.Registry) []*model.Reaction {
	t.Helper()
	out := make([]*model.Reaction, 0, len(Reactions))
	for _, def := range Reactions {
		rxn, err := model.NewReaction(reg, def.ID, model.ReactionParams{
			ECNumbers: def.ECNumbers,
			Reactants: def.Reactants,
			Products:  def.Products,
		})
		require.NoError(t, err)
		out = append(out, rxn)
	}
	return out
}

// NewTestPathway registers the species and reactions of the test pathway
// and returns the "test_pathway" Pathway holding them.
func NewTestPathway(t *testing.T, reg *registry.Registry) *model.Pathway {
	t.Helper()
	RegisterSpecies(t, reg)
	p, err := model.NewPathway(reg, "test_pathway", nil)
	require.NoError(t, err)
	for _, rxn := range NewReactions(t, reg) {
		p.AddReaction(rxn)
	}
	return p
}
