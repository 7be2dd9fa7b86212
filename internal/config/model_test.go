package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelIDs(t *testing.T) {
	m := NewModel()
	assert.Empty(t, m.CompoundIDs())

	m.Compounds["MNXM4"] = &Compound{ID: "MNXM4"}
	m.Compounds["MNXM13"] = &Compound{ID: "MNXM13"}
	m.Reactions["rxn_2"] = &Reaction{ID: "rxn_2"}
	m.Reactions["rxn_1"] = &Reaction{ID: "rxn_1"}
	m.Pathways["pw"] = &Pathway{ID: "pw", Reactions: []string{"rxn_2", "rxn_1"}}

	assert.Equal(t, []string{"MNXM13", "MNXM4"}, m.CompoundIDs())
	assert.Equal(t, []string{"rxn_1", "rxn_2"}, m.ReactionIDs())
	assert.Equal(t, []string{"pw"}, m.PathwayIDs())
}
