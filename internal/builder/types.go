package builder

import (
	"github.com/specialistvlad/chemlite/internal/model"
	"github.com/specialistvlad/chemlite/internal/registry"
)

// Result holds the entities built from a model. Slices are sorted by
// identifier.
type Result struct {
	Registry  *registry.Registry
	Compounds []*model.Compound
	Reactions []*model.Reaction
	Pathways  []*model.Pathway
}

// Pathway returns the built pathway with the given identifier.
func (r *Result) Pathway(id string) (*model.Pathway, bool) {
	for _, p := range r.Pathways {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// PathwayIDs returns the identifiers of the built pathways.
func (r *Result) PathwayIDs() []string {
	ids := make([]string, len(r.Pathways))
	for i, p := range r.Pathways {
		ids[i] = p.ID()
	}
	return ids
}
