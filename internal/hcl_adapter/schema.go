package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any
// file. Any other block type is rejected by the decoder.
type fileRoot struct {
	Compounds []*CompoundBlock `hcl:"compound,block"`
	Reactions []*ReactionBlock `hcl:"reaction,block"`
	Pathways  []*PathwayBlock  `hcl:"pathway,block"`
}

// CompoundBlock is the HCL schema of a `compound` block.
type CompoundBlock struct {
	ID       string         `hcl:"id,label"`
	Name     string         `hcl:"name,optional"`
	SMILES   string         `hcl:"smiles,optional"`
	InChI    string         `hcl:"inchi,optional"`
	InChIKey string         `hcl:"inchikey,optional"`
	Formula  string         `hcl:"formula,optional"`
	Info     hcl.Expression `hcl:"info,optional"`
}

// ReactionBlock is the HCL schema of a `reaction` block.
type ReactionBlock struct {
	ID        string         `hcl:"id,label"`
	ECNumber  string         `hcl:"ec_number,optional"`
	ECNumbers []string       `hcl:"ec_numbers,optional"`
	Reactants hcl.Expression `hcl:"reactants,optional"`
	Products  hcl.Expression `hcl:"products,optional"`
	Equation  hcl.Expression `hcl:"equation,optional"`
	Info      hcl.Expression `hcl:"info,optional"`
}

// PathwayBlock is the HCL schema of a `pathway` block.
type PathwayBlock struct {
	ID        string         `hcl:"id,label"`
	Reactions []string       `hcl:"reactions,optional"`
	Info      hcl.Expression `hcl:"info,optional"`
}
