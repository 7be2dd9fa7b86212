// Package hcl_adapter loads pathway definition files written in HCL into
// the format-agnostic config.Model.
//
// Three top-level blocks are understood, each labelled with its identifier:
//
//	compound "MNXM4" {
//	  name   = "O2"
//	  smiles = "O=O"
//	  info   = { source = "metanetx" }
//	}
//
//	reaction "rxn_1" {
//	  ec_numbers = ["4.1.3.45"]
//	  reactants  = { MNXM337 = 1 }
//	  products   = { CMPD_0000000025 = 1, MNXM23 = 1 }
//	}
//
//	reaction "rxn_5" {
//	  equation = "2 MNXM4 + MNXM6 = MNXM13"
//	}
//
//	pathway "test_pathway" {
//	  reactions = ["rxn_1", "rxn_5"]
//	}
//
// Files are read in path order and a later block replaces an earlier one
// with the same identifier.
package hcl_adapter
