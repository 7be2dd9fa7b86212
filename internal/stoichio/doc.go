// Package stoichio provides the signed stoichiometry map used by reactions
// and pathways, together with the algebra that combines them.
//
// Sign convention: a negative coefficient marks a reactant (consumed species)
// and a positive coefficient marks a product. A coefficient of zero means the
// species is absent; maps returned by this package never hold zero entries.
//
// Go maps have no order, so every textual rendering goes through Keys, which
// returns identifiers sorted alphabetically.
package stoichio
