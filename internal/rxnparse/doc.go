// Package rxnparse turns textual reaction equations into model.Reaction
// values.
//
// Two forms are accepted:
//
//   - SMILES form, "LEFT>>RIGHT": molecules on a side are separated by "."
//     and a repeated molecule stands for its coefficient.
//   - Identifier form, "LEFT=RIGHT": terms are separated by "+" and each term
//     is a compound identifier, optionally preceded by a coefficient and a
//     space, e.g. "2 MNXM4 + MNXM6 = MNXM13".
//
// Identifiers in the identifier form therefore cannot contain "+" or
// whitespace. A species repeated on one side accumulates its coefficients.
package rxnparse
