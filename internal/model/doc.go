// Package model holds the chemical reaction network entities: Compound,
// Reaction and Pathway, all built on a common Entity base.
//
// Entities never point at each other. A Reaction references its species by
// compound identifier and a Pathway references its reactions under
// pathway-local keys. Species are resolved through the registry.Registry
// the entity was created with, at read time, so a rename is visible to
// every holder of the old identifier after a single registry update.
//
// The only hard error in this package is an invalid identifier (see
// ErrInvalidID). Every other miss is reported through a benign return value
// and the registry's logger.
package model
