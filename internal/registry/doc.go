// Package registry provides the identity registry shared by every entity of
// a chemical model.
//
// The Registry maps a string identifier to the entity registered under it.
// Reactions and pathways never hold pointers to the compounds they mention;
// they keep identifiers and resolve them through the registry when read. A
// rename performed here is therefore visible to every holder of the old
// identifier without a graph walk.
//
// A Registry is an explicit value passed to constructors, not process-wide
// state. Tests create one per case. It assumes a single writer; callers that
// share one across goroutines must serialise mutations themselves.
package registry
