// Package builder turns a loaded config.Model into registered model
// entities.
//
// # Why Builder Exists
//
// Loaders only know about syntax: they produce plain definitions keyed by
// identifier. The builder is the bridge to the domain model. It registers
// every definition in a registry.Registry, in dependency order:
//
//  1. Compounds, so that their descriptors are in place before anything
//     references them.
//  2. Reactions. A reaction defined by an equation goes through rxnparse;
//     species without a compound definition are registered bare.
//  3. Pathways, which hold the already-built reactions in the declared
//     order. A reaction listed by several pathways is shared between them.
package builder
