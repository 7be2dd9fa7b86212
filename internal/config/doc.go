// Package config defines the format-agnostic model of pathway definition
// files and the Loader interface that produces it.
//
// The config.Model is the single input of the builder package. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
