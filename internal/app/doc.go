// Package app contains the core application logic. It wires the loader,
// the builder and the report renderers together behind the App struct and
// its configuration, decoupled from any specific entrypoint like a CLI.
package app
