// Package app contains the core application logic. It wires configuration,
// logging, the collector and the loader into one loading run, decoupled from
// any specific entrypoint like a CLI.
package app
