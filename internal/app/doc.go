// Package app wires application dependencies for the CLI.
//
// It loads host configuration (environment and an optional YAML credentials
// file), builds the credential store and the signer from Config, and exposes
// them via the Wire struct for commands to use.
package app
