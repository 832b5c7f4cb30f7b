// Package commands defines the wert-sc-signer CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sign         Sign a JSON transaction record read from stdin or a file
//   - credentials  List configured credential names
//   - fingerprint  Print the public-key fingerprint of a credential
//   - seal         Seal a seed with a passphrase for the credentials file
//   - fields       Print the required record fields
//
// # Implementation
//
// The root command loads Config from the environment, applies flag
// overrides and builds the dependency graph (credential store, signer,
// logger) before any subcommand runs, so handlers share one app context.
package commands
