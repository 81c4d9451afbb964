// Package commands defines the bifid CLI and wires dependencies for subcommands.
//
// Commands
//
//   - square         Print the labelled key square
//   - fingerprint    Print the key square fingerprint
//   - encrypt        Encrypt a message
//   - decrypt        Decrypt a message
//
// # Implementation
//
// The root command loads configuration from BIFID_* environment variables,
// lets flags override it, and builds the cipher service before any subcommand
// runs. Results go to stdout; logs go to stderr.
package commands
