// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the logger and the cipher
// service from it, and exposes them via the Wire struct for commands to use.
package app
