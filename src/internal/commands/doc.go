// Package commands implements CLI command handlers for iplist.
//
// Each command implements the Runner interface: Init parses the command flags
// and loads the configuration, Run does the work and Name is used for routing.
//
//   - check: load every configured list (or one with -list) and report its size
//   - show: print the addresses of a list
//   - export: write a list to a file with an MD5 sidecar
//   - exec: run a command against a temporary export of a list
package commands
