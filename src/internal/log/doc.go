// Package log provides simple leveled logging for iplist.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, WARN, and ERROR.
// It provides global logging functions that can be used throughout the application.
//
// # Log Levels
//
//   - DEBUG: Skipped list entries and other diagnostics (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures
//
// # Example Usage
//
//	log.Infof("Loaded %d IPs from %s", n, path)
//	log.SetVerbose(true)
//	log.Debugf("Ignoring IPv6 address: %s", candidate)
//
// Components that need logging as a dependency take the Default() value:
//
//	set, err := addrset.New(addrset.Options{SourcePath: path, Logger: log.Default()})
//
// Output control:
//
//	log.SetForceStdErr(true) // Send all logs to stderr
package log
