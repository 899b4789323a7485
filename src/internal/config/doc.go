// Package config handles configuration file parsing and validation for iplist.
//
// The configuration is a TOML file that names IPv4 lists. Each list is backed
// either by a file (relative paths are resolved against the directory of the
// configuration file) or by inline addresses, and carries its own
// ignore_invalid policy, optional export target and optional exec template.
//
//	[general]
//	verbose = false
//
//	[[list]]
//	list_name = "office"
//	file = "lists/office.txt"
//	ignore_invalid = true
//	exec = "ipset restore -exist < {{file}}"
//
// Loading and validating:
//
//	cfg, err := config.LoadConfig("/opt/etc/iplist/iplist.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err) // ValidationErrors lists every problem found
//	}
package config
