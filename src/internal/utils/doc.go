// Package utils provides small helpers shared across iplist.
//
//   - Path utilities: resolve relative, absolute and "~" paths
//   - Shell quoting: embed paths in shell command lines
//   - File utilities: safe closing and idempotent removal
//
// Example:
//
//	abs := utils.GetAbsolutePath("lists/office.txt", "/etc/iplist")
//	// /etc/iplist/lists/office.txt
//	cmd := "ipset restore < " + utils.ShellQuote(abs)
package utils
