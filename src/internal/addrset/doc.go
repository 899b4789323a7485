// Package addrset loads and validates sets of IPv4 addresses.
//
// An AddressSet is built once, either from a line-oriented text file or from an
// explicit slice of candidate strings, and is read many times afterwards.
//
// # Input format
//
// One candidate per line. Blank lines are skipped and "#" starts a comment that
// runs to the end of the line:
//
//	10.0.0.1
//	# office printers
//	10.0.0.2   # trailing comments are fine too
//
// Every candidate is parsed as an IP literal. IPv4 addresses are stored in
// canonical form. IPv6 addresses and malformed candidates either abort the load
// with an INVALID_ADDRESS error or, with IgnoreInvalid set, are skipped and
// reported at debug level.
//
// # Example Usage
//
//	set, err := addrset.FromFile("/etc/iplist/office.txt", true)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//
//	err = set.WithTempFile(func(path string) error {
//	    return exec.Command("ipset", "restore", "-file", path).Run()
//	})
//
// An AddressSet does no internal locking.
package addrset
