// Package hashing provides MD5 checksum calculation utilities.
//
// The proxies compute a checksum as data flows through them, so callers that
// already work with io.Reader or io.Writer get the checksum for free. iplist
// uses them to fingerprint address sets and to skip rewriting export files
// whose content did not change.
//
//   - ChecksumReaderProxy: MD5 of everything read from an io.Reader
//   - ChecksumWriterProxy: MD5 of everything written to an io.Writer
//   - ChecksumStringSet: MD5 of the distinct lines put into a set
//
// Example:
//
//	set := hashing.NewChecksumStringSet()
//	for _, ip := range sortedIPs {
//	    _, _ = set.Put(ip)
//	}
//	checksum, _ := set.GetChecksum()
package hashing
