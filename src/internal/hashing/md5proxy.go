package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

type ChecksumProvider interface {
	GetChecksum() (string, error)
}

// ChecksumReaderProxy calculates the MD5 checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader   io.Reader
	checksum hash.Hash
}

// NewMD5ReaderProxy creates a new instance of ChecksumReaderProxy.
func NewMD5ReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: md5.New(),
	}
}

// Read reads data from the underlying reader and feeds it to the checksum.
func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			return n, checksumErr
		}
	}
	return n, err
}

// GetChecksum returns the calculated MD5 checksum as a hex string.
func (p *ChecksumReaderProxy) GetChecksum() (string, error) {
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}

// ChecksumWriterProxy calculates the MD5 checksum of everything written through it.
type ChecksumWriterProxy struct {
	writer   io.Writer
	checksum hash.Hash
}

func NewMD5WriterProxy(writer io.Writer) *ChecksumWriterProxy {
	return &ChecksumWriterProxy{
		writer:   writer,
		checksum: md5.New(),
	}
}

// Write hashes only the bytes the underlying writer accepted.
func (p *ChecksumWriterProxy) Write(buf []byte) (int, error) {
	n, err := p.writer.Write(buf)
	if n > 0 {
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			return n, checksumErr
		}
	}
	return n, err
}

func (p *ChecksumWriterProxy) GetChecksum() (string, error) {
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}

// ChecksumStringSet is a string set whose checksum covers each distinct
// member once, as a newline-terminated line, in insertion order.
type ChecksumStringSet struct {
	set      map[string]struct{}
	checksum hash.Hash
}

func NewChecksumStringSet() *ChecksumStringSet {
	return &ChecksumStringSet{
		set:      make(map[string]struct{}),
		checksum: md5.New(),
	}
}

// Put adds str to the set. It reports false if str was already present.
func (p *ChecksumStringSet) Put(str string) (bool, error) {
	if _, ok := p.set[str]; ok {
		return false, nil
	}
	if _, err := io.WriteString(p.checksum, str+"\n"); err != nil {
		return false, err
	}
	p.set[str] = struct{}{}
	return true, nil
}

func (p *ChecksumStringSet) GetChecksum() (string, error) {
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}
