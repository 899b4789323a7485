package addrset

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/iplist/src/internal/errors"
	"github.com/maksimkurb/iplist/src/internal/utils"
)

const tempFilePattern = "iplist_*.txt"

// WriteTo writes the sorted addresses, one per line, to w.
func (s *AddressSet) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for _, ip := range s.Sorted() {
		n, err := bw.WriteString(ip + "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// WriteToTempFile exports the set to a new file in dir (the OS temp directory
// when dir is empty) and returns its path. The caller owns the file.
func (s *AddressSet) WriteToTempFile(dir string) (string, error) {
	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return "", errors.NewFileAccessError("failed to create temporary file", err)
	}
	path := tempFile.Name()

	_, writeErr := s.WriteTo(tempFile)
	closeErr := tempFile.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = utils.RemoveIfExists(path)
		return "", errors.NewFileAccessError(fmt.Sprintf("failed to write temporary file '%s'", path), writeErr)
	}

	s.logger.Debugf("Wrote IP list to temporary file: %s", path)
	return path, nil
}

// WithTempFile exports the set to a temporary file, calls fn with its path and
// removes the file once fn returns or panics. fn's error is returned as is.
func (s *AddressSet) WithTempFile(fn func(path string) error) error {
	return s.WithTempFileIn("", fn)
}

// WithTempFileIn is WithTempFile with the temporary file created in dir.
func (s *AddressSet) WithTempFileIn(dir string, fn func(path string) error) error {
	path, err := s.WriteToTempFile(dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := utils.RemoveIfExists(path); err != nil {
			s.logger.Debugf("Failed to delete temporary file %s: %v", path, err)
			return
		}
		s.logger.Debugf("Deleted temporary file: %s", path)
	}()

	return fn(path)
}
