package lists

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maksimkurb/iplist/src/internal/addrset"
	"github.com/maksimkurb/iplist/src/internal/hashing"
	"github.com/maksimkurb/iplist/src/internal/log"
)

type setChecksum struct {
	set *addrset.AddressSet
}

func (c setChecksum) GetChecksum() (string, error) {
	return c.set.Checksum()
}

// ExportList writes the sorted addresses of set to outputPath together with an
// ".md5" sidecar. Returns (changed, error) where changed is false if the
// file already held the same addresses and was left untouched.
func ExportList(set *addrset.AddressSet, outputPath string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %v", err)
	}

	checksum := setChecksum{set: set}
	if changed, err := IsFileChanged(checksum, outputPath); err != nil {
		log.Errorf("Failed to calculate checksum of %s: %v", set, err)
	} else if !changed {
		log.Infof("Export %s is not changed, skipping write to disk", outputPath)
		if _, err := os.Stat(outputPath + checksumSuffix); errors.Is(err, os.ErrNotExist) {
			return false, WriteChecksum(checksum, outputPath)
		}
		return false, nil
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return false, fmt.Errorf("failed to create export file %s: %v", outputPath, err)
	}

	proxy := hashing.NewMD5WriterProxy(file)
	_, writeErr := set.WriteTo(proxy)
	if closeErr := file.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return false, fmt.Errorf("failed to write export file %s: %v", outputPath, writeErr)
	}

	if err := WriteChecksum(proxy, outputPath); err != nil {
		return false, fmt.Errorf("failed to write export checksum: %v", err)
	}

	log.Infof("Exported %d IPs to %s", set.Len(), outputPath)
	return true, nil
}
