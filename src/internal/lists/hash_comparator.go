package lists

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/maksimkurb/iplist/src/internal/hashing"
	"github.com/maksimkurb/iplist/src/internal/log"
	"github.com/maksimkurb/iplist/src/internal/utils"
)

const checksumSuffix = ".md5"

// IsFileChanged reports whether filePath differs from the content checksumProxy describes.
// The ".md5" sidecar is trusted when present, otherwise the file itself is hashed.
func IsFileChanged(checksumProxy hashing.ChecksumProvider, filePath string) (bool, error) {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	md5, err := checksumProxy.GetChecksum()
	if err != nil {
		return false, err
	}

	checksumFilePath := filePath + checksumSuffix
	checksum, err := readChecksum(checksumFilePath)
	if err != nil {
		log.Debugf("Failed to read checksum file '%s', hashing '%s' instead: %v", checksumFilePath, filePath, err)
		if checksum, err = fileChecksum(filePath); err != nil {
			log.Debugf("Failed to hash '%s', assuming it's changed: %v", filePath, err)
			return true, nil
		}
	}
	return checksum != md5, nil
}

func readChecksum(checksumFilePath string) (string, error) {
	checksum, err := os.ReadFile(checksumFilePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(checksum)), nil
}

func fileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer utils.CloseOrWarn(file)

	proxy := hashing.NewMD5ReaderProxy(file)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return "", err
	}
	return proxy.GetChecksum()
}

func WriteChecksum(checksumProxy hashing.ChecksumProvider, filePath string) error {
	checksum, err := checksumProxy.GetChecksum()
	if err != nil {
		return err
	}
	return os.WriteFile(filePath+checksumSuffix, []byte(checksum), 0644)
}
