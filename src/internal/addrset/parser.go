package addrset

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strings"

	"github.com/maksimkurb/iplist/src/internal/errors"
	"github.com/maksimkurb/iplist/src/internal/utils"
)

const (
	maxLineLength = 1024 * 1024
	previewLength = 32
)

// extractCandidate trims line and drops any "#" comment. ok is false when
// nothing is left to validate.
func extractCandidate(line string) (candidate string, ok bool) {
	candidate = strings.TrimSpace(line)
	if i := strings.IndexByte(candidate, '#'); i >= 0 {
		candidate = strings.TrimSpace(candidate[:i])
	}
	return candidate, candidate != ""
}

// accept validates candidate and adds it to dst. where describes the
// candidate's origin for error messages and may be empty.
func (s *AddressSet) accept(dst map[string]struct{}, candidate, where string) error {
	addr, err := netip.ParseAddr(candidate)
	if err != nil {
		if s.ignoreInvalid {
			s.logger.Debugf("Ignoring invalid IP address: %s", candidate)
			return nil
		}
		return errors.NewInvalidAddressError(fmt.Sprintf("invalid IP address found%s: %s", where, candidate), err)
	}

	if !addr.Is4() {
		if s.ignoreInvalid {
			s.logger.Debugf("Ignoring IPv6 address: %s", candidate)
			return nil
		}
		return errors.NewInvalidAddressError(fmt.Sprintf("IPv6 address found and not ignored%s: %s", where, candidate), nil)
	}

	dst[addr.String()] = struct{}{}
	return nil
}

// rejectOversized applies the invalid-candidate policy to a line longer than
// maxLineLength. Only a short prefix of the line is reported.
func (s *AddressSet) rejectOversized(line, where string) error {
	preview := line
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}
	if s.ignoreInvalid {
		s.logger.Debugf("Ignoring invalid IP address: %s (line exceeds %d bytes)", preview, maxLineLength)
		return nil
	}
	return errors.NewInvalidAddressError(fmt.Sprintf("invalid IP address found%s: %s (line exceeds %d bytes)", where, preview, maxLineLength), nil)
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLength is consumed completely but only its first maxLineLength bytes
// are returned, with oversized set.
func readLine(r *bufio.Reader) (line string, oversized bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), oversized, nil
			}
			return "", false, err
		}

		if room := maxLineLength - len(buf); len(chunk) > room {
			oversized = true
			chunk = chunk[:max(room, 0)]
		}
		buf = append(buf, chunk...)

		if !isPrefix {
			return string(buf), oversized, nil
		}
	}
}

func (s *AddressSet) readFile() (map[string]struct{}, error) {
	s.logger.Debugf("Reading IP list from %s", s.absPath)

	listFile, err := os.Open(s.absPath)
	if err != nil {
		return nil, errors.NewFileAccessError(fmt.Sprintf("failed to read list file '%s'", s.absPath), err)
	}
	defer utils.CloseOrWarn(listFile)

	addresses := make(map[string]struct{})
	reader := bufio.NewReader(listFile)

	lineNo := 0
	for {
		line, oversized, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewFileAccessError(fmt.Sprintf("failed to read list file '%s'", s.absPath), err)
		}
		lineNo++
		where := fmt.Sprintf(" at line %d", lineNo)

		// The cut-off tail of an oversized line only matters when it is not a comment
		if oversized && !strings.Contains(line, "#") {
			if err := s.rejectOversized(line, where); err != nil {
				return nil, err
			}
			continue
		}

		candidate, ok := extractCandidate(line)
		if !ok {
			continue
		}
		if err := s.accept(addresses, candidate, where); err != nil {
			return nil, err
		}
	}

	s.logger.Infof("Loaded %d IPs from %s", len(addresses), s.sourcePath)
	return addresses, nil
}

func (s *AddressSet) readList(candidates []string) (map[string]struct{}, error) {
	s.logger.Debugf("Loading IP list from provided list")

	addresses := make(map[string]struct{})
	for _, entry := range candidates {
		candidate, ok := extractCandidate(entry)
		if !ok {
			continue
		}
		if err := s.accept(addresses, candidate, ""); err != nil {
			return nil, err
		}
	}

	s.logger.Infof("Loaded %d IPs from list", len(addresses))
	return addresses, nil
}
