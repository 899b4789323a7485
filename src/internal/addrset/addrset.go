package addrset

import (
	"fmt"
	"iter"
	"slices"

	"github.com/maksimkurb/iplist/src/internal/errors"
	"github.com/maksimkurb/iplist/src/internal/hashing"
	"github.com/maksimkurb/iplist/src/internal/log"
	"github.com/maksimkurb/iplist/src/internal/utils"
)

// Logger receives the leveled messages emitted while loading.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// Options configures New. SourcePath and Addresses are mutually exclusive;
// a nil Addresses slice means "not supplied".
type Options struct {
	SourcePath    string
	Addresses     []string
	IgnoreInvalid bool
	// Logger defaults to log.Default().
	Logger Logger
}

// AddressSet is a validated, de-duplicated set of IPv4 addresses.
type AddressSet struct {
	sourcePath    string
	absPath       string
	ignoreInvalid bool
	addresses     map[string]struct{}
	logger        Logger
}

// New builds an AddressSet from opts. Construction is all-or-nothing: on error
// no set is returned.
func New(opts Options) (*AddressSet, error) {
	if opts.SourcePath != "" && opts.Addresses != nil {
		return nil, errors.NewInvalidArgumentError("cannot provide both file path and addresses")
	}

	s := &AddressSet{
		ignoreInvalid: opts.IgnoreInvalid,
		addresses:     make(map[string]struct{}),
		logger:        opts.Logger,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	switch {
	case opts.SourcePath != "":
		absPath, err := utils.ResolvePath(opts.SourcePath)
		if err != nil {
			return nil, errors.NewFileAccessError(fmt.Sprintf("unsafe list file path %q", opts.SourcePath), err)
		}
		s.sourcePath = opts.SourcePath
		s.absPath = absPath

		addresses, err := s.readFile()
		if err != nil {
			return nil, err
		}
		s.addresses = addresses
	case opts.Addresses != nil:
		addresses, err := s.readList(opts.Addresses)
		if err != nil {
			return nil, err
		}
		s.addresses = addresses
	}

	return s, nil
}

// FromFile loads the set from a file.
func FromFile(path string, ignoreInvalid bool) (*AddressSet, error) {
	return New(Options{SourcePath: path, IgnoreInvalid: ignoreInvalid})
}

// FromList validates an explicit list of candidates.
func FromList(addresses []string, ignoreInvalid bool) (*AddressSet, error) {
	if addresses == nil {
		addresses = []string{}
	}
	return New(Options{Addresses: addresses, IgnoreInvalid: ignoreInvalid})
}

// Reload re-reads the backing file. The current contents are kept if the
// reload fails.
func (s *AddressSet) Reload() error {
	if s.absPath == "" {
		return errors.NewInvalidArgumentError("cannot reload: no file path set")
	}

	s.logger.Debugf("Reloading IP list from %s", s.sourcePath)
	addresses, err := s.readFile()
	if err != nil {
		return err
	}
	s.addresses = addresses
	return nil
}

// SourcePath returns the path the set was loaded from, as given, or "" for list-sourced sets.
func (s *AddressSet) SourcePath() string {
	return s.sourcePath
}

// File is an alias for SourcePath.
func (s *AddressSet) File() string {
	return s.sourcePath
}

// Path is an alias for SourcePath.
func (s *AddressSet) Path() string {
	return s.sourcePath
}

// HasSource reports whether the set is backed by a file.
func (s *AddressSet) HasSource() bool {
	return s.sourcePath != ""
}

// QuotedAbsolutePath returns the absolute path of the backing file, quoted for
// a POSIX shell, or "" if the set has no file.
func (s *AddressSet) QuotedAbsolutePath() string {
	if s.absPath == "" {
		return ""
	}
	return utils.ShellQuote(s.absPath)
}

// QuotedAbs is an alias for QuotedAbsolutePath.
func (s *AddressSet) QuotedAbs() string {
	return s.QuotedAbsolutePath()
}

func (s *AddressSet) IgnoreInvalid() bool {
	return s.ignoreInvalid
}

// Set returns a read-only view over the live addresses.
func (s *AddressSet) Set() Set {
	return Set{owner: s}
}

// Values is an alias for Set.
func (s *AddressSet) Values() Set {
	return s.Set()
}

// List returns the addresses as a new slice in no particular order.
func (s *AddressSet) List() []string {
	list := make([]string, 0, len(s.addresses))
	for ip := range s.addresses {
		list = append(list, ip)
	}
	return list
}

// Sorted returns the addresses as a new, lexically sorted slice.
func (s *AddressSet) Sorted() []string {
	list := s.List()
	slices.Sort(list)
	return list
}

func (s *AddressSet) Contains(ip string) bool {
	_, ok := s.addresses[ip]
	return ok
}

func (s *AddressSet) Len() int {
	return len(s.addresses)
}

// Equal reports whether both sets hold the same addresses. Sources and
// policies are not compared.
func (s *AddressSet) Equal(other *AddressSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.addresses) != len(other.addresses) {
		return false
	}
	for ip := range s.addresses {
		if _, ok := other.addresses[ip]; !ok {
			return false
		}
	}
	return true
}

// Checksum returns the MD5 of the sorted, newline-terminated addresses, which
// is also the MD5 of any file produced by WriteTo.
func (s *AddressSet) Checksum() (string, error) {
	checksum := hashing.NewChecksumStringSet()
	for _, ip := range s.Sorted() {
		if _, err := checksum.Put(ip); err != nil {
			return "", errors.NewInternalError("failed to calculate checksum", err)
		}
	}
	return checksum.GetChecksum()
}

func (s *AddressSet) String() string {
	source := "list"
	if s.sourcePath != "" {
		source = s.sourcePath
	}
	return fmt.Sprintf("AddressSet with %d IPs from %s", len(s.addresses), source)
}

func (s *AddressSet) GoString() string {
	origin := "from_list=true"
	if s.sourcePath != "" {
		origin = "file_path=" + s.sourcePath
	}
	return fmt.Sprintf("AddressSet(%s, ignore_invalid=%t, ip_count=%d)", origin, s.ignoreInvalid, len(s.addresses))
}

// Set is a read-only view of an AddressSet's addresses. It reflects later
// reloads of the set it came from. The zero Set is empty.
type Set struct {
	owner *AddressSet
}

func (v Set) Contains(ip string) bool {
	if v.owner == nil {
		return false
	}
	return v.owner.Contains(ip)
}

func (v Set) Len() int {
	if v.owner == nil {
		return 0
	}
	return v.owner.Len()
}

// All yields the addresses in no particular order.
func (v Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if v.owner == nil {
			return
		}
		for ip := range v.owner.addresses {
			if !yield(ip) {
				return
			}
		}
	}
}
