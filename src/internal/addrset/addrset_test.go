package addrset

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/iplist/src/internal/errors"
)

type recordingLogger struct {
	debug []string
	info  []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

// ignored returns the debug messages emitted for skipped candidates.
func (l *recordingLogger) ignored() []string {
	var out []string
	for _, m := range l.debug {
		if strings.HasPrefix(m, "Ignoring ") {
			out = append(out, m)
		}
	}
	return out
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ips.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func load(t *testing.T, content string, ignoreInvalid bool) (*AddressSet, *recordingLogger, error) {
	t.Helper()
	logger := &recordingLogger{}
	set, err := New(Options{SourcePath: writeList(t, content), IgnoreInvalid: ignoreInvalid, Logger: logger})
	return set, logger, err
}

func TestNew_SingleValidIPv4(t *testing.T) {
	for _, ip := range []string{"0.0.0.0", "10.0.0.1", "192.168.1.1", "255.255.255.255", "8.8.8.8"} {
		t.Run(ip, func(t *testing.T) {
			set, _, err := load(t, ip+"\n", false)
			require.NoError(t, err)
			require.Equal(t, []string{ip}, set.Sorted())
		})
	}
}

func TestNew_IPv6(t *testing.T) {
	for _, ip := range []string{"fe80::1", "2001:0db8:85a3:0000:0000:8a2e:0370:7334", "::1", "::ffff:1.2.3.4", "fe80::1%eth0"} {
		t.Run(ip, func(t *testing.T) {
			_, _, err := load(t, ip+"\n", false)
			require.ErrorIs(t, err, errors.ErrInvalidAddress)
			require.Contains(t, err.Error(), "IPv6 address found and not ignored")
			require.Contains(t, err.Error(), ip)

			set, logger, err := load(t, ip+"\n", true)
			require.NoError(t, err)
			require.Zero(t, set.Len())
			require.Equal(t, []string{"Ignoring IPv6 address: " + ip}, logger.ignored())
		})
	}
}

func TestNew_Malformed(t *testing.T) {
	for _, candidate := range []string{"not-an-ip", "300.300.300.300", "10.0.0", "10.0.0.1/24", "010.0.0.1", "1.2.3.4.5", "example.com"} {
		t.Run(candidate, func(t *testing.T) {
			_, _, err := load(t, candidate+"\n", false)
			require.ErrorIs(t, err, errors.ErrInvalidAddress)
			require.Contains(t, err.Error(), "invalid IP address found at line 1: "+candidate)

			set, logger, err := load(t, candidate+"\n", true)
			require.NoError(t, err)
			require.Zero(t, set.Len())
			require.Equal(t, []string{"Ignoring invalid IP address: " + candidate}, logger.ignored())
		})
	}
}

func TestNew_CommentStripping(t *testing.T) {
	for _, line := range []string{"10.0.0.1", "10.0.0.1 # web server", "  10.0.0.1#no space", "\t10.0.0.1 \t# a # b"} {
		set, _, err := load(t, line+"\n", false)
		require.NoError(t, err, line)
		require.Equal(t, []string{"10.0.0.1"}, set.Sorted(), line)
	}

	_, _, err := load(t, "fe80::1 # router\n", false)
	require.ErrorIs(t, err, errors.ErrInvalidAddress)
}

func TestNew_SkipsBlankAndCommentLines(t *testing.T) {
	set, logger, err := load(t, "\n   \n# full comment\n   # indented comment\n#\n", false)
	require.NoError(t, err)
	require.Zero(t, set.Len())
	require.Empty(t, logger.ignored())
}

func TestNew_DuplicatesCollapse(t *testing.T) {
	set, _, err := load(t, strings.Repeat("192.168.1.1\n", 5)+"192.168.1.1 # again\n", false)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
}

func TestNew_MixedFileIgnoringInvalid(t *testing.T) {
	set, logger, err := load(t, "10.0.0.1\n# full comment\n10.0.0.2 # trailing\n\nfe80::1\n", true)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, set.Sorted())
	require.Equal(t, []string{"Ignoring IPv6 address: fe80::1"}, logger.ignored())
}

func TestNew_MixedFileRaising(t *testing.T) {
	set, _, err := load(t, "10.0.0.1\n# full comment\n10.0.0.2 # trailing\n\nfe80::1\n", false)
	require.Nil(t, set)
	require.ErrorIs(t, err, errors.ErrInvalidAddress)
	require.Contains(t, err.Error(), "at line 5: fe80::1")
}

func TestNew_FirstInvalidLineIsReported(t *testing.T) {
	_, _, err := load(t, "10.0.0.1\nbogus\nfe80::1\n", false)
	require.ErrorIs(t, err, errors.ErrInvalidAddress)
	require.Contains(t, err.Error(), "at line 2: bogus")
}

func TestNew_BothSources(t *testing.T) {
	path := writeList(t, "10.0.0.1\n")
	for _, addrs := range [][]string{{}, {"10.0.0.1"}, {"not-an-ip"}} {
		_, err := New(Options{SourcePath: path, Addresses: addrs})
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		require.Contains(t, err.Error(), "cannot provide both file path and addresses")
	}
}

func TestNew_NoSource(t *testing.T) {
	set, err := New(Options{Logger: &recordingLogger{}})
	require.NoError(t, err)
	require.Zero(t, set.Len())
	require.False(t, set.HasSource())
	require.Equal(t, "", set.SourcePath())
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(Options{SourcePath: filepath.Join(t.TempDir(), "missing.txt"), IgnoreInvalid: true, Logger: &recordingLogger{}})
	require.ErrorIs(t, err, errors.ErrFileAccess)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_OversizedLine(t *testing.T) {
	content := "10.0.0.1\n" + strings.Repeat("x", 2*maxLineLength) + "\n10.0.0.2\n"

	set, logger, err := load(t, content, true)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, set.Sorted())
	require.Len(t, logger.ignored(), 1)
	require.Less(t, len(logger.ignored()[0]), 256)

	set, _, err = load(t, content, false)
	require.Nil(t, set)
	require.ErrorIs(t, err, errors.ErrInvalidAddress)
	require.NotErrorIs(t, err, errors.ErrFileAccess)
	require.Contains(t, err.Error(), "at line 2")
	require.Less(t, len(err.Error()), 512)
}

func TestNew_OversizedComment(t *testing.T) {
	content := "10.0.0.1 # " + strings.Repeat("x", 2*maxLineLength) + "\n10.0.0.2\n"

	set, _, err := load(t, content, false)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, set.Sorted())
}

func TestNew_LongLineWithinLimit(t *testing.T) {
	content := "10.0.0.1" + strings.Repeat(" ", 100*1024) + "# padded\n10.0.0.2"

	set, _, err := load(t, content, false)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, set.Sorted())
}

func TestNew_DirectoryIsNotReadable(t *testing.T) {
	_, err := New(Options{SourcePath: t.TempDir(), Logger: &recordingLogger{}})
	require.ErrorIs(t, err, errors.ErrFileAccess)
}

func TestNew_UnsafePath(t *testing.T) {
	_, err := New(Options{SourcePath: "ips\x00.txt", Logger: &recordingLogger{}})
	require.ErrorIs(t, err, errors.ErrFileAccess)
}

func TestNew_EmptyFile(t *testing.T) {
	set, _, err := load(t, "", false)
	require.NoError(t, err)
	require.Zero(t, set.Len())
}

func TestFromList(t *testing.T) {
	set, err := FromList([]string{"192.168.1.1", "  10.0.0.1  ", "# comment", "", "8.8.8.8 # dns"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "192.168.1.1", "8.8.8.8"}, set.Sorted())
	require.False(t, set.HasSource())
	require.Equal(t, "", set.QuotedAbsolutePath())
}

func TestFromList_InvalidEntries(t *testing.T) {
	_, err := FromList([]string{"192.168.1.1", "not-an-ip", "10.0.0.1"}, false)
	require.ErrorIs(t, err, errors.ErrInvalidAddress)
	require.Contains(t, err.Error(), "invalid IP address found: not-an-ip")

	_, err = FromList([]string{"192.168.1.1", "2001:db8::1"}, false)
	require.ErrorIs(t, err, errors.ErrInvalidAddress)
	require.Contains(t, err.Error(), "IPv6 address found and not ignored: 2001:db8::1")

	logger := &recordingLogger{}
	set, err := New(Options{Addresses: []string{"192.168.1.1", "not-an-ip", "2001:db8::1", "10.0.0.1"}, IgnoreInvalid: true, Logger: logger})
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1", "192.168.1.1"}, set.Sorted())
	require.Len(t, logger.ignored(), 2)
}

func TestFromList_Empty(t *testing.T) {
	set, err := FromList(nil, false)
	require.NoError(t, err)
	require.Zero(t, set.Len())
}

func TestAccessors(t *testing.T) {
	path := writeList(t, "10.0.0.1\n10.0.0.2\n")
	set, err := New(Options{SourcePath: path, IgnoreInvalid: true, Logger: &recordingLogger{}})
	require.NoError(t, err)

	require.Equal(t, path, set.SourcePath())
	require.Equal(t, path, set.File())
	require.Equal(t, path, set.Path())
	require.True(t, set.HasSource())
	require.True(t, set.IgnoreInvalid())
	require.Equal(t, path, set.QuotedAbsolutePath())
	require.Equal(t, set.QuotedAbsolutePath(), set.QuotedAbs())

	require.True(t, set.Contains("10.0.0.1"))
	require.False(t, set.Contains("1.1.1.1"))
	require.Equal(t, 2, set.Len())

	require.Equal(t, "AddressSet with 2 IPs from "+path, set.String())
	require.Equal(t, fmt.Sprintf("AddressSet(file_path=%s, ignore_invalid=true, ip_count=2)", path), set.GoString())
}

func TestQuotedAbsolutePath_RelativeWithSpaces(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "my ips.txt"), []byte("10.0.0.1\n"), 0644))
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(oldWd) }()
	wd, err := os.Getwd()
	require.NoError(t, err)

	set, err := New(Options{SourcePath: "my ips.txt", Logger: &recordingLogger{}})
	require.NoError(t, err)
	require.Equal(t, "my ips.txt", set.SourcePath())
	require.Equal(t, "'"+filepath.Join(wd, "my ips.txt")+"'", set.QuotedAbsolutePath())
}

func TestStringForList(t *testing.T) {
	set, err := FromList([]string{"192.168.1.1", "10.0.0.1"}, false)
	require.NoError(t, err)
	require.Equal(t, "AddressSet with 2 IPs from list", set.String())
	require.Equal(t, "AddressSet(from_list=true, ignore_invalid=false, ip_count=2)", set.GoString())
}

func TestList_IsIndependentCopy(t *testing.T) {
	set, err := FromList([]string{"10.0.0.1", "10.0.0.2"}, false)
	require.NoError(t, err)

	list := set.List()
	list[0] = "1.1.1.1"
	list = append(list, "2.2.2.2")
	require.Len(t, list, 3)

	sorted := set.Sorted()
	sorted[1] = "3.3.3.3"

	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, set.Sorted())
	require.False(t, set.Contains("1.1.1.1"))
}

func TestSetView(t *testing.T) {
	set, err := FromList([]string{"10.0.0.1", "10.0.0.2"}, false)
	require.NoError(t, err)

	view := set.Values()
	require.Equal(t, 2, view.Len())
	require.True(t, view.Contains("10.0.0.2"))
	require.Equal(t, set.Set().Len(), view.Len())

	got := slices.Sorted(view.All())
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, got)

	for range view.All() {
		break
	}
}

func TestSetView_Zero(t *testing.T) {
	var view Set
	require.Equal(t, 0, view.Len())
	require.False(t, view.Contains("10.0.0.1"))
	require.Empty(t, slices.Collect(view.All()))
}

func TestEqual(t *testing.T) {
	a, err := FromList([]string{"10.0.0.1", "10.0.0.2"}, false)
	require.NoError(t, err)
	b, _, err := load(t, "10.0.0.2\n10.0.0.1 # same\n", false)
	require.NoError(t, err)
	c, err := FromList([]string{"10.0.0.1"}, false)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))

	var nilSet *AddressSet
	require.True(t, nilSet.Equal(nil))
}

func TestReload(t *testing.T) {
	path := writeList(t, "192.168.1.1\n10.0.0.1\n")
	set, err := New(Options{SourcePath: path, Logger: &recordingLogger{}})
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	view := set.Set()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("8.8.8.8\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, set.Reload())
	require.Equal(t, 3, set.Len())
	require.True(t, set.Contains("8.8.8.8"))
	require.Equal(t, 3, view.Len())
}

func TestReload_KeepsContentsOnFailure(t *testing.T) {
	path := writeList(t, "192.168.1.1\n")
	set, err := New(Options{SourcePath: path, Logger: &recordingLogger{}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("10.0.0.1\nnot-an-ip\n"), 0644))
	require.ErrorIs(t, set.Reload(), errors.ErrInvalidAddress)
	require.Equal(t, []string{"192.168.1.1"}, set.Sorted())

	require.NoError(t, os.Remove(path))
	require.ErrorIs(t, set.Reload(), errors.ErrFileAccess)
	require.Equal(t, []string{"192.168.1.1"}, set.Sorted())
}

func TestReload_WithoutFile(t *testing.T) {
	set, err := FromList([]string{"192.168.1.1"}, false)
	require.NoError(t, err)

	err = set.Reload()
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	require.Contains(t, err.Error(), "cannot reload: no file path set")
}

func TestChecksum(t *testing.T) {
	set, err := FromList([]string{"8.8.8.8", "10.0.0.1", "192.168.1.1"}, false)
	require.NoError(t, err)

	sum := md5.Sum([]byte("10.0.0.1\n192.168.1.1\n8.8.8.8\n"))
	checksum, err := set.Checksum()
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(sum[:]), checksum)
}
