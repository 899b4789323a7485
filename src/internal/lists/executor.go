package lists

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/iplist/src/internal/addrset"
	"github.com/maksimkurb/iplist/src/internal/config"
	"github.com/maksimkurb/iplist/src/internal/log"
	"github.com/maksimkurb/iplist/src/internal/utils"
)

// RenderExecTemplate fills the exec template of a list. Path and name values
// are shell-quoted.
func RenderExecTemplate(template string, list *config.ListSource, set *addrset.AddressSet, exportPath string) (string, error) {
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	t, err := fasttemplate.NewTemplate(template, "{{", "}}")
	if err != nil {
		return "", fmt.Errorf("invalid exec template: %v", err)
	}

	return t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		switch strings.TrimSpace(tag) {
		case config.EXEC_TMPL_FILE:
			return io.WriteString(w, utils.ShellQuote(exportPath))
		case config.EXEC_TMPL_SOURCE:
			if !set.HasSource() {
				return io.WriteString(w, utils.ShellQuote(""))
			}
			return io.WriteString(w, set.QuotedAbsolutePath())
		case config.EXEC_TMPL_COUNT:
			return io.WriteString(w, strconv.Itoa(set.Len()))
		case config.EXEC_TMPL_LIST_NAME:
			return io.WriteString(w, utils.ShellQuote(list.ListName))
		default:
			return 0, fmt.Errorf("unknown template variable: %s", tag)
		}
	})
}

// ExecOptions controls how ExecList runs the rendered command.
type ExecOptions struct {
	Template string
	Shell    string
	TempDir  string
	Stdout   io.Writer
	Stderr   io.Writer
}

// ExecList exports set to a temporary file and runs the rendered template with
// the shell while that file exists. The file is removed afterwards.
func ExecList(list *config.ListSource, set *addrset.AddressSet, opts ExecOptions) error {
	if opts.Template == "" {
		return fmt.Errorf("list \"%s\" has no exec template", list.ListName)
	}
	if opts.Shell == "" {
		opts.Shell = config.DefaultShell
	}

	return set.WithTempFileIn(opts.TempDir, func(path string) error {
		cmdline, err := RenderExecTemplate(opts.Template, list, set, path)
		if err != nil {
			return err
		}

		log.Infof("Running for list \"%s\": %s", list.ListName, cmdline)
		cmd := exec.Command(opts.Shell, "-c", cmdline)
		cmd.Stdout = opts.Stdout
		cmd.Stderr = opts.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("command for list \"%s\" failed: %w", list.ListName, err)
		}
		return nil
	})
}
