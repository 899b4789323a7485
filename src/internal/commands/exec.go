package commands

import (
	"flag"

	"github.com/maksimkurb/iplist/src/internal/config"
	"github.com/maksimkurb/iplist/src/internal/lists"
)

func CreateExecCommand() *ExecCommand {
	gc := &ExecCommand{
		fs: flag.NewFlagSet("exec", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.listName, "list", "", "Name of the list to export")
	gc.fs.StringVar(&gc.template, "template", "", "Command template (overrides the list's exec)")
	return gc
}

type ExecCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	cfg      *config.Config
	listName string
	template string
}

func (g *ExecCommand) Name() string {
	return g.fs.Name()
}

func (g *ExecCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := requireListFlag(g.Name(), g.listName); err != nil {
		return err
	}
	if g.template != "" {
		if err := config.ValidateExecTemplate(g.template); err != nil {
			return err
		}
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ExecCommand) Run() error {
	list, set, err := lists.LoadListByName(g.cfg, g.listName)
	if err != nil {
		return err
	}

	template := g.template
	if template == "" {
		template = list.Exec
	}

	return lists.ExecList(list, set, lists.ExecOptions{
		Template: template,
		Shell:    g.cfg.GetShell(),
		TempDir:  g.cfg.GetTempDir(),
		Stdout:   g.ctx.stdout(),
		Stderr:   g.ctx.stderr(),
	})
}
