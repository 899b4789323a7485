package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/iplist/src/internal/config"
	"github.com/maksimkurb/iplist/src/internal/lists"
	"github.com/maksimkurb/iplist/src/internal/utils"
)

func CreateExportCommand() *ExportCommand {
	gc := &ExportCommand{
		fs: flag.NewFlagSet("export", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.listName, "list", "", "Name of the list to export")
	gc.fs.StringVar(&gc.output, "o", "", "Output file (defaults to the list's configured output)")
	return gc
}

type ExportCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	cfg      *config.Config
	listName string
	output   string
}

func (g *ExportCommand) Name() string {
	return g.fs.Name()
}

func (g *ExportCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := requireListFlag(g.Name(), g.listName); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ExportCommand) Run() error {
	list, set, err := lists.LoadListByName(g.cfg, g.listName)
	if err != nil {
		return err
	}

	output, err := g.outputPath(list)
	if err != nil {
		return err
	}

	changed, err := lists.ExportList(set, output)
	if err != nil {
		return err
	}

	status := "unchanged"
	if changed {
		status = "written"
	}
	fmt.Fprintf(g.ctx.stdout(), "%s: %d IPs %s to %s\n", list.ListName, set.Len(), status, output)
	return nil
}

func (g *ExportCommand) outputPath(list *config.ListSource) (string, error) {
	if g.output != "" {
		return utils.ResolvePath(g.output)
	}
	return list.GetAbsoluteOutputPath(g.cfg)
}
