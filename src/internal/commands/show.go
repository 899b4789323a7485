package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/iplist/src/internal/config"
	"github.com/maksimkurb/iplist/src/internal/lists"
)

func CreateShowCommand() *ShowCommand {
	gc := &ShowCommand{
		fs: flag.NewFlagSet("show", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.listName, "list", "", "Name of the list to print")
	gc.fs.BoolVar(&gc.sorted, "sorted", false, "Print addresses in sorted order")
	return gc
}

type ShowCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	cfg      *config.Config
	listName string
	sorted   bool
}

func (g *ShowCommand) Name() string {
	return g.fs.Name()
}

func (g *ShowCommand) Init(args []string, ctx *AppContext) error {
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

func (g *ShowCommand) Run() error {
	_, set, err := lists.LoadListByName(g.cfg, g.listName)
	if err != nil {
		return err
	}

	if g.sorted {
		_, err = set.WriteTo(g.ctx.stdout())
		return err
	}

	for ip := range set.Set().All() {
		if _, err := fmt.Fprintln(g.ctx.stdout(), ip); err != nil {
			return err
		}
	}
	return nil
}
