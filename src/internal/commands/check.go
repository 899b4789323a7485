package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/iplist/src/internal/config"
	"github.com/maksimkurb/iplist/src/internal/lists"
	"github.com/maksimkurb/iplist/src/internal/log"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.listName, "list", "", "Check only the named list")
	return gc
}

type CheckCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	cfg      *config.Config
	listName string
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *CheckCommand) Run() error {
	targets := g.cfg.Lists
	if g.listName != "" {
		list, err := g.cfg.GetList(g.listName)
		if err != nil {
			return err
		}
		targets = []*config.ListSource{list}
	}

	for _, list := range targets {
		log.Debugf("Checking %s list \"%s\"", list.Type(), list.ListName)
		set, err := lists.LoadList(list, g.cfg)
		if err != nil {
			return err
		}
		log.Debugf("%#v", set)
		fmt.Fprintf(g.ctx.stdout(), "%s: %s\n", list.ListName, set)
	}

	log.Infof("All %d list(s) are valid", len(targets))
	return nil
}
