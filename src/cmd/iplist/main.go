package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/iplist/src/internal/commands"
	iperrors "github.com/maksimkurb/iplist/src/internal/errors"
	"github.com/maksimkurb/iplist/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "/opt/etc/iplist/iplist.toml", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "IPv4 list loader and validator\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  check [-list NAME]                 Load and validate configured lists\n")
		fmt.Fprintf(os.Stderr, "  show -list NAME [-sorted]          Print the addresses of a list\n")
		fmt.Fprintf(os.Stderr, "  export -list NAME [-o PATH]        Write a list to a file (skipped if unchanged)\n")
		fmt.Fprintf(os.Stderr, "  exec -list NAME [-template CMD]    Run a command against a temporary export\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	// Command output goes to stdout, keep logs out of the way
	log.SetForceStdErr(true)

	if _, err := os.Stat(ctx.ConfigPath); errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Configuration file not found: %s", ctx.ConfigPath)
	}

	cmds := []commands.Runner{
		commands.CreateCheckCommand(),
		commands.CreateShowCommand(),
		commands.CreateExportCommand(),
		commands.CreateExecCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Errorf("Failed to initialize command: %v", err)
				os.Exit(exitCode(err))
			}

			if err := cmd.Run(); err != nil {
				log.Errorf("Failed to run command: %v", err)
				os.Exit(exitCode(err))
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}

// exitCode maps the error code of err to the process exit status.
func exitCode(err error) int {
	switch iperrors.Code(err) {
	case iperrors.ErrCodeInvalidAddress:
		return 2
	case iperrors.ErrCodeFileAccess:
		return 3
	case iperrors.ErrCodeConfig:
		return 4
	default:
		return 1
	}
}
